//go:build !unix

package director

import (
	"errors"
	"os"
	"os/exec"
)

func chdir(path string) error {
	return os.Chdir(path)
}

// execvp emulates process replacement where the platform has no exec(2):
// the command runs as a child with our stdio and env, and its exit status
// becomes ours. The parent stays alive until the child exits and signals
// are not forwarded.
func execvp(file string, argv, env []string) error {
	path, err := exec.LookPath(file)
	if err != nil {
		return err
	}
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    env,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return err
	}
	os.Exit(0)
	return nil
}
