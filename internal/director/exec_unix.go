//go:build unix

package director

import (
	"errors"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/nicct/director/internal/system"
)

const (
	// defaultPath is searched when PATH is not set at all.
	defaultPath = "/bin:/usr/bin"
	// shell runs files the kernel refuses with ENOEXEC.
	shell = "/bin/sh"
	// nameMax is the longest bare command name that can be searched for.
	nameMax = 255
)

func chdir(path string) error {
	return system.Chdir(path)
}

// execvp replaces the process with file the way execvp(3) does. A file with
// a slash is executed as is; otherwise each PATH entry is tried in turn. It
// only returns on failure.
func execvp(file string, argv, env []string) error {
	if file == "" {
		return unix.ENOENT
	}
	if strings.Contains(file, "/") {
		return execFile(file, argv, env)
	}
	if len(file) > nameMax {
		return unix.ENAMETOOLONG
	}

	path, ok := getenv(env, "PATH")
	if !ok {
		path = defaultPath
	}

	denied := false
	for _, dir := range strings.Split(path, ":") {
		candidate := file
		if dir != "" {
			candidate = dir + "/" + file
		}
		err := execFile(candidate, argv, env)
		switch {
		case errors.Is(err, unix.EACCES):
			// Keep looking, but report it if nothing else is found.
			denied = true
		case errors.Is(err, unix.ENOENT),
			errors.Is(err, unix.ENOTDIR),
			errors.Is(err, unix.ESTALE),
			errors.Is(err, unix.ENODEV),
			errors.Is(err, unix.ETIMEDOUT):
		default:
			return err
		}
	}
	if denied {
		return unix.EACCES
	}
	return unix.ENOENT
}

// execFile executes path, handing it to the shell when the kernel does not
// recognise its format.
func execFile(path string, argv, env []string) error {
	err := system.Exec(path, argv, env)
	if !errors.Is(err, unix.ENOEXEC) {
		return err
	}
	script := make([]string, 0, len(argv)+1)
	script = append(script, shell, path)
	if len(argv) > 1 {
		script = append(script, argv[1:]...)
	}
	if shErr := system.Exec(shell, script, env); shErr != nil {
		return err
	}
	return nil
}

// getenv returns the first value of key in env.
func getenv(env []string, key string) (string, bool) {
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v, true
		}
	}
	return "", false
}
