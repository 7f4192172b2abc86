//go:build unix

// Package system holds the chdir(2) and execve(2) calls director makes.
// Both are restarted when a signal interrupts them, and failures come back
// as [*os.PathError] around the bare [unix.Errno].
package system

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// Chdir changes the working directory of the whole process.
func Chdir(path string) error {
	if err := restart(func() error { return unix.Chdir(path) }); err != nil {
		return &os.PathError{Op: "chdir", Path: path, Err: err}
	}
	return nil
}

// Exec replaces the process image with cmd. It does not return on success.
func Exec(cmd string, args []string, env []string) error {
	if err := restart(func() error { return unix.Exec(cmd, args, env) }); err != nil {
		return &os.PathError{Op: "exec", Path: cmd, Err: err}
	}
	return nil
}

// restart calls fn until it fails with something other than EINTR.
func restart(fn func() error) (err error) {
	for err = fn(); errors.Is(err, unix.EINTR); err = fn() {
	}
	return err
}
