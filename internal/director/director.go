// Package director changes the working directory of the current process and
// then replaces the process with another program.
package director

import (
	"github.com/sirupsen/logrus"
)

// Run changes into inv.Dir and replaces the current process with
// inv.Command, handing it env. It only returns on failure, with either a
// [*DirectoryChangeError] or an [*ExecError]; a failed directory change
// leaves the process untouched.
func Run(inv *Invocation, env []string) error {
	logrus.WithField("path", inv.Dir).Debug("changing working directory")
	if err := chdir(inv.Dir); err != nil {
		return &DirectoryChangeError{Path: inv.Dir, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"path": inv.Command,
		"argv": inv.Argv,
	}).Debug("executing command")
	if err := execvp(inv.Command, inv.Argv, env); err != nil {
		return &ExecError{Command: inv.Command, Err: err}
	}
	return nil
}
