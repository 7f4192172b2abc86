package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/nicct/director/internal/director"
)

const usage = `run a command in another working directory

director changes its working directory to NEWWD and then replaces itself
with COMMAND, which is looked up in $PATH unless it contains a slash. Every
ARG is passed to COMMAND unchanged, along with the environment and open
file descriptors.

Exit status is 1 for a usage error, 2 if NEWWD cannot be entered and 3 if
COMMAND cannot be executed. Otherwise it is the exit status of COMMAND.`

// runCommand receives the whole command line. director has no options of
// its own: every argument is either NEWWD, COMMAND or an ARG, even when it
// starts with a dash.
var runCommand = cli.Command{
	Name:            "run",
	Hidden:          true,
	HideHelp:        true,
	SkipFlagParsing: true,
	Action: func(context *cli.Context) error {
		inv, err := director.Parse(append([]string{context.App.Name}, context.Args()...))
		if err != nil {
			return err
		}
		return director.Run(inv, os.Environ())
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "director"
	app.Usage = usage
	app.UsageText = director.Usage
	app.HideHelp = true
	app.HideVersion = true
	app.Commands = []cli.Command{runCommand}

	args := make([]string, 0, len(os.Args)+1)
	args = append(args, os.Args[0], runCommand.Name)
	args = append(args, os.Args[1:]...)
	if err := app.Run(args); err != nil {
		fatal(err)
	}
}

// fatal prints err on stderr and exits with the status matching its class.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(director.ExitCode(err))
}
