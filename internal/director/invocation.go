package director

// Invocation is a parsed director command line.
type Invocation struct {
	// Dir is the working directory to change into.
	Dir string
	// Command is the program to run, looked up in PATH when it has no
	// slash.
	Command string
	// Argv is the argument vector of the new program. Argv[0] is Command.
	Argv []string
}

// Parse builds an Invocation from a full argument vector, program name
// included. Arguments after the command are kept verbatim.
func Parse(args []string) (*Invocation, error) {
	if len(args) < 3 {
		return nil, &UsageError{}
	}
	argv := make([]string, len(args)-2)
	copy(argv, args[2:])
	return &Invocation{
		Dir:     args[1],
		Command: args[2],
		Argv:    argv,
	}, nil
}
