package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/pathdsl/pathdsl/internal/cmdutil"
	"github.com/pathdsl/pathdsl/internal/commands"
)

var version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	helper, err := cmdutil.NewHelper(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathdsl: %v\n", err)
		return 1
	}

	c := cli.NewCLI("pathdsl", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"join": func() (cli.Command, error) {
			return &commands.JoinCommand{Helper: helper}, nil
		},
		"rel": func() (cli.Command, error) {
			return &commands.RelCommand{Helper: helper}, nil
		},
		"findup": func() (cli.Command, error) {
			return &commands.FindupCommand{Helper: helper}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathdsl: %v\n", err)
		return 1
	}
	return exitCode
}
