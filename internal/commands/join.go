// Package commands implements the pathdsl CLI commands.
package commands

import (
	"flag"
	"strings"

	"github.com/pkg/errors"

	"github.com/pathdsl/pathdsl"
	"github.com/pathdsl/pathdsl/internal/cmdutil"
)

// JoinCommand joins its argument segments into one path.
type JoinCommand struct {
	Helper *cmdutil.Helper
}

// Synopsis of the join command.
func (c *JoinCommand) Synopsis() string {
	return "Join segments into a single path"
}

// Help returns information about the join command.
func (c *JoinCommand) Help() string {
	helpText := `
Usage: pathdsl join [--unix] [--expand-user] <segment>...

    Join the given segments with the platform path separator.

Options:
    --unix           Print the result with slash separators
    --expand-user    Expand a leading ~ in the first segment
`
	return strings.TrimSpace(helpText)
}

// Run joins the segments and prints the result.
func (c *JoinCommand) Run(args []string) int {
	flags := flag.NewFlagSet("join", flag.ContinueOnError)
	flags.Usage = func() { c.Helper.UI.Output(c.Help()) }
	unix := flags.Bool("unix", false, "print with slash separators")
	expandUser := flags.Bool("expand-user", false, "expand a leading ~")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	segments := flags.Args()
	if len(segments) == 0 {
		c.Helper.LogError("join", errors.New("at least one segment is required"))
		return 1
	}

	seed := pathdsl.New()
	if *expandUser {
		expanded, err := pathdsl.ExpandUser(segments[0])
		if err != nil {
			c.Helper.LogError("join", err)
			return 1
		}
		seed = expanded
		segments = segments[1:]
	}

	rest := make([]any, 0, len(segments)+1)
	rest = append(rest, seed)
	for _, segment := range segments {
		rest = append(rest, segment)
	}

	result := pathdsl.Path(rest...)
	c.Helper.Logger.Debug("joined", "segments", len(segments), "result", result.String())

	if *unix {
		c.Helper.UI.Output(result.ToUnix())
	} else {
		c.Helper.UI.Output(result.String())
	}
	return 0
}
