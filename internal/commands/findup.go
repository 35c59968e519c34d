package commands

import (
	"flag"
	"strings"

	"github.com/pkg/errors"

	"github.com/pathdsl/pathdsl"
	"github.com/pathdsl/pathdsl/internal/cmdutil"
)

// FindupCommand locates a file by walking up parent directories.
type FindupCommand struct {
	Helper *cmdutil.Helper
}

// Synopsis of the findup command.
func (c *FindupCommand) Synopsis() string {
	return "Find a file by walking up parent directories"
}

// Help returns information about the findup command.
func (c *FindupCommand) Help() string {
	helpText := `
Usage: pathdsl findup [--from <dir>] <name>

    Look for an entry called name in the starting directory and each of
    its parents, printing the first match.

Options:
    --from <dir>    Directory to start from (defaults to the cwd)
`
	return strings.TrimSpace(helpText)
}

// Run performs the upward search and prints the result.
func (c *FindupCommand) Run(args []string) int {
	flags := flag.NewFlagSet("findup", flag.ContinueOnError)
	flags.Usage = func() { c.Helper.UI.Output(c.Help()) }
	from := flags.String("from", "", "directory to start from")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() != 1 {
		c.Helper.LogError("findup", errors.New("expected exactly one argument: the name to look for"))
		return 1
	}
	name := flags.Arg(0)

	var start *pathdsl.PathBuf
	var err error
	if *from != "" {
		start, err = pathdsl.Abs(*from)
	} else {
		start, err = pathdsl.Cwd()
	}
	if err != nil {
		c.Helper.LogError("findup", err)
		return 1
	}

	found, err := pathdsl.FindUp(name, start)
	if err != nil {
		c.Helper.LogError("findup", err)
		return 1
	}
	if found == nil {
		c.Helper.LogError("findup", errors.Errorf("%v not found in %v or any parent", name, start))
		return 1
	}

	c.Helper.UI.Output(found.String())
	return 0
}
