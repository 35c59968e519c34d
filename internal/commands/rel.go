package commands

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pathdsl/pathdsl"
	"github.com/pathdsl/pathdsl/internal/cmdutil"
)

// RelCommand prints the relative path between two absolute paths.
type RelCommand struct {
	Helper *cmdutil.Helper
}

// Synopsis of the rel command.
func (c *RelCommand) Synopsis() string {
	return "Print the relative path from one absolute path to another"
}

// Help returns information about the rel command.
func (c *RelCommand) Help() string {
	helpText := `
Usage: pathdsl rel <base> <target>

    Print the path that leads from base to target. Both arguments must
    be absolute.
`
	return strings.TrimSpace(helpText)
}

// Run computes and prints the relative path.
func (c *RelCommand) Run(args []string) int {
	if len(args) != 2 {
		c.Helper.LogError("rel", errors.New("expected exactly two arguments: base and target"))
		return 1
	}

	base, err := pathdsl.Abs(args[0])
	if err != nil {
		c.Helper.LogError("rel", err)
		return 1
	}
	target, err := pathdsl.Abs(args[1])
	if err != nil {
		c.Helper.LogError("rel", err)
		return 1
	}

	rel, err := target.RelativeTo(base)
	if err != nil {
		c.Helper.LogError("rel", errors.Wrap(err, "cannot relativize"))
		return 1
	}

	c.Helper.UI.Output(rel.String())
	return 0
}
