package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathdsl/pathdsl/internal/cmdutil"
)

func newTestHelper() (*cmdutil.Helper, *cli.MockUi) {
	mock := cli.NewMockUi()
	helper := &cmdutil.Helper{
		Version: "test",
		Config:  &cmdutil.Config{LogLevel: "error"},
		Logger:  hclog.NewNullLogger(),
		UI: &cli.ColoredUi{
			Ui:          mock,
			OutputColor: cli.UiColorNone,
			InfoColor:   cli.UiColorNone,
			WarnColor:   cli.UiColorNone,
			ErrorColor:  cli.UiColorNone,
		},
	}
	return helper, mock
}

func TestJoinCommand(t *testing.T) {
	helper, mock := newTestHelper()
	c := &JoinCommand{Helper: helper}

	code := c.Run([]string{"a", "b", "c"})
	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join("a", "b", "c"), strings.TrimSpace(mock.OutputWriter.String()))
}

func TestJoinCommandUnix(t *testing.T) {
	helper, mock := newTestHelper()
	c := &JoinCommand{Helper: helper}

	code := c.Run([]string{"--unix", "a", "b"})
	require.Equal(t, 0, code)
	assert.Equal(t, "a/b", strings.TrimSpace(mock.OutputWriter.String()))
}

func TestJoinCommandNoArgs(t *testing.T) {
	helper, mock := newTestHelper()
	c := &JoinCommand{Helper: helper}

	code := c.Run(nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, mock.ErrorWriter.String(), "at least one segment")
}

func TestRelCommand(t *testing.T) {
	helper, mock := newTestHelper()
	c := &RelCommand{Helper: helper}

	base := t.TempDir()
	target := filepath.Join(base, "x", "y")

	code := c.Run([]string{base, target})
	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join("x", "y"), strings.TrimSpace(mock.OutputWriter.String()))
}

func TestRelCommandRejectsRelativeArgs(t *testing.T) {
	helper, mock := newTestHelper()
	c := &RelCommand{Helper: helper}

	code := c.Run([]string{"not-absolute", "also-not"})
	assert.Equal(t, 1, code)
	assert.Contains(t, mock.ErrorWriter.String(), "not an absolute path")
}

func TestFindupCommand(t *testing.T) {
	helper, mock := newTestHelper()
	c := &FindupCommand{Helper: helper}

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	marker := filepath.Join(root, "marker.txt")
	require.NoError(t, os.WriteFile(marker, nil, 0644))

	code := c.Run([]string{"--from", nested, "marker.txt"})
	require.Equal(t, 0, code)
	assert.Equal(t, marker, strings.TrimSpace(mock.OutputWriter.String()))
}

func TestFindupCommandMissing(t *testing.T) {
	helper, mock := newTestHelper()
	c := &FindupCommand{Helper: helper}

	root := t.TempDir()
	code := c.Run([]string{"--from", root, "pathdsl-not-here.xyz"})
	assert.Equal(t, 1, code)
	assert.Contains(t, mock.ErrorWriter.String(), "not found")
}
