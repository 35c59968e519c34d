package pathdsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandUser(t *testing.T) {
	home, err := Home()
	require.NoError(t, err)

	p, err := ExpandUser("~/projects")
	require.NoError(t, err)
	assert.True(t, p.HasPrefix(home))
	assert.Equal(t, "projects", p.Base())
}

func TestExpandUserPassthrough(t *testing.T) {
	p, err := ExpandUser(sys("plain/dir"))
	require.NoError(t, err)
	assert.Equal(t, sys("plain/dir"), p.String())
}

func TestExpandUserRejectsNamedUser(t *testing.T) {
	_, err := ExpandUser("~somebody/dir")
	assert.Error(t, err)
}
