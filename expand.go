package pathdsl

import (
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// ExpandUser expands a leading ~ or ~/ in s to the current user's home
// directory and wraps the result. Inputs without the prefix pass
// through unchanged.
func ExpandUser(s string) (*PathBuf, error) {
	expanded, err := homedir.Expand(s)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot expand %v", s)
	}
	return FromString(expanded), nil
}

// Home returns the current user's home directory as a PathBuf.
func Home() (*PathBuf, error) {
	dir, err := homedir.Dir()
	if err != nil {
		return nil, errors.Wrap(err, "cannot locate home directory")
	}
	return FromString(dir), nil
}
