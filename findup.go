package pathdsl

import (
	"github.com/karrick/godirwalk"
)

func hasEntry(name, dir string) (bool, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return false, err
	}

	for _, dirent := range dirents {
		if dirent.Name() == name {
			return true, nil
		}
	}

	return false, nil
}

// FindUp looks for an entry called name in dir and each of its parents,
// returning the full path of the first hit. A nil result with a nil
// error means the root was reached without finding it.
func FindUp(name string, dir *PathBuf) (*PathBuf, error) {
	current := dir.Clone()

	for {
		found, err := hasEntry(name, current.String())
		if err != nil {
			return nil, err
		}

		if found {
			return current.Div(name), nil
		}

		parent := current.Dir()

		if parent.Equal(current) {
			return nil, nil
		}

		current = parent
	}
}
