package pathdsl

import (
	"github.com/adrg/xdg"
)

// DataDir returns a directory under the XDG data home for an
// application to keep its data files in, e.g. DataDir("myapp", "cache").
func DataDir(segments ...string) *PathBuf {
	return under(xdg.DataHome, segments)
}

// ConfigDir returns a directory under the XDG config home.
func ConfigDir(segments ...string) *PathBuf {
	return under(xdg.ConfigHome, segments)
}

// CacheDir returns a directory under the XDG cache home.
func CacheDir(segments ...string) *PathBuf {
	return under(xdg.CacheHome, segments)
}

func under(base string, segments []string) *PathBuf {
	p := FromUpstream(base)
	p.Grow(grownBy(segments))
	for _, segment := range segments {
		p.Push(segment)
	}
	return p
}

func grownBy(segments []string) int {
	need := 0
	for _, segment := range segments {
		need += len(segment) + 1
	}
	return need
}
