package pathdsl

import (
	"github.com/bmatcuk/doublestar"
)

// Match reports whether the path matches a doublestar glob pattern.
// Patterns use slash separators regardless of platform; the path is
// converted before matching.
func (p *PathBuf) Match(pattern string) (bool, error) {
	return doublestar.Match(pattern, p.ToUnix())
}
