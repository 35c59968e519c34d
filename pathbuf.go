package pathdsl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// PathBuf is a mutable, growable buffer holding a filesystem path using
// system separators. The zero value is an empty path, ready to use.
//
// Like bytes.Buffer, a PathBuf owns its storage and grows it as needed.
// Methods that mutate are defined on the pointer and return the receiver
// so appends can be chained.
type PathBuf struct {
	buf []byte
}

// _nonRelativeSentinel is the leading sentinel that indicates traversal.
const _nonRelativeSentinel = ".." + string(filepath.Separator)

// New returns an empty PathBuf.
func New() *PathBuf {
	return &PathBuf{}
}

// FromString returns a PathBuf holding s.
func FromString(s string) *PathBuf {
	return &PathBuf{buf: append([]byte(nil), s...)}
}

// FromBytes returns a PathBuf holding a copy of b.
func FromBytes(b []byte) *PathBuf {
	return &PathBuf{buf: append([]byte(nil), b...)}
}

// FromUnix returns a PathBuf for a slash-separated path, converting the
// separators to the system convention.
func FromUnix(s string) *PathBuf {
	return FromString(filepath.FromSlash(s))
}

// FromUpstream takes a path string and wraps it without checking.
// It exists to communicate intent at the places where path strings enter
// from outside the library's control.
func FromUpstream(s string) *PathBuf {
	return FromString(s)
}

// Abs wraps s after verifying that it is an absolute path.
func Abs(s string) (*PathBuf, error) {
	if !filepath.IsAbs(s) {
		return nil, errors.Errorf("%v is not an absolute path", s)
	}
	return FromString(s), nil
}

// Cwd returns the current working directory as a PathBuf.
func Cwd() (*PathBuf, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "invalid working directory")
	}
	return FromString(cwd), nil
}

// String returns the path as a string.
func (p *PathBuf) String() string {
	return string(p.buf)
}

// Bytes returns the underlying storage. Like bytes.Buffer.Bytes, the
// slice aliases the buffer and is only valid until the next mutation.
func (p *PathBuf) Bytes() []byte {
	return p.buf
}

// Len returns the length of the path in bytes.
func (p *PathBuf) Len() int {
	return len(p.buf)
}

// IsZero reports whether the buffer holds an empty path.
func (p *PathBuf) IsZero() bool {
	return len(p.buf) == 0
}

// Grow ensures capacity for at least n more bytes.
func (p *PathBuf) Grow(n int) {
	if cap(p.buf)-len(p.buf) >= n {
		return
	}
	next := make([]byte, len(p.buf), len(p.buf)+n)
	copy(next, p.buf)
	p.buf = next
}

// Reset truncates the buffer to an empty path, keeping the storage.
func (p *PathBuf) Reset() {
	p.buf = p.buf[:0]
}

// Clone returns an independent copy of the buffer.
func (p *PathBuf) Clone() *PathBuf {
	return &PathBuf{buf: append([]byte(nil), p.buf...)}
}

// replaces reports whether appending segment must replace the
// accumulated value instead of extending it. Absolute segments and, on
// Windows, rooted segments both replace.
func replaces(first byte, segment string) bool {
	return os.IsPathSeparator(first) || filepath.IsAbs(segment)
}

// Push appends one segment in place.
//
// Pushing onto an empty buffer stores the segment verbatim. Pushing an
// absolute segment replaces the buffer. Otherwise exactly one separator
// is placed at the boundary; none is added when the buffer already ends
// with one. Empty segments are ignored.
func (p *PathBuf) Push(segment string) {
	if segment == "" {
		return
	}
	if len(p.buf) == 0 || replaces(segment[0], segment) {
		p.buf = append(p.buf[:0], segment...)
		return
	}
	if !os.IsPathSeparator(p.buf[len(p.buf)-1]) {
		p.buf = append(p.buf, filepath.Separator)
	}
	p.buf = append(p.buf, segment...)
}

// PushBytes is Push for a byte slice segment. The bytes are copied.
func (p *PathBuf) PushBytes(segment []byte) {
	if len(segment) == 0 {
		return
	}
	if len(p.buf) == 0 || replaces(segment[0], string(segment)) {
		p.buf = append(p.buf[:0], segment...)
		return
	}
	if !os.IsPathSeparator(p.buf[len(p.buf)-1]) {
		p.buf = append(p.buf, filepath.Separator)
	}
	p.buf = append(p.buf, segment...)
}

// IsAbs implements filepath.IsAbs for the buffer.
func (p *PathBuf) IsAbs() bool {
	return filepath.IsAbs(p.String())
}

// Dir implements filepath.Dir for the buffer.
func (p *PathBuf) Dir() *PathBuf {
	return FromString(filepath.Dir(p.String()))
}

// Base implements filepath.Base for the buffer.
func (p *PathBuf) Base() string {
	return filepath.Base(p.String())
}

// Ext implements filepath.Ext for the buffer.
func (p *PathBuf) Ext() string {
	return filepath.Ext(p.String())
}

// VolumeName implements filepath.VolumeName for the buffer.
func (p *PathBuf) VolumeName() string {
	return filepath.VolumeName(p.String())
}

// Clean returns a cleaned copy of the path. The receiver is untouched;
// cleaning never happens implicitly during appends.
func (p *PathBuf) Clean() *PathBuf {
	return FromString(filepath.Clean(p.String()))
}

// Segments returns the separator-delimited elements of the path,
// skipping empty ones. The root of an absolute path is not an element.
func (p *PathBuf) Segments() []string {
	return strings.FieldsFunc(p.String(), func(r rune) bool {
		return os.IsPathSeparator(uint8(r))
	})
}

// RelativeTo calculates the relative path from base to p.
func (p *PathBuf) RelativeTo(base *PathBuf) (*PathBuf, error) {
	processed, err := filepath.Rel(base.String(), p.String())
	if err != nil {
		return nil, err
	}
	return FromString(processed), nil
}

// ContainsPath returns true if this path is a parent of the argument.
// Relies on the stdlib to generate a relative path and then checks
// whether the first step traverses out.
func (p *PathBuf) ContainsPath(other *PathBuf) (bool, error) {
	rel, err := filepath.Rel(p.String(), other.String())
	if err != nil {
		return false, err
	}
	// Rel to the direct parent is bare ".." with no separator.
	return rel != ".." && !strings.HasPrefix(rel, _nonRelativeSentinel), nil
}

// HasPrefix is strings.HasPrefix for paths, ensuring that it matches on
// separator boundaries. This does NOT perform Clean in advance.
func (p *PathBuf) HasPrefix(prefix *PathBuf) bool {
	prefixLen := prefix.Len()
	pathLen := p.Len()

	if prefixLen > pathLen {
		// Can't be a prefix if longer.
		return false
	} else if prefixLen == pathLen {
		// Can be a prefix if they're equal, but otherwise no.
		return bytes.Equal(p.buf, prefix.buf)
	}

	// prefix is definitely shorter than p.
	// We need to confirm that p[len(prefix)] is a system separator.
	return bytes.HasPrefix(p.buf, prefix.buf) && os.IsPathSeparator(p.buf[prefixLen])
}

// Equal reports whether two buffers hold byte-identical paths.
func (p *PathBuf) Equal(other *PathBuf) bool {
	return bytes.Equal(p.buf, other.buf)
}

// Compare orders two buffers lexically by bytes, bytes.Compare style.
func (p *PathBuf) Compare(other *PathBuf) int {
	return bytes.Compare(p.buf, other.buf)
}

// ToUnix returns the path with slash separators, for interfacing with
// APIs that require the unix convention.
func (p *PathBuf) ToUnix() string {
	return filepath.ToSlash(p.String())
}

// MarshalText implements encoding.TextMarshaler.
func (p *PathBuf) MarshalText() ([]byte, error) {
	return append([]byte(nil), p.buf...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PathBuf) UnmarshalText(text []byte) error {
	p.buf = append(p.buf[:0], text...)
	return nil
}
