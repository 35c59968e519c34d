package pathdsl

import (
	"fmt"

	"github.com/gosimple/slug"
)

// pushSegment multiplexes the accepted segment kinds onto the buffer.
// It is shared by Div and Path so the two entry points accept exactly
// the same inputs.
func (p *PathBuf) pushSegment(segment any) {
	switch s := segment.(type) {
	case string:
		p.Push(s)
	case []byte:
		p.PushBytes(s)
	case PathBuf:
		p.PushBytes(s.buf)
	case *PathBuf:
		if s != nil {
			p.PushBytes(s.buf)
		}
	default:
		panic(fmt.Sprintf("pathdsl: unsupported segment type %T", segment))
	}
}

// segmentLen returns an upper bound on the bytes a segment contributes.
// Used to size the buffer before appending. Panics on the same kinds
// pushSegment rejects, so bad input fails before anything is mutated.
func segmentLen(segment any) int {
	switch s := segment.(type) {
	case string:
		return len(s)
	case []byte:
		return len(s)
	case PathBuf:
		return len(s.buf)
	case *PathBuf:
		if s == nil {
			return 0
		}
		return len(s.buf)
	default:
		panic(fmt.Sprintf("pathdsl: unsupported segment type %T", segment))
	}
}

// SafeSegment sanitizes an arbitrary string into a portable path
// segment: lowercase, ascii, no separators or shell metacharacters.
// Lossy; meant for deriving directory names from user-supplied labels.
func SafeSegment(s string) string {
	return slug.Make(s)
}
