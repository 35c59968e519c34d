package pathdsl

import (
	"os"
	"path/filepath"

	pool "github.com/libp2p/go-buffer-pool"
)

// staging seeds a Path expansion. When the caller hands over an owned
// *PathBuf as the first segment, staging adopts its storage instead of
// copying, so the remaining segments append into the existing buffer.
// A PathBuf passed by value, or in any later position, is copied.
type staging struct {
	dst *PathBuf
}

// stage decides what the expansion builds into and which segments are
// left to append.
func stage(segments []any) (staging, []any) {
	if len(segments) > 0 {
		if owned, ok := segments[0].(*PathBuf); ok && owned != nil {
			return staging{dst: owned}, segments[1:]
		}
	}
	return staging{dst: New()}, segments
}

// Path builds a PathBuf from the given segments in one pass. It accepts
// strings, byte slices, PathBuf values and *PathBuf pointers; any other
// type panics.
//
// The joined size is computed up front so the buffer grows at most
// once, however many segments there are. Handing a *PathBuf first
// transfers ownership of its storage to the result: the returned
// pointer is that same buffer, extended in place when capacity allows.
//
// Path(a, b, c) is equivalent to pushing a, b and c onto an empty
// buffer in order.
func Path(segments ...any) *PathBuf {
	st, rest := stage(segments)

	need := 0
	for _, segment := range rest {
		need += segmentLen(segment) + 1
	}
	st.dst.Grow(need)

	for _, segment := range rest {
		st.dst.pushSegment(segment)
	}
	return st.dst
}

// Join joins any number of string segments with the system separator,
// writing through a pooled scratch buffer sized up front so the only
// retained allocation is the returned string.
//
// Unlike filepath.Join the result is not cleaned: Join produces exactly
// what pushing each segment onto an empty buffer would, so empty
// segments are skipped, separators are never doubled, and an absolute
// segment discards everything before it.
func Join(segments ...string) string {
	// An absolute segment replaces everything accumulated before it,
	// so only the tail starting at the last one matters.
	start := 0
	for i, segment := range segments {
		if segment != "" && replaces(segment[0], segment) {
			start = i
		}
	}
	segments = segments[start:]

	size := 0
	sepDone := false
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if size > 0 && !sepDone {
			size++
		}
		size += len(segment)
		sepDone = os.IsPathSeparator(segment[len(segment)-1])
	}
	if size == 0 {
		return ""
	}

	scratch := pool.NewBuffer(nil)
	scratch.Grow(size)
	defer scratch.Reset()

	sepDone = false
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if scratch.Len() > 0 && !sepDone {
			scratch.WriteByte(filepath.Separator)
		}
		scratch.WriteString(segment)
		sepDone = os.IsPathSeparator(segment[len(segment)-1])
	}

	return scratch.String()
}
