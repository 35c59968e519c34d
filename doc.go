// Package pathdsl builds filesystem path values by chaining
// divide-style appends instead of sequences of filepath.Join calls.
//
// The central type is PathBuf, a mutable, growable path buffer that
// forwards essentially everything to path/filepath and os. Paths are
// assembled either by chaining:
//
//	p := pathdsl.FromString("workspace").Div("packages").Div("ui")
//
// or in one shot with the variadic constructor, which precomputes the
// joined size and fills the buffer in a single pass:
//
//	p := pathdsl.Path("workspace", "packages", "ui")
//
// Path accepts strings, byte slices, and existing PathBufs. Handing a
// *PathBuf as the first argument transfers ownership of its storage to
// the result, so building on top of an existing buffer costs no extra
// allocation when its capacity suffices.
//
// Appends follow the usual path-buffer rules: appending onto an empty
// buffer stores the segment verbatim, an absolute segment replaces the
// accumulated value, and exactly one platform separator is placed at
// each boundary. No cleaning happens implicitly; call Clean when you
// want it.
package pathdsl
