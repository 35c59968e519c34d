package pathdsl

// Div appends one segment in place and returns the receiver, so appends
// read as a chain:
//
//	root.Div("packages").Div("ui").Div("src")
//
// Accepted segment kinds are string, []byte, PathBuf and *PathBuf; any
// other type panics. Div reuses the receiver's storage; when the left
// side must be preserved use DivCopy or Clone first.
func (p *PathBuf) Div(segment any) *PathBuf {
	p.pushSegment(segment)
	return p
}

// DivCopy clones the receiver, appends the segment to the clone and
// returns it, leaving the receiver untouched.
func (p *PathBuf) DivCopy(segment any) *PathBuf {
	return p.Clone().Div(segment)
}
