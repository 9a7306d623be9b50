package model

// ScrubReport holds the outcome of scrubbing a single file.
type ScrubReport struct {
	Input  Path           `json:"input"`
	Hash   string         `json:"hash,omitempty"` // sha256 of the input file
	Events []CommentEvent `json:"events"`
}

// LineComments counts the removed // comments.
func (r ScrubReport) LineComments() int {
	return r.countKind(CommentLine)
}

// BlockComments counts the removed /* */ comments.
func (r ScrubReport) BlockComments() int {
	return r.countKind(CommentBlock)
}

func (r ScrubReport) countKind(kind CommentKind) int {
	n := 0

	for _, ev := range r.Events {
		if ev.Kind == kind {
			n++
		}
	}

	return n
}

// FileEstimate holds per-file comment counts for a dry run over multiple
// inputs.
type FileEstimate struct {
	Path          Path
	LineComments  int
	BlockComments int
}
