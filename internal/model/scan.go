// Package model defines the data structures for comment scrubbing.
package model

// Path represents a file system path.
type Path string

// ScanState classifies the last character the scanner consumed.
type ScanState int

// Scanner states. Exactly one is active at any point; it is the only
// classification threaded between successive line scans.
const (
	// StateNormal means plain code outside any comment or literal.
	StateNormal ScanState = iota
	// StateLineComment means inside a // comment, until end of line.
	StateLineComment
	// StateBlockComment means inside a /* */ comment, possibly spanning lines.
	StateBlockComment
	// StateString means inside a "..." literal.
	StateString
	// StateStringEscape means the previous string character was a backslash.
	StateStringEscape
	// StateChar means inside a '...' literal.
	StateChar
	// StateCharEscape means the previous char-literal character was a backslash.
	StateCharEscape
	// StateRawString means inside a raw string literal r"..." / r#"..."#.
	StateRawString
)

// StreamState is the carried-over scanner state between line scans. It is
// constructed once per file, mutated in place by ScanLine, and discarded at
// EOF. Ending a file in a non-Normal state is an accepted boundary
// condition, not a fault.
type StreamState struct {
	State ScanState

	// RawFence is the number of # marks that opened the current raw string.
	// A raw string opened with N hashes closes only at a quote followed by
	// exactly N hashes.
	RawFence int

	// BlockStart is the line where the currently open block comment began,
	// or 0 when none is open. A block event must report the full start/end
	// span, not just the line where the comment happens to close.
	BlockStart int

	// FullLineComment marks the active line comment as occupying the whole
	// line, so its trailing newline is suppressed along with the text.
	FullLineComment bool
}

// CommentKind represents the category of a removed comment.
type CommentKind string

const (
	// CommentLine represents a // comment.
	CommentLine CommentKind = "line"
	// CommentBlock represents a /* */ comment.
	CommentBlock CommentKind = "block"
)

// CommentEvent records one removed comment. Created by the scanner,
// collected by the caller for reporting, never mutated afterwards.
type CommentEvent struct {
	StartLine int         `json:"start_line"`
	EndLine   int         `json:"end_line"`
	Kind      CommentKind `json:"kind"`
}

// HeaderDecision is the result of header detection: how many leading lines
// look like a preservable header, and a bounded preview for the
// confirmation prompt.
type HeaderDecision struct {
	Lines   int
	Preview string
}
