// Package domain implements the comment scrubbing core: the line scanner,
// the header detector, and the workflow tying them to the adapters.
package domain

import (
	"strings"

	m "github.com/mouse-blink/scrub/internal/model"
)

// ScanLine feeds one line through the scrubbing automaton and returns the
// filtered line plus the comment-removal events it produced. The caller
// supplies lines in file order, each with its trailing newline intact, and
// threads the same state through every call, so the scanner behaves as one
// continuous automaton over the whole file.
//
// The scanner never fails: an unterminated comment, string, or raw string
// at end of input simply leaves the state where it was.
func ScanLine(line string, lineNum int, state *m.StreamState) (string, []m.CommentEvent) {
	var out strings.Builder

	out.Grow(len(line))

	var events []m.CommentEvent

	runes := []rune(line)

	i := 0
	for i < len(runes) {
		c := runes[i]
		i++

		switch state.State {
		case m.StateNormal:
			i = scanNormal(c, runes, i, &out, lineNum, state, &events)

		case m.StateLineComment:
			// Comment text is discarded. The newline survives only when
			// code preceded the comment on this line.
			if c == '\n' {
				if !state.FullLineComment {
					out.WriteRune(c)
				}

				state.State = m.StateNormal
				state.FullLineComment = false
			}

		case m.StateBlockComment:
			if c == '*' && i < len(runes) && runes[i] == '/' {
				i++
				state.State = m.StateNormal

				if state.BlockStart != 0 {
					events = append(events, m.CommentEvent{
						StartLine: state.BlockStart,
						EndLine:   lineNum,
						Kind:      m.CommentBlock,
					})
					state.BlockStart = 0
				}
			}

		case m.StateString:
			out.WriteRune(c)

			switch c {
			case '\\':
				state.State = m.StateStringEscape
			case '"':
				state.State = m.StateNormal
			}

		case m.StateStringEscape:
			// An escaped character is never reinterpreted.
			out.WriteRune(c)
			state.State = m.StateString

		case m.StateChar:
			out.WriteRune(c)

			switch c {
			case '\\':
				state.State = m.StateCharEscape
			case '\'':
				state.State = m.StateNormal
			}

		case m.StateCharEscape:
			out.WriteRune(c)
			state.State = m.StateChar

		case m.StateRawString:
			out.WriteRune(c)

			if c == '"' {
				i = scanRawStringClose(runes, i, &out, state)
			}
		}
	}

	return out.String(), events
}

// scanNormal handles one character in the Normal state and returns the
// updated cursor. The single character of lookahead is what disambiguates
// // from /* from a bare slash without backtracking.
func scanNormal(c rune, runes []rune, i int, out *strings.Builder, lineNum int, state *m.StreamState, events *[]m.CommentEvent) int {
	switch c {
	case '/':
		switch {
		case i < len(runes) && runes[i] == '/':
			i++

			// A comment preceded only by whitespace swallows the whole
			// line, trailing newline included. Code before the comment
			// keeps its line.
			if strings.TrimSpace(out.String()) == "" {
				out.Reset()

				state.FullLineComment = true
			} else {
				state.FullLineComment = false
			}

			state.State = m.StateLineComment

			*events = append(*events, m.CommentEvent{
				StartLine: lineNum,
				EndLine:   lineNum,
				Kind:      m.CommentLine,
			})
		case i < len(runes) && runes[i] == '*':
			i++
			state.State = m.StateBlockComment

			if state.BlockStart == 0 {
				state.BlockStart = lineNum
			}
		default:
			out.WriteRune(c)
		}

	case '"':
		out.WriteRune(c)
		state.State = m.StateString

	case '\'':
		out.WriteRune(c)
		state.State = m.StateChar

	case 'r':
		// Possible raw string opener: r, zero or more #, then a quote.
		hashes := 0
		for i+hashes < len(runes) && runes[i+hashes] == '#' {
			hashes++
		}

		out.WriteRune('r')

		for range hashes {
			out.WriteRune('#')
		}

		if i+hashes < len(runes) && runes[i+hashes] == '"' {
			out.WriteRune('"')

			i += hashes + 1
			state.RawFence = hashes
			state.State = m.StateRawString
		} else {
			// False start: the consumed r#... was ordinary code.
			i += hashes
		}

	default:
		out.WriteRune(c)
	}

	return i
}

// scanRawStringClose runs after a quote inside a raw string. The literal
// closes only when the quote is followed by exactly as many hashes as
// opened it; hashes consumed by a failed attempt are emitted and the
// literal stays open.
func scanRawStringClose(runes []rune, i int, out *strings.Builder, state *m.StreamState) int {
	hashes := 0
	for hashes < state.RawFence && i+hashes < len(runes) && runes[i+hashes] == '#' {
		hashes++
	}

	for range hashes {
		out.WriteRune('#')
	}

	i += hashes

	if hashes == state.RawFence {
		state.State = m.StateNormal
		state.RawFence = 0
	}

	return i
}
