package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	m "github.com/mouse-blink/scrub/internal/model"
)

const (
	maxPreviewLines = 10
	maxHeaderLines  = 50
)

// declKeywords are the declaration openers that mark the first code line
// and therefore the end of a header.
var declKeywords = []string{"use ", "mod ", "pub ", "fn ", "struct ", "enum ", "impl ", "trait "}

// DetectHeader scans the leading lines of a source and guesses how many of
// them form a header (license banner, doc comments) worth preserving
// verbatim. Accumulation stops at the first code line, after more than two
// consecutive blank lines following a comment, or at a hard cap of 50
// lines. When nothing comment-like is ever seen the header is empty.
func DetectHeader(r io.Reader) (m.HeaderDecision, error) {
	reader := bufio.NewReader(r)

	var preview []string

	lineCount := 0
	sawCode := false
	sawComment := false
	blankRun := 0

scan:
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return m.HeaderDecision{}, fmt.Errorf("read line during header detection: %w", err)
		}

		atEOF := err == io.EOF
		if line == "" {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lineCount++

		if lineCount <= maxPreviewLines {
			preview = append(preview, line)
		}

		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			blankRun++
			if blankRun > 2 && sawComment {
				break scan
			}

		case isHeaderLine(trimmed):
			blankRun = 0
			sawComment = true

		case isCodeLine(trimmed):
			blankRun = 0
			sawCode = true

			break scan

		default:
			blankRun = 0

			// Arbitrary text after the first few lines ends the search.
			if lineCount > 3 && sawComment {
				break scan
			}
		}

		if lineCount >= maxHeaderLines || atEOF {
			break
		}
	}

	var headerLines int

	switch {
	case sawCode:
		headerLines = lineCount - 1
	case sawComment && blankRun > 2:
		// The blank run that stopped the search is not part of the header.
		headerLines = lineCount - blankRun
	case sawComment:
		headerLines = lineCount
	}

	return m.HeaderDecision{
		Lines:   headerLines,
		Preview: buildPreview(preview, lineCount),
	}, nil
}

// isHeaderLine reports whether a trimmed line looks like part of a header:
// an inner attribute, a doc comment, or an ordinary comment opener.
func isHeaderLine(trimmed string) bool {
	for _, prefix := range []string{"#![", "//!", "///", "//", "/*"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return false
}

// isCodeLine reports whether a trimmed line starts with a declaration
// keyword from the recognized set.
func isCodeLine(trimmed string) bool {
	for _, kw := range declKeywords {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}

	return false
}

func buildPreview(preview []string, lineCount int) string {
	if len(preview) == 0 {
		return ""
	}

	text := strings.Join(preview, "\n")
	if len(preview) < lineCount {
		text = fmt.Sprintf("%s\n... (+%d more lines)", text, lineCount-len(preview))
	}

	return text
}
