package pagination

import (
	"strconv"
	"strings"
	"unicode"
)

// JumpState is the ephemeral state of the jump-to-page input.
type JumpState struct {
	// Open reports whether the input is shown.
	Open bool

	// Draft is the text typed so far, kept verbatim.
	Draft string
}

// ParseJumpTarget reads the leading integer of text. Surrounding whitespace and
// a single sign are accepted and parsing stops at the first non-digit, so "2abc"
// and "2.9" both yield 2. ok is false when no digit leads the text.
func ParseJumpTarget(text string) (int, bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		// Only overflow reaches here; such a page can never be in range.
		return 0, false
	}
	return n, true
}
