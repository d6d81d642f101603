package extract

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// RepairJSON normalizes a candidate JSON fragment so it parses under a strict
// reader: single quotes become double quotes and every whitespace run
// (including newlines) collapses to a single space. No parsing is attempted.
//
// The blanket quote substitution corrupts values that legitimately contain an
// apostrophe; that is the documented baseline behavior.
func RepairJSON(s string) string {
	s = strings.ReplaceAll(s, "'", `"`)
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}
