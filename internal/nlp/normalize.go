package nlp

import (
	"regexp"
	"strings"
)

type abbreviation struct {
	pattern     *regexp.Regexp
	replacement string
}

// Whole-word matches only: "bg" expands, "bgl" does not.
var abbreviations = []abbreviation{
	{regexp.MustCompile(`(?i)\bbg\b`), "blood glucose"},
	{regexp.MustCompile(`(?i)\bbs\b`), "blood sugar"},
	{regexp.MustCompile(`(?i)\bhba1c\b`), "hemoglobin a1c"},
}

// Normalize collapses whitespace runs, trims the ends and expands common
// clinical abbreviations. An empty message normalizes to an empty string.
func (a *Analyzer) Normalize(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	for _, abbr := range a.abbrevs {
		text = abbr.pattern.ReplaceAllString(text, abbr.replacement)
	}
	return text
}
