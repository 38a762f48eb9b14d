// Package sequence holds the next-item selection logic: parsing a sequence
// label out of previously published text and choosing the entry that follows
// it in the store.
package sequence

import (
	"regexp"
	"strconv"
)

// Parser extracts a sequence label from the text of a previously published
// post. A label is recognized only when the text begins with the configured
// prefix followed by an integer and a colon, e.g. "TRCP 7: ...". Anchoring
// to the start of the text avoids false positives from numbers appearing
// elsewhere in the body.
type Parser struct {
	re *regexp.Regexp
}

// NewParser builds a Parser for the given prefix.
func NewParser(prefix string) *Parser {
	return &Parser{
		re: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `\s+(\d+):`),
	}
}

// Parse returns the label embedded in text. ok is false when no label is
// present. Absence of a label is a normal outcome, not an error: the last
// post may be a retweet or a hand-written message.
func (p *Parser) Parse(text string) (label int, ok bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// digits only, so this is an overflow; treat as unrecognized
		return 0, false
	}
	return n, true
}
