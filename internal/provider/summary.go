package provider

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// SummarySanitizer turns the provider's HTML recipe summaries into plain text.
// A bluemonday policy is safe for concurrent use.
type SummarySanitizer struct {
	policy *bluemonday.Policy
}

func NewSummarySanitizer() *SummarySanitizer {
	return &SummarySanitizer{policy: bluemonday.StrictPolicy()}
}

// PlainText strips every tag, decodes entities and collapses whitespace.
func (s *SummarySanitizer) PlainText(raw string) string {
	text := html.UnescapeString(s.policy.Sanitize(raw))
	return strings.Join(strings.Fields(text), " ")
}
