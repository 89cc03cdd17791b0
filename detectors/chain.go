package detectors

import (
	"strings"

	"github.com/yeheskieltame/qrpay/types"
)

// Detector pairs a format tag with its matcher so callers can observe
// which detector produced (or declined) a candidate.
type Detector struct {
	Format types.SourceFormat
	Match  func(text string) *Candidate
}

// Chain runs the detectors in their fixed priority order. Business
// formats go first: their structural markers (/pay/, type:"business")
// are more specific than the generic personal formats, and the EIP-681
// scheme prefix beats the app-URL fallback when both could claim an
// amount-bearing link. The order is first-match-wins and not
// configurable.
type Chain struct {
	detectors []Detector
}

// NewChain builds the detection chain. appDomain customizes the
// app-URL marker; pass "" for DefaultAppDomain.
func NewChain(appDomain string) *Chain {
	if appDomain == "" {
		appDomain = DefaultAppDomain
	}
	return &Chain{
		detectors: []Detector{
			{types.FormatBusinessURL, matchBusinessURL},
			{types.FormatBusinessJSON, matchBusinessJSON},
			{types.FormatEIP681URI, matchEIP681},
			{types.FormatBareAddress, matchBareAddress},
			{types.FormatAppURL, newAppURLMatcher(appDomain)},
		},
	}
}

// Detectors exposes the chain in priority order, for callers that
// instrument each attempt.
func (c *Chain) Detectors() []Detector {
	return c.detectors
}

// Detect trims the input and returns the first matching candidate, or
// nil when every detector declines.
func (c *Chain) Detect(text string) *Candidate {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	for _, d := range c.detectors {
		if cand := d.Match(text); cand != nil {
			return cand
		}
	}
	return nil
}
