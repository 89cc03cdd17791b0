// Package detectors contains the wire-format recognizers for scanned
// payment codes. Each detector is a pure function of the input text:
// it either returns a Candidate carrying the fields it extracted, or
// nil to decline. Detectors never report errors; malformed input of
// any shape is a decline, so the chain can fall through to the next
// format.
package detectors

import "github.com/yeheskieltame/qrpay/types"

// Candidate is the raw, format-specific parse a detector hands to the
// normalizer. Amounts stay in whichever unit the wire format used:
// exactly one of AmountWholeUnit (decimal, e.g. "1.5" ETH) and
// AmountSmallest (integer wei) is set when an amount was present.
type Candidate struct {
	Format   types.SourceFormat
	Business bool

	Recipient string

	AmountWholeUnit string
	AmountSmallest  string

	TokenAddress string
	TokenSymbol  string

	Category     string
	BusinessName string
	Message      string
	Reference    string
}
