package detectors

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/utils"
)

// Recipient field aliases accepted in business JSON payloads, checked
// in order; the first present and non-empty field wins.
var recipientFieldPriority = []string{"address", "to", "recipient"}

var (
	tokenFieldPriority     = []string{"tokenAddress", "token"}
	symbolFieldPriority    = []string{"tokenSymbol", "symbol"}
	nameFieldPriority      = []string{"business", "businessName", "name"}
	referenceFieldPriority = []string{"reference", "ref"}
)

// wholeUnitThreshold drives the amount-unit heuristic for payloads
// that carry no explicit unit tag: an integer amount below 1000 is
// read as whole units, anything at or above it as already
// smallest-unit. Existing QR producers rely on this rule.
var wholeUnitThreshold = decimal.NewFromInt(1000)

// matchBusinessJSON recognizes JSON payloads declaring
// "type":"business". The amount may be a quoted string or a bare
// number; its unit comes from an explicit "unit" field ("wei" or
// "ether") when present, otherwise from the decimal-point-or-threshold
// heuristic above.
func matchBusinessJSON(text string) *Candidate {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return nil
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil
	}

	if s, _ := payload["type"].(string); s != "business" {
		return nil
	}

	recipient := firstStringField(payload, recipientFieldPriority)
	if !utils.IsValidAddress(recipient) {
		return nil
	}

	c := &Candidate{
		Format:       types.FormatBusinessJSON,
		Business:     true,
		Recipient:    recipient,
		TokenAddress: firstStringField(payload, tokenFieldPriority),
		TokenSymbol:  firstStringField(payload, symbolFieldPriority),
		Category:     strings.TrimSpace(firstStringField(payload, []string{"category"})),
		BusinessName: firstStringField(payload, nameFieldPriority),
		Message:      firstStringField(payload, []string{"message"}),
		Reference:    firstStringField(payload, referenceFieldPriority),
	}

	// No category default here, unlike business URLs: a JSON payload
	// missing its category fails validation instead.

	if amount := stringField(payload, "amount"); amount != "" {
		whole, ok := amountIsWholeUnit(amount, stringField(payload, "unit"))
		if !ok {
			return nil
		}
		if whole {
			c.AmountWholeUnit = amount
		} else {
			c.AmountSmallest = amount
		}
	}

	return c
}

// amountIsWholeUnit decides which unit an untagged amount string is
// denominated in. Returns ok=false for non-numeric amounts.
func amountIsWholeUnit(amount, unit string) (whole bool, ok bool) {
	switch strings.ToLower(unit) {
	case "wei":
		return false, true
	case "ether", "eth":
		return true, true
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return false, false
	}

	if strings.ContainsRune(amount, '.') || d.LessThan(wholeUnitThreshold) {
		return true, true
	}
	return false, true
}

// stringField reads a field that may be a JSON string or number.
func stringField(payload map[string]any, key string) string {
	switch v := payload[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

func firstStringField(payload map[string]any, priority []string) string {
	for _, key := range priority {
		if v := stringField(payload, key); v != "" {
			return v
		}
	}
	return ""
}
