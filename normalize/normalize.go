// Package normalize converts format-specific detector candidates into
// the canonical PaymentIntent shape: exact amount unit conversion,
// kind classification, and metadata defaulting.
package normalize

import (
	"github.com/yeheskieltame/qrpay/detectors"
	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/utils"
)

// Intent builds the canonical PaymentIntent from a detector candidate.
// Returns nil when the candidate cannot be normalized (non-numeric or
// unrepresentable amount, malformed token address) — equivalent to the
// originating detector declining, so the caller treats it as no match.
//
// A zero amount is dropped here, making "0" indistinguishable from an
// absent amount everywhere downstream.
func Intent(c *detectors.Candidate, rawPayload string) *types.PaymentIntent {
	if c == nil {
		return nil
	}

	amountRaw, amountDisplay, ok := normalizeAmount(c)
	if !ok {
		return nil
	}

	if c.TokenAddress != "" && !utils.IsValidAddress(c.TokenAddress) {
		return nil
	}

	intent := &types.PaymentIntent{
		Kind:             classify(c, amountRaw != ""),
		RecipientAddress: c.Recipient,
		AmountRaw:        amountRaw,
		AmountDisplay:    amountDisplay,
		TokenAddress:     c.TokenAddress,
		TokenSymbol:      c.TokenSymbol,
		Category:         c.Category,
		BusinessName:     c.BusinessName,
		Message:          c.Message,
		Reference:        c.Reference,
		SourceFormat:     c.Format,
		RawPayload:       rawPayload,
	}

	return intent
}

func normalizeAmount(c *detectors.Candidate) (raw, display string, ok bool) {
	switch {
	case c.AmountWholeUnit != "":
		raw, ok = utils.ToSmallestUnit(c.AmountWholeUnit, types.NativeAsset.Decimals)
		if !ok {
			return "", "", false
		}
	case c.AmountSmallest != "":
		n, valid := utils.ParseBigInt(c.AmountSmallest)
		if !valid || n.Sign() < 0 {
			return "", "", false
		}
		raw = n.String()
	default:
		return "", "", true
	}

	if raw == "0" {
		return "", "", true
	}

	display, ok = utils.FromSmallestUnit(raw, types.NativeAsset.Decimals)
	if !ok {
		return "", "", false
	}
	return raw, display, true
}

// classify derives the intent kind: business formats split on token
// presence, personal formats on amount presence.
func classify(c *detectors.Candidate, hasAmount bool) types.PaymentKind {
	if c.Business {
		if c.TokenAddress != "" {
			return types.KindBusinessToken
		}
		return types.KindBusinessNative
	}
	if hasAmount {
		return types.KindPersonalDynamic
	}
	return types.KindPersonalStatic
}
