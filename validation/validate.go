// Package validation holds the single rule set every parsed intent
// passes through before it may reach execution. The rules are applied
// in a fixed order and short-circuit on the first failure; results are
// structured verdicts, never errors.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/utils"
)

var structValidator *validator.Validate

func init() {
	structValidator = validator.New()
}

// Validate applies the rule chain to an intent:
//
//  1. the recipient must be a well-formed address,
//  2. a present, non-zero amount must be a positive integer,
//  3. business kinds must carry a non-empty category.
//
// A structural pass over the intent's validate tags runs first; an
// intent that fails it (unknown kind, missing raw payload) was not
// produced by this library's parse path and reports no-match.
func Validate(intent *types.PaymentIntent) types.ValidationResult {
	if intent == nil {
		return types.ValidationResult{Error: types.ErrNoMatch}
	}

	if err := structValidator.Struct(intent); err != nil {
		if missingRecipient(err) {
			return types.ValidationResult{Error: types.ErrInvalidAddress}
		}
		return types.ValidationResult{Error: types.ErrNoMatch}
	}

	if !utils.IsValidAddress(intent.RecipientAddress) {
		return types.ValidationResult{Error: types.ErrInvalidAddress}
	}

	if intent.HasAmount() && !utils.IsPositiveInteger(intent.AmountRaw) {
		return types.ValidationResult{Error: types.ErrInvalidAmount}
	}

	if intent.Kind.IsBusiness() && strings.TrimSpace(intent.Category) == "" {
		return types.ValidationResult{Error: types.ErrMissingCategory}
	}

	return types.ValidationResult{Valid: true}
}

func missingRecipient(err error) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() == "RecipientAddress" {
			return true
		}
	}
	return false
}
