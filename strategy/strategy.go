// Package strategy maps payment kinds to the abstract execution
// mechanism downstream should invoke. The mapping is a static lookup
// table; it is never computed from intent contents beyond the kind.
package strategy

import (
	"fmt"

	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/validation"
)

type entry struct {
	method         types.TransferMethod
	requiresAmount bool
	describe       func(*types.PaymentIntent) string
}

var table = map[types.PaymentKind]entry{
	types.KindBusinessToken: {
		method:         types.MethodVaultDeposit,
		requiresAmount: true,
		describe: func(i *types.PaymentIntent) string {
			return fmt.Sprintf("Token payment to business vault (%s)", i.Asset().Symbol)
		},
	},
	types.KindBusinessNative: {
		method:         types.MethodVaultDeposit,
		requiresAmount: true,
		describe: func(*types.PaymentIntent) string {
			return "Native asset payment to business vault"
		},
	},
	types.KindPersonalStatic: {
		method:         types.MethodDirectTransfer,
		requiresAmount: false,
		describe: func(*types.PaymentIntent) string {
			return "Personal transfer - amount entered by user"
		},
	},
	types.KindPersonalDynamic: {
		method:         types.MethodDirectTransfer,
		requiresAmount: true,
		describe: func(i *types.PaymentIntent) string {
			if i.AmountDisplay == "" {
				return "Personal transfer"
			}
			return fmt.Sprintf("Personal transfer of %s %s", i.AmountDisplay, i.Asset().Symbol)
		},
	},
}

// ForIntent resolves the execution strategy for an intent's kind.
// The second return is false for a kind outside the closed set.
func ForIntent(intent *types.PaymentIntent) (types.ExecutionStrategy, bool) {
	if intent == nil {
		return types.ExecutionStrategy{}, false
	}
	e, ok := table[intent.Kind]
	if !ok {
		return types.ExecutionStrategy{}, false
	}
	return types.ExecutionStrategy{
		Method:         e.method,
		RequiresAmount: e.requiresAmount,
		Description:    e.describe(intent),
	}, true
}

// ValidateForExecution runs the full validation chain and then checks
// that an amount-requiring strategy has an amount to execute with.
// The caller is expected to prompt the user and retry when the verdict
// is amount-required.
func ValidateForExecution(intent *types.PaymentIntent) types.ValidationResult {
	if res := validation.Validate(intent); !res.Valid {
		return res
	}

	e, ok := table[intent.Kind]
	if !ok {
		return types.ValidationResult{Error: types.ErrNoMatch}
	}

	if e.requiresAmount && !intent.HasAmount() {
		return types.ValidationResult{Error: types.ErrAmountRequired}
	}

	return types.ValidationResult{Valid: true}
}
