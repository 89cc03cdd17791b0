package detectors

import (
	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/utils"
)

// matchBareAddress recognizes input that is nothing but a single
// address: the simplest personal-static code.
func matchBareAddress(text string) *Candidate {
	if !utils.IsValidAddress(text) {
		return nil
	}
	return &Candidate{
		Format:    types.FormatBareAddress,
		Recipient: text,
	}
}
