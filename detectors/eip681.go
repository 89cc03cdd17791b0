package detectors

import (
	"net/url"
	"strings"

	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/utils"
)

const (
	eip681Scheme = "ethereum:"

	// ERC20 transfer-function URIs (ethereum:<token>/transfer?...) name
	// the token contract, not the recipient, and are out of scope.
	transferFunctionSegment = "/transfer"
)

// matchEIP681 recognizes EIP-681-style payment request URIs:
// ethereum:<address>[@chainId][?value=<wei>]. The chain id suffix is
// accepted and ignored. The value parameter, when present, is an
// integer smallest-unit amount.
func matchEIP681(text string) *Candidate {
	if !strings.HasPrefix(text, eip681Scheme) {
		return nil
	}
	if strings.Contains(text, transferFunctionSegment) {
		return nil
	}
	if strings.Contains(text, "type=business") {
		return nil
	}

	rest := text[len(eip681Scheme):]

	target := rest
	var rawQuery string
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		target, rawQuery = rest[:i], rest[i+1:]
	}

	// ethereum:0xabc...@1 pins a chain id; single-chain core ignores it.
	if i := strings.IndexByte(target, '@'); i >= 0 {
		target = target[:i]
	}

	if !utils.IsValidAddress(target) {
		return nil
	}

	c := &Candidate{
		Format:    types.FormatEIP681URI,
		Recipient: target,
	}

	if rawQuery != "" {
		q, err := url.ParseQuery(rawQuery)
		if err != nil {
			return nil
		}
		c.AmountSmallest = q.Get("value")
	}

	return c
}
