package detectors

import (
	"net/url"
	"strings"

	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/utils"
)

// DefaultAppDomain is the marker identifying links minted by the
// companion wallet app. Overridable through the chain constructor for
// white-label deployments.
const DefaultAppDomain = "smartverse.app"

// newAppURLMatcher builds the fallback personal-link detector for one
// app domain: any URL containing the domain marker with an address
// query parameter, and an optional whole-unit amount deciding static
// vs dynamic.
func newAppURLMatcher(domain string) func(string) *Candidate {
	return func(text string) *Candidate {
		if !strings.Contains(text, domain) {
			return nil
		}
		if strings.Contains(text, "type=business") {
			return nil
		}

		u, err := url.Parse(text)
		if err != nil {
			return nil
		}

		q := u.Query()
		recipient := q.Get("address")
		if !utils.IsValidAddress(recipient) {
			return nil
		}

		return &Candidate{
			Format:          types.FormatAppURL,
			Recipient:       recipient,
			AmountWholeUnit: q.Get("amount"),
		}
	}
}
