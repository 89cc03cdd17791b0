package detectors

import (
	"net/url"
	"strings"

	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/utils"
)

// payPathMarker is the path segment that identifies a business payment
// link, e.g. https://shop.example.com/pay/0xABCD...?category=Food.
const payPathMarker = "/pay/"

// DefaultBusinessCategory is assigned to business payments whose code
// does not name a category.
const DefaultBusinessCategory = "Payment"

// matchBusinessURL recognizes business payment links: any URL whose
// path contains /pay/ followed by a valid address, with optional
// amount (whole-unit decimal), category, message, business name and
// token parameters in the query string.
func matchBusinessURL(text string) *Candidate {
	idx := strings.Index(text, payPathMarker)
	if idx < 0 {
		return nil
	}

	u, err := url.Parse(text)
	if err != nil {
		return nil
	}

	// The recipient is the path component directly after /pay/.
	pi := strings.Index(u.Path, payPathMarker)
	if pi < 0 {
		return nil
	}
	rest := u.Path[pi+len(payPathMarker):]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	if !utils.IsValidAddress(rest) {
		return nil
	}

	q := u.Query()

	c := &Candidate{
		Format:          types.FormatBusinessURL,
		Business:        true,
		Recipient:       rest,
		AmountWholeUnit: q.Get("amount"),
		Category:        strings.TrimSpace(q.Get("category")),
		Message:         q.Get("message"),
		TokenAddress:    q.Get("token"),
		TokenSymbol:     q.Get("symbol"),
	}

	if c.Category == "" {
		c.Category = DefaultBusinessCategory
	}

	c.BusinessName = q.Get("business")
	if c.BusinessName == "" {
		c.BusinessName = q.Get("name")
	}

	c.Reference = q.Get("reference")
	if c.Reference == "" {
		c.Reference = q.Get("ref")
	}

	return c
}
