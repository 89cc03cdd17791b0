// Package testgen produces wire-format payment payloads for each
// format the parser recognizes. It exists so tests and demo tooling
// can assert the generate->parse round trip instead of maintaining
// hand-written fixture strings.
package testgen

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/yeheskieltame/qrpay/detectors"
	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/utils"
)

// DefaultBaseURL hosts generated business payment links.
const DefaultBaseURL = "https://pay.smartverse.app"

// GenSpec describes the payment a generated payload should encode.
// Amount is a whole-unit decimal string; AmountWei a smallest-unit
// integer string. Set at most one.
type GenSpec struct {
	Recipient string

	Amount    string
	AmountWei string

	TokenAddress string
	TokenSymbol  string

	Category     string
	BusinessName string
	Message      string

	// Reference identifies the order in business payloads. Generated
	// as a fresh uuid when empty.
	Reference string

	// BaseURL overrides DefaultBaseURL for link formats.
	BaseURL string
}

func (s *GenSpec) check() error {
	if !utils.IsValidAddress(s.Recipient) {
		return types.NewQRError(types.ErrInvalidSpec, "recipient %q is not a valid address", s.Recipient)
	}
	if s.Amount != "" && s.AmountWei != "" {
		return types.NewQRError(types.ErrInvalidSpec, "set either Amount or AmountWei, not both")
	}
	if s.TokenAddress != "" && !utils.IsValidAddress(s.TokenAddress) {
		return types.NewQRError(types.ErrInvalidSpec, "token %q is not a valid address", s.TokenAddress)
	}
	return nil
}

func (s *GenSpec) base() string {
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/")
	}
	return DefaultBaseURL
}

func (s *GenSpec) reference() string {
	if s.Reference != "" {
		return s.Reference
	}
	return uuid.NewString()
}

// BusinessURL encodes a business payment link:
// <base>/pay/<address>?category=...&amount=...
func BusinessURL(spec GenSpec) (string, error) {
	if err := spec.check(); err != nil {
		return "", err
	}

	q := url.Values{}
	if spec.Amount != "" {
		q.Set("amount", spec.Amount)
	}
	if spec.Category != "" {
		q.Set("category", spec.Category)
	}
	if spec.BusinessName != "" {
		q.Set("business", spec.BusinessName)
	}
	if spec.Message != "" {
		q.Set("message", spec.Message)
	}
	if spec.TokenAddress != "" {
		q.Set("token", spec.TokenAddress)
	}
	if spec.TokenSymbol != "" {
		q.Set("symbol", spec.TokenSymbol)
	}
	q.Set("reference", spec.reference())

	return fmt.Sprintf("%s/pay/%s?%s", spec.base(), spec.Recipient, q.Encode()), nil
}

// BusinessJSON encodes a business payment as a JSON payload with an
// explicit unit tag, so parsing never falls back to the legacy
// amount-unit heuristic.
func BusinessJSON(spec GenSpec) (string, error) {
	if err := spec.check(); err != nil {
		return "", err
	}

	payload := map[string]any{
		"type":      "business",
		"address":   spec.Recipient,
		"reference": spec.reference(),
	}
	if spec.Amount != "" {
		payload["amount"] = spec.Amount
		payload["unit"] = "ether"
	}
	if spec.AmountWei != "" {
		payload["amount"] = spec.AmountWei
		payload["unit"] = "wei"
	}
	if spec.Category != "" {
		payload["category"] = spec.Category
	}
	if spec.BusinessName != "" {
		payload["business"] = spec.BusinessName
	}
	if spec.Message != "" {
		payload["message"] = spec.Message
	}
	if spec.TokenAddress != "" {
		payload["tokenAddress"] = spec.TokenAddress
	}
	if spec.TokenSymbol != "" {
		payload["tokenSymbol"] = spec.TokenSymbol
	}

	out, err := json.Marshal(payload)
	if err != nil {
		return "", types.NewQRError(types.ErrInvalidSpec, "encoding payload: %v", err)
	}
	return string(out), nil
}

// EIP681 encodes a personal payment request URI:
// ethereum:<address>[?value=<wei>]
func EIP681(spec GenSpec) (string, error) {
	if err := spec.check(); err != nil {
		return "", err
	}
	if spec.Amount != "" {
		return "", types.NewQRError(types.ErrInvalidSpec, "EIP-681 value is smallest-unit; use AmountWei")
	}

	uri := "ethereum:" + spec.Recipient
	if spec.AmountWei != "" {
		uri += "?value=" + spec.AmountWei
	}
	return uri, nil
}

// BareAddress encodes the simplest personal-static payload.
func BareAddress(spec GenSpec) (string, error) {
	if err := spec.check(); err != nil {
		return "", err
	}
	return spec.Recipient, nil
}

// AppURL encodes a personal app link; Amount decides static vs
// dynamic.
func AppURL(spec GenSpec) (string, error) {
	if err := spec.check(); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("address", spec.Recipient)
	if spec.Amount != "" {
		q.Set("amount", spec.Amount)
	}

	base := spec.BaseURL
	if base == "" {
		base = "https://" + detectors.DefaultAppDomain + "/send"
	}
	return base + "?" + q.Encode(), nil
}

// All generates one payload per wire format from the same spec,
// keyed by format tag. Formats the spec cannot express (EIP-681 with
// a whole-unit amount) are skipped.
func All(spec GenSpec) (map[types.SourceFormat]string, error) {
	if err := spec.check(); err != nil {
		return nil, err
	}

	out := make(map[types.SourceFormat]string, 5)

	bu, err := BusinessURL(spec)
	if err != nil {
		return nil, err
	}
	out[types.FormatBusinessURL] = bu

	bj, err := BusinessJSON(spec)
	if err != nil {
		return nil, err
	}
	out[types.FormatBusinessJSON] = bj

	if spec.Amount == "" {
		uri, err := EIP681(spec)
		if err != nil {
			return nil, err
		}
		out[types.FormatEIP681URI] = uri
	}

	ba, err := BareAddress(spec)
	if err != nil {
		return nil, err
	}
	out[types.FormatBareAddress] = ba

	au, err := AppURL(spec)
	if err != nil {
		return nil, err
	}
	out[types.FormatAppURL] = au

	return out, nil
}
