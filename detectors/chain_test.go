package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeheskieltame/qrpay/types"
)

const (
	addr  = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	token = "0x2222222222222222222222222222222222222222"
)

func TestBusinessURL(t *testing.T) {
	c := matchBusinessURL("https://shop.example.com/pay/" + addr + "?amount=1.5&category=Food&business=Corner+Cafe&message=table+4")
	require.NotNil(t, c)

	assert.Equal(t, types.FormatBusinessURL, c.Format)
	assert.True(t, c.Business)
	assert.Equal(t, addr, c.Recipient)
	assert.Equal(t, "1.5", c.AmountWholeUnit)
	assert.Equal(t, "Food", c.Category)
	assert.Equal(t, "Corner Cafe", c.BusinessName)
	assert.Equal(t, "table 4", c.Message)
}

func TestBusinessURLDefaultsCategory(t *testing.T) {
	c := matchBusinessURL("https://shop.example.com/pay/" + addr)
	require.NotNil(t, c)
	assert.Equal(t, DefaultBusinessCategory, c.Category)

	// blank category also takes the default
	c = matchBusinessURL("https://shop.example.com/pay/" + addr + "?category=++")
	require.NotNil(t, c)
	assert.Equal(t, DefaultBusinessCategory, c.Category)
}

func TestBusinessURLToken(t *testing.T) {
	c := matchBusinessURL("https://shop.example.com/pay/" + addr + "?token=" + token + "&symbol=USDC")
	require.NotNil(t, c)
	assert.Equal(t, token, c.TokenAddress)
	assert.Equal(t, "USDC", c.TokenSymbol)
}

func TestBusinessURLDeclines(t *testing.T) {
	for name, input := range map[string]string{
		"no marker":            "https://shop.example.com/checkout/" + addr,
		"bad address":          "https://shop.example.com/pay/0x1234",
		"marker without value": "https://shop.example.com/pay/",
		"marker in query only": "https://shop.example.com/?redirect=/pay/",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, matchBusinessURL(input))
		})
	}
}

func TestBusinessJSON(t *testing.T) {
	c := matchBusinessJSON(`{"type":"business","address":"` + addr + `","amount":"100","category":"Retail"}`)
	require.NotNil(t, c)

	assert.Equal(t, types.FormatBusinessJSON, c.Format)
	assert.True(t, c.Business)
	assert.Equal(t, addr, c.Recipient)
	assert.Equal(t, "Retail", c.Category)
	// 100 has no decimal point and sits below the threshold: whole unit
	assert.Equal(t, "100", c.AmountWholeUnit)
	assert.Empty(t, c.AmountSmallest)
}

func TestBusinessJSONRecipientPriority(t *testing.T) {
	other := "0x1111111111111111111111111111111111111111"

	// "address" outranks "to" outranks "recipient"
	c := matchBusinessJSON(`{"type":"business","to":"` + other + `","address":"` + addr + `","category":"x"}`)
	require.NotNil(t, c)
	assert.Equal(t, addr, c.Recipient)

	c = matchBusinessJSON(`{"type":"business","recipient":"` + other + `","to":"` + addr + `","category":"x"}`)
	require.NotNil(t, c)
	assert.Equal(t, addr, c.Recipient)
}

func TestBusinessJSONAmountHeuristic(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		unit      string
		wantWhole string
		wantWei   string
	}{
		{"decimal point means whole unit", `"1.5"`, "", "1.5", ""},
		{"small integer means whole unit", `"999"`, "", "999", ""},
		{"bare number also accepted", `2.5`, "", "2.5", ""},
		{"large integer means wei", `"5000000000000000"`, "", "", "5000000000000000"},
		{"threshold boundary is wei", `"1000"`, "", "", "1000"},
		{"explicit wei tag overrides", `"500"`, "wei", "", "500"},
		{"explicit ether tag overrides", `"5000"`, "ether", "5000", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := `{"type":"business","address":"` + addr + `","category":"x","amount":` + tt.amount
			if tt.unit != "" {
				payload += `,"unit":"` + tt.unit + `"`
			}
			payload += `}`

			c := matchBusinessJSON(payload)
			require.NotNil(t, c)
			assert.Equal(t, tt.wantWhole, c.AmountWholeUnit)
			assert.Equal(t, tt.wantWei, c.AmountSmallest)
		})
	}
}

func TestBusinessJSONDeclines(t *testing.T) {
	for name, input := range map[string]string{
		"not json":            "hello world",
		"json array":          `["type","business"]`,
		"wrong type":          `{"type":"personal","address":"` + addr + `"}`,
		"missing type":        `{"address":"` + addr + `"}`,
		"bad address":         `{"type":"business","address":"0xnope"}`,
		"no recipient field":  `{"type":"business","category":"Food"}`,
		"non-numeric amount":  `{"type":"business","address":"` + addr + `","amount":"free"}`,
		"truncated json blob": `{"type":"business","address":"` + addr + `"`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, matchBusinessJSON(input))
		})
	}
}

func TestEIP681(t *testing.T) {
	c := matchEIP681("ethereum:" + addr + "?value=5000000000000000")
	require.NotNil(t, c)
	assert.Equal(t, types.FormatEIP681URI, c.Format)
	assert.False(t, c.Business)
	assert.Equal(t, addr, c.Recipient)
	assert.Equal(t, "5000000000000000", c.AmountSmallest)
}

func TestEIP681WithoutValue(t *testing.T) {
	c := matchEIP681("ethereum:" + addr)
	require.NotNil(t, c)
	assert.Empty(t, c.AmountSmallest)
}

func TestEIP681ChainIDSuffix(t *testing.T) {
	c := matchEIP681("ethereum:" + addr + "@11155111?value=1000")
	require.NotNil(t, c)
	assert.Equal(t, addr, c.Recipient)
	assert.Equal(t, "1000", c.AmountSmallest)
}

func TestEIP681Declines(t *testing.T) {
	for name, input := range map[string]string{
		"no scheme":         addr,
		"transfer function": "ethereum:" + token + "/transfer?address=" + addr + "&uint256=1",
		"business marker":   "ethereum:" + addr + "?type=business",
		"bad address":       "ethereum:0x1234",
		"bad query":         "ethereum:" + addr + "?value=%zz",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, matchEIP681(input))
		})
	}
}

func TestBareAddress(t *testing.T) {
	c := matchBareAddress(addr)
	require.NotNil(t, c)
	assert.Equal(t, types.FormatBareAddress, c.Format)
	assert.Equal(t, addr, c.Recipient)

	assert.Nil(t, matchBareAddress(addr+" extra"))
	assert.Nil(t, matchBareAddress("0x1234"))
}

func TestAppURL(t *testing.T) {
	match := newAppURLMatcher(DefaultAppDomain)

	c := match("https://smartverse.app/send?address=" + addr + "&amount=0.5")
	require.NotNil(t, c)
	assert.Equal(t, types.FormatAppURL, c.Format)
	assert.Equal(t, addr, c.Recipient)
	assert.Equal(t, "0.5", c.AmountWholeUnit)

	c = match("https://smartverse.app/send?address=" + addr)
	require.NotNil(t, c)
	assert.Empty(t, c.AmountWholeUnit)
}

func TestAppURLDeclines(t *testing.T) {
	match := newAppURLMatcher(DefaultAppDomain)

	for name, input := range map[string]string{
		"foreign domain":  "https://example.com/send?address=" + addr,
		"business marker": "https://smartverse.app/send?address=" + addr + "&type=business",
		"missing address": "https://smartverse.app/send?amount=1",
		"bad address":     "https://smartverse.app/send?address=0x1234",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, match(input))
		})
	}
}

func TestChainPriorityOrder(t *testing.T) {
	chain := NewChain("")

	formats := make([]types.SourceFormat, 0, 5)
	for _, d := range chain.Detectors() {
		formats = append(formats, d.Format)
	}
	assert.Equal(t, []types.SourceFormat{
		types.FormatBusinessURL,
		types.FormatBusinessJSON,
		types.FormatEIP681URI,
		types.FormatBareAddress,
		types.FormatAppURL,
	}, formats)
}

func TestChainBusinessURLBeatsAppURL(t *testing.T) {
	// A link on the app's own domain with a /pay/ segment is a
	// business payment, not a personal app link.
	chain := NewChain("")
	c := chain.Detect("https://smartverse.app/pay/" + addr + "?address=" + addr)
	require.NotNil(t, c)
	assert.Equal(t, types.FormatBusinessURL, c.Format)
}

func TestChainTrimsAndDeclines(t *testing.T) {
	chain := NewChain("")

	c := chain.Detect("  " + addr + "\n")
	require.NotNil(t, c)
	assert.Equal(t, types.FormatBareAddress, c.Format)

	assert.Nil(t, chain.Detect(""))
	assert.Nil(t, chain.Detect("   "))
	assert.Nil(t, chain.Detect("not a qr code at all"))
}

func TestChainCustomAppDomain(t *testing.T) {
	chain := NewChain("pay.acme.io")

	c := chain.Detect("https://pay.acme.io/send?address=" + addr)
	require.NotNil(t, c)
	assert.Equal(t, types.FormatAppURL, c.Format)

	assert.Nil(t, chain.Detect("https://smartverse.app/send?address="+addr))
}
