package types

// AssetInfo describes the asset an amount is denominated in.
type AssetInfo struct {
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`

	// Address is the token contract, empty for the native asset.
	Address string `json:"address,omitempty"`
}

// NativeAsset is the chain's base asset. All amount conversion in the
// core uses its 18-decimal precision; ERC20 amounts embedded in QR
// codes follow the same convention on the dominant chain.
var NativeAsset = AssetInfo{
	Symbol:   "ETH",
	Decimals: 18,
}

// DefaultTokenSymbol is used in strategy descriptions when a token
// payment does not name its symbol.
const DefaultTokenSymbol = "tokens"

// Asset resolves the asset an intent pays in: the named token when a
// token address is present, the native asset otherwise.
func (i *PaymentIntent) Asset() AssetInfo {
	if i.TokenAddress == "" {
		return NativeAsset
	}
	symbol := i.TokenSymbol
	if symbol == "" {
		symbol = DefaultTokenSymbol
	}
	return AssetInfo{
		Symbol:   symbol,
		Decimals: NativeAsset.Decimals,
		Address:  i.TokenAddress,
	}
}
