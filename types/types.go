package types

// PaymentKind classifies what sort of transfer a scanned code asks for.
type PaymentKind string

const (
	// Business payments route into a business vault and carry
	// category/business metadata.
	KindBusinessToken  PaymentKind = "business-token"
	KindBusinessNative PaymentKind = "business-native"

	// Personal payments are direct peer-to-peer transfers.
	// Static = amount supplied later by the user, dynamic = amount
	// pre-specified in the code.
	KindPersonalStatic  PaymentKind = "personal-static"
	KindPersonalDynamic PaymentKind = "personal-dynamic"
)

// SourceFormat records which wire format a detector recognized.
// It is independent of PaymentKind: the same kind may arrive through
// several formats.
type SourceFormat string

const (
	FormatBusinessURL  SourceFormat = "business-url"
	FormatBusinessJSON SourceFormat = "business-json"
	FormatEIP681URI    SourceFormat = "eip681-uri"
	FormatBareAddress  SourceFormat = "bare-address"
	FormatAppURL       SourceFormat = "app-url"
)

// TransferMethod names the abstract execution mechanism downstream
// should invoke for an intent.
type TransferMethod string

const (
	MethodVaultDeposit   TransferMethod = "vault-deposit"
	MethodDirectTransfer TransferMethod = "direct-transfer"
)

// PaymentIntent is the canonical output of parsing: a normalized,
// validated description of a requested transfer, independent of its
// original QR encoding. Intents are constructed fresh per parse call
// and never mutated afterwards.
type PaymentIntent struct {
	Kind PaymentKind `json:"kind" validate:"required,oneof=business-token business-native personal-static personal-dynamic"`

	// RecipientAddress is the transfer destination. Always present and
	// well-formed when IsValid is true. Kept exactly as scanned; use
	// utils.ChecksumAddress for the EIP-55 display form.
	RecipientAddress string `json:"recipientAddress" validate:"required"`

	// AmountRaw is the amount in the asset's smallest unit (wei),
	// represented as a decimal string because Go has no uint256.
	// Empty means "amount unspecified, ask the user".
	AmountRaw string `json:"amountRaw,omitempty"`

	// AmountDisplay is the human-readable decimal form of AmountRaw.
	AmountDisplay string `json:"amountDisplay,omitempty"`

	// TokenAddress is the ERC20-like asset contract, empty for the
	// chain's native asset. TokenSymbol is informational only.
	TokenAddress string `json:"tokenAddress,omitempty"`
	TokenSymbol  string `json:"tokenSymbol,omitempty"`

	// Business metadata. Category is required for business kinds.
	Category     string `json:"category,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	Message      string `json:"message,omitempty"`

	// Reference is an optional order identifier carried by business
	// codes. Informational, never validated.
	Reference string `json:"reference,omitempty"`

	// SourceFormat tags the detector that produced this intent.
	SourceFormat SourceFormat `json:"sourceFormat" validate:"required,oneof=business-url business-json eip681-uri bare-address app-url"`

	// RawPayload retains the trimmed scanned text for audit. It is
	// never re-parsed.
	RawPayload string `json:"rawPayload" validate:"required"`

	// IsValid is set by the validator. An invalid intent must never
	// reach execution.
	IsValid bool `json:"isValid"`
}

// IsBusiness reports whether the kind routes into a business vault.
func (k PaymentKind) IsBusiness() bool {
	return k == KindBusinessToken || k == KindBusinessNative
}

// IsPersonal reports whether the kind is a direct peer-to-peer transfer.
func (k PaymentKind) IsPersonal() bool {
	return k == KindPersonalStatic || k == KindPersonalDynamic
}

func (k PaymentKind) String() string { return string(k) }

func (f SourceFormat) String() string { return string(f) }

// HasAmount reports whether the intent carries a usable amount.
// A "0" amount is treated identically to an absent one.
func (i *PaymentIntent) HasAmount() bool {
	return i.AmountRaw != "" && i.AmountRaw != "0"
}

// ExecutionStrategy is a derived, read-only view of an intent telling
// downstream which transfer mechanism applies.
type ExecutionStrategy struct {
	Method TransferMethod `json:"method"`

	// RequiresAmount means the caller must prompt the user for an
	// amount before execution when the intent does not carry one.
	RequiresAmount bool `json:"requiresAmount"`

	// Description is a human-readable summary for UI display.
	Description string `json:"description"`
}

// ValidationResult is the structured verdict returned by validation.
// Error holds one of the error-code constants when Valid is false.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
