// Package qrpay classifies scanned payment QR text into normalized
// payment intents. A single parse pipeline detects which wire format
// the text uses (business payment link, business JSON, EIP-681 URI,
// bare address, app link), normalizes amounts into exact smallest-unit
// integers, validates the result, and resolves the execution strategy
// downstream transfer code should use.
//
// The core is synchronous and side-effect-free: no I/O, no shared
// state. Diagnostics go through an injected logger and metrics
// recorder, both no-ops by default.
package qrpay

import (
	"strings"
	"time"

	"github.com/yeheskieltame/qrpay/detectors"
	"github.com/yeheskieltame/qrpay/logger"
	"github.com/yeheskieltame/qrpay/metrics"
	"github.com/yeheskieltame/qrpay/normalize"
	"github.com/yeheskieltame/qrpay/strategy"
	"github.com/yeheskieltame/qrpay/types"
	"github.com/yeheskieltame/qrpay/validation"
)

// Parser is the library facade. Construct once, reuse freely; it is
// stateless and safe for concurrent use.
type Parser struct {
	chain   *detectors.Chain
	logger  logger.Logger
	metrics metrics.Recorder

	appDomain string
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.chain = detectors.NewChain(p.appDomain)
	return p
}

// Parse classifies raw scanned text into a validated PaymentIntent,
// or nil when no format matches. Detectors run in fixed priority
// order and the first candidate that survives normalization wins; its
// IsValid flag carries the validation verdict. Garbage input of any
// shape returns nil, never an error or panic.
func (p *Parser) Parse(raw string) (intent *types.PaymentIntent) {
	start := time.Now()

	// A panicking detector must read as "QR not recognized", not
	// take the scanner down.
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("parse panic recovered", map[string]any{"panic": r})
			intent = nil
		}
		format := ""
		outcome := "no-match"
		if intent != nil {
			format = intent.SourceFormat.String()
			outcome = "parsed"
			if !intent.IsValid {
				outcome = "invalid"
			}
		}
		p.metrics.IncCounter(outcome, map[string]string{"format": format})
		p.metrics.ObserveLatency("parse", time.Since(start), map[string]string{"format": format})
	}()

	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	for _, d := range p.chain.Detectors() {
		cand := d.Match(text)
		if cand == nil {
			p.logger.Debug("detector declined", map[string]any{"format": d.Format.String()})
			continue
		}

		out := normalize.Intent(cand, text)
		if out == nil {
			// Matched the shape but the payload is unusable
			// (bad amount, bad token address). Treated as a
			// decline so later formats still get a chance.
			p.logger.Debug("candidate discarded during normalization", map[string]any{
				"format": d.Format.String(),
			})
			continue
		}

		res := validation.Validate(out)
		out.IsValid = res.Valid

		p.logger.Info("payment code parsed", map[string]any{
			"format": out.SourceFormat.String(),
			"kind":   out.Kind.String(),
			"valid":  out.IsValid,
			"error":  res.Error,
		})
		return out
	}

	p.logger.Debug("no detector matched", map[string]any{"length": len(text)})
	return nil
}

// Validate applies the unified rule set to an intent.
func (p *Parser) Validate(intent *types.PaymentIntent) types.ValidationResult {
	return validation.Validate(intent)
}

// ExecutionStrategy resolves which transfer mechanism applies to an
// intent. The second return is false for a nil intent or a kind
// outside the closed set.
func (p *Parser) ExecutionStrategy(intent *types.PaymentIntent) (types.ExecutionStrategy, bool) {
	return strategy.ForIntent(intent)
}

// ValidateForExecution is the last gate before handing an intent to
// transfer code: full validation plus the strategy's amount
// requirement.
func (p *Parser) ValidateForExecution(intent *types.PaymentIntent) types.ValidationResult {
	return strategy.ValidateForExecution(intent)
}

var defaultParser = New()

// Parse classifies text with the default (uninstrumented) parser.
func Parse(raw string) *types.PaymentIntent {
	return defaultParser.Parse(raw)
}

// Validate applies the unified rule set with the default parser.
func Validate(intent *types.PaymentIntent) types.ValidationResult {
	return defaultParser.Validate(intent)
}

// ExecutionStrategy resolves an intent's strategy with the default
// parser.
func ExecutionStrategy(intent *types.PaymentIntent) (types.ExecutionStrategy, bool) {
	return defaultParser.ExecutionStrategy(intent)
}

// ValidateForExecution gates an intent for execution with the default
// parser.
func ValidateForExecution(intent *types.PaymentIntent) types.ValidationResult {
	return defaultParser.ValidateForExecution(intent)
}
