package qrpay

import (
	"github.com/yeheskieltame/qrpay/logger"
	"github.com/yeheskieltame/qrpay/metrics"
)

type Option func(*Parser)

// WithLogger injects a diagnostic logger; parsing stays silent
// without one.
func WithLogger(l logger.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// WithMetrics injects a metrics recorder for parse outcome counters
// and latency.
func WithMetrics(r metrics.Recorder) Option {
	return func(p *Parser) {
		p.metrics = r
	}
}

// WithAppDomain overrides the domain marker the app-URL detector
// looks for, for white-label deployments of the companion app.
func WithAppDomain(domain string) Option {
	return func(p *Parser) {
		p.appDomain = domain
	}
}
