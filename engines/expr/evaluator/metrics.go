package evaluator

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robbyt/go-exprscript/engines/expr/interp"
)

const metricsNamespace = "exprscript"

// resultOK labels evaluations that produced a value. Failed evaluations are
// labeled with the error kind, or "internal" when the error is not an
// evaluation error.
const (
	resultOK       = "ok"
	resultInternal = "internal"
)

// Metrics holds the collectors updated by an Evaluator.
type Metrics struct {
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the evaluator collectors and registers them with reg.
// Collectors already registered by another evaluator are shared.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "evaluations_total",
				Help:      "Expr evaluations by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Expr evaluation duration by strategy",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"strategy"},
		),
	}

	var err error
	if m.evaluations, err = register(reg, m.evaluations); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) observe(strategy interp.Strategy, took time.Duration, err error) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(strategy.String()).Observe(took.Seconds())
	m.evaluations.WithLabelValues(resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return resultOK
	}
	if kind := interp.KindOf(err); kind != 0 {
		return kind.String()
	}
	return resultInternal
}
