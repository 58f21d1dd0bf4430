package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

// Resilient wraps a Provider in a circuit breaker so a flapping generation
// service fails fast instead of stalling every chat turn. Open-circuit errors
// surface like any other provider error; the engine substitutes the fallback
// message either way.
type Resilient struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker[string]
}

func NewResilient(inner Provider, log *logrus.Logger) *Resilient {
	settings := gobreaker.Settings{
		Name:        "generation-service",
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"name": name,
				"from": from.String(),
				"to":   to.String(),
			}).Info("circuit breaker state changed")
		},
	}

	return &Resilient{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[string](settings),
	}
}

func (r *Resilient) Generate(ctx context.Context, prompt string) (string, error) {
	return r.cb.Execute(func() (string, error) {
		return r.inner.Generate(ctx, prompt)
	})
}

func (r *Resilient) Close() error { return r.inner.Close() }
