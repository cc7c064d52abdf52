package circuitbreaker

import (
	"time"

	"github.com/sony/gobreaker/v2"

	"ubjewellers/pkg/logger"
)

// New returns a breaker that opens once at least three calls were made and
// 60% of them failed. It stays open for Timeout before probing again.
func New[T any](name string) *gobreaker.CircuitBreaker[T] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		logger.Warn("circuit breaker %s: %s -> %s", name, from, to)
	}

	return gobreaker.NewCircuitBreaker[T](st)
}
