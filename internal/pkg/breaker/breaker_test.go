package breaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oms-client/internal/config"
)

func newTestBreaker() *Breaker {
	return New(config.Breaker{
		Threshold:   3,
		OpenTimeout: 20 * time.Millisecond,
		MaxHalfOpen: 2,
	})
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := newTestBreaker()

	b.Failure()
	b.Failure()
	assert.Equal(t, Closed, b.State())
	require.NoError(t, b.Allow())

	b.Failure()
	assert.Equal(t, Open, b.State())
	assert.ErrorIs(t, b.Allow(), ErrOpenState)
}

func TestBreakerHalfOpenRecovery(t *testing.T) {
	b := newTestBreaker()
	for i := 0; i < 3; i++ {
		b.Failure()
	}
	require.Equal(t, Open, b.State())

	time.Sleep(25 * time.Millisecond)
	require.NoError(t, b.Allow())
	assert.Equal(t, HalfOpen, b.State())

	b.Success()
	assert.Equal(t, Closed, b.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := newTestBreaker()
	for i := 0; i < 3; i++ {
		b.Failure()
	}
	time.Sleep(25 * time.Millisecond)
	require.NoError(t, b.Allow())

	b.Failure()
	assert.Equal(t, Open, b.State())
	assert.ErrorIs(t, b.Allow(), ErrOpenState)
}

func TestBreakerSuccessResetsFailCount(t *testing.T) {
	b := newTestBreaker()
	b.Failure()
	b.Failure()
	b.Success()

	b.Failure()
	b.Failure()
	assert.Equal(t, Closed, b.State())
}
