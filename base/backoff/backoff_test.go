package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoff(t *testing.T) {
	b := NewExponential(time.Millisecond, 8*time.Millisecond)

	assert.Equal(t, time.Millisecond, b.NextDuration)

	durations := []time.Duration{}
	for i := 0; i < 5; i++ {
		durations = append(durations, b.NextDuration)
		assert.NoError(t, b.Backoff(context.Background()))
	}

	assert.Equal(t, []time.Duration{
		1 * time.Millisecond,
		2 * time.Millisecond,
		4 * time.Millisecond,
		8 * time.Millisecond,
		8 * time.Millisecond,
	}, durations)

	b.Reset()
	assert.Equal(t, time.Millisecond, b.NextDuration)
}

func TestBackoffCancel(t *testing.T) {
	b := NewExponential(time.Minute, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, b.Backoff(ctx))
}
