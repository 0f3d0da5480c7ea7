// Package pace holds the random source and the sleeps used to throttle
// requests. Both are injected so that tests can run without waiting.
package pace

import (
	"context"
	"math/rand/v2"
	"time"
)

// Random is the subset of *rand.Rand the wiper needs.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// NewRandom returns a PCG source. A zero seed means "seed from the clock".
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pick returns a uniformly chosen element, or "" for an empty list.
func Pick(rnd Random, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rnd.IntN(len(list))]
}

// Uniform returns a duration drawn uniformly from [min, max].
func Uniform(rnd Random, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rnd.Float64()*float64(max-min))
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
