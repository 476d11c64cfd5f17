package jwtdecode

import (
	"context"
	"math"
	"time"
)

// WatchExpiry emits the token's remaining lifetime in whole seconds on
// every tick of a repeating timer, suppressing adjacent duplicates, and
// closes the channel after emitting a single terminal 0. A token without a
// usable exp claim yields exactly one 0. Cancelling ctx stops the timer
// and closes the channel without a terminal emission.
//
// Each call owns an independent timer; watching the same token twice
// creates two timers. A non-positive interval defaults to one second.
func (d *Decoder) WatchExpiry(ctx context.Context, token string, interval time.Duration) <-chan int64 {
	ch := make(chan int64, 1)

	var exp float64
	ok := false
	if claims, err := d.DecodePayload(token); err == nil {
		exp, ok = claims.dateSeconds(ClaimExpiresAt)
	}
	if !ok {
		ch <- 0
		close(ch)
		return ch
	}

	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := int64(-1)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				remaining := wholeSeconds(exp - unixSeconds(d.clock()))
				if remaining == last {
					continue
				}
				last = remaining

				select {
				case ch <- remaining:
				case <-ctx.Done():
					return
				}

				if remaining <= 0 {
					return
				}
			}
		}
	}()

	return ch
}

func wholeSeconds(sec float64) int64 {
	if sec <= 0 {
		return 0
	}
	if sec >= float64(math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(sec)
}
