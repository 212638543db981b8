package kafka

import (
	"math/rand"
	"sync"
	"time"
)

// backoff — экспоненциальная задержка с equal jitter: половина фиксирована, половина случайна.
type backoff struct {
	initial time.Duration
	max     time.Duration

	mu      sync.Mutex
	current time.Duration
	rnd     *rand.Rand
}

func newBackoff(initial, maxDelay time.Duration) *backoff {
	return newBackoffWithSource(initial, maxDelay, rand.NewSource(time.Now().UnixNano()))
}

func newBackoffWithSource(initial, maxDelay time.Duration, src rand.Source) *backoff {
	if maxDelay < initial {
		maxDelay = initial
	}
	return &backoff{initial: initial, max: maxDelay, current: initial, rnd: rand.New(src)}
}

// next — задержка для текущей попытки; следующая будет вдвое больше (не выше max).
func (b *backoff) next() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.jitter(b.current)
	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
	return d
}

func (b *backoff) reset() {
	b.mu.Lock()
	b.current = b.initial
	b.mu.Unlock()
}

func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}
