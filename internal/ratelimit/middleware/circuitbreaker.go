package middleware

import "sync"

// breaker sends checks to the fallback limiter after tripAfter consecutive
// primary errors. While open, closeAfter consecutive primary successes
// close it again.
type breaker struct {
	mu         sync.Mutex
	open       bool
	failures   int
	successes  int
	tripAfter  int
	closeAfter int
	// onChange observes open/close transitions only.
	onChange func(open bool)
}

func newBreaker(tripAfter, closeAfter int, onChange func(open bool)) *breaker {
	return &breaker{tripAfter: tripAfter, closeAfter: closeAfter, onChange: onChange}
}

func (b *breaker) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Failure records a primary error and reports whether the fallback should
// answer.
func (b *breaker) Failure() bool {
	b.mu.Lock()
	b.failures++
	b.successes = 0
	tripped := !b.open && b.failures >= b.tripAfter
	if tripped {
		b.open = true
	}
	open := b.open
	b.mu.Unlock()

	if tripped && b.onChange != nil {
		b.onChange(true)
	}
	return open
}

// Success records a primary answer.
func (b *breaker) Success() {
	b.mu.Lock()
	if !b.open {
		b.failures = 0
		b.mu.Unlock()
		return
	}
	b.successes++
	closed := b.successes >= b.closeAfter
	if closed {
		b.open = false
		b.failures, b.successes = 0, 0
	}
	b.mu.Unlock()

	if closed && b.onChange != nil {
		b.onChange(false)
	}
}
