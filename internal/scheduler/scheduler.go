// Package scheduler arms and cancels one-shot deferred callbacks. Callbacks
// are handed to a dispatch function so they run on the same thread as the
// rest of the UI work.
package scheduler

import (
	"sync"
	"time"
)

// Token identifies an armed callback. The zero value is never issued.
type Token uint64

// NoToken is the token of a timer that was never armed
const NoToken Token = 0

// Scheduler arms one-shot callbacks and cancels them by token
type Scheduler interface {
	After(d time.Duration, fn func()) Token
	Cancel(tok Token)
}

// Dispatcher runs fn on the UI thread, e.g. fyne.Do
type Dispatcher func(fn func())

// Immediate runs fn on the calling goroutine
func Immediate(fn func()) { fn() }

// TimerScheduler implements Scheduler with time.AfterFunc
type TimerScheduler struct {
	dispatch Dispatcher

	mu     sync.Mutex
	last   Token
	timers map[Token]*time.Timer
}

// NewTimerScheduler returns a scheduler delivering callbacks through dispatch
func NewTimerScheduler(dispatch Dispatcher) *TimerScheduler {
	if dispatch == nil {
		dispatch = Immediate
	}
	return &TimerScheduler{
		dispatch: dispatch,
		timers:   make(map[Token]*time.Timer),
	}
}

// After arms fn to run once after d and returns its token
func (s *TimerScheduler) After(d time.Duration, fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	tok := s.last
	s.timers[tok] = time.AfterFunc(d, func() {
		s.dispatch(func() {
			// A Cancel may land between the timer firing and the dispatch
			if s.consume(tok) {
				fn()
			}
		})
	})
	return tok
}

// Cancel disarms tok. Unknown, fired and already cancelled tokens are ignored.
func (s *TimerScheduler) Cancel(tok Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[tok]; ok {
		timer.Stop()
		delete(s.timers, tok)
	}
}

// Pending returns the number of armed callbacks
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every armed callback
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for tok, timer := range s.timers {
		timer.Stop()
		delete(s.timers, tok)
	}
}

func (s *TimerScheduler) consume(tok Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[tok]; !ok {
		return false
	}
	delete(s.timers, tok)
	return true
}
