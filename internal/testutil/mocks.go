package testutil

import (
	"fmt"
	"time"

	"codeberg.org/snonux/flashy/internal/scheduler"
	"codeberg.org/snonux/flashy/internal/vocab"
)

// ScheduledCall records one After call
type ScheduledCall struct {
	Token scheduler.Token
	Delay time.Duration
	Fn    func()
}

// FakeScheduler is a manual scheduler: nothing fires until Fire is called
type FakeScheduler struct {
	Scheduled []ScheduledCall
	Cancelled []scheduler.Token

	next  scheduler.Token
	armed map[scheduler.Token]func()
}

// NewFakeScheduler creates an empty fake scheduler
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{armed: make(map[scheduler.Token]func())}
}

// After records the call and arms fn
func (f *FakeScheduler) After(d time.Duration, fn func()) scheduler.Token {
	f.next++
	f.Scheduled = append(f.Scheduled, ScheduledCall{Token: f.next, Delay: d, Fn: fn})
	f.armed[f.next] = fn
	return f.next
}

// Cancel records the call and disarms tok if armed
func (f *FakeScheduler) Cancel(tok scheduler.Token) {
	f.Cancelled = append(f.Cancelled, tok)
	delete(f.armed, tok)
}

// Armed returns the tokens still armed
func (f *FakeScheduler) Armed() []scheduler.Token {
	out := make([]scheduler.Token, 0, len(f.armed))
	for tok := range f.armed {
		out = append(out, tok)
	}
	return out
}

// Fire runs an armed callback as if its timer elapsed
func (f *FakeScheduler) Fire(tok scheduler.Token) error {
	fn, ok := f.armed[tok]
	if !ok {
		return fmt.Errorf("timer %d is not armed", tok)
	}
	delete(f.armed, tok)
	fn()
	return nil
}

// Last returns the most recent After call
func (f *FakeScheduler) Last() ScheduledCall {
	if len(f.Scheduled) == 0 {
		return ScheduledCall{}
	}
	return f.Scheduled[len(f.Scheduled)-1]
}

// PresenterCall records one Presenter call
type PresenterCall struct {
	Method string
	Entry  vocab.Entry
}

// RecordingPresenter records every Presenter call
type RecordingPresenter struct {
	Calls []PresenterCall
}

// ShowQuestion implements session.Presenter
func (p *RecordingPresenter) ShowQuestion(entry vocab.Entry) {
	p.Calls = append(p.Calls, PresenterCall{Method: "question", Entry: entry})
}

// ShowAnswer implements session.Presenter
func (p *RecordingPresenter) ShowAnswer(entry vocab.Entry) {
	p.Calls = append(p.Calls, PresenterCall{Method: "answer", Entry: entry})
}

// ShowComplete implements session.Presenter
func (p *RecordingPresenter) ShowComplete() {
	p.Calls = append(p.Calls, PresenterCall{Method: "complete"})
}

// Last returns the most recent call
func (p *RecordingPresenter) Last() PresenterCall {
	if len(p.Calls) == 0 {
		return PresenterCall{}
	}
	return p.Calls[len(p.Calls)-1]
}

// SequencePicker returns the given indices in order, then keeps returning
// the last one (clamped to n)
func SequencePicker(indices ...int) func(n int) int {
	i := 0
	return func(n int) int {
		idx := indices[len(indices)-1]
		if i < len(indices) {
			idx = indices[i]
			i++
		}
		if idx >= n {
			idx = n - 1
		}
		return idx
	}
}
