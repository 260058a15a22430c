package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/flashy/internal/scheduler"
	"codeberg.org/snonux/flashy/internal/vocab"
)

// DefaultDwell is how long the question side stays up before flipping
const DefaultDwell = 3 * time.Second

// ErrEmptyStore is returned when no words are left to show
var ErrEmptyStore = errors.New("all words known")

// Store is the part of vocab.Store the session needs
type Store interface {
	Len() int
	At(i int) vocab.Entry
	Forget(target vocab.Entry) error
}

// Presenter renders the card
type Presenter interface {
	ShowQuestion(entry vocab.Entry)
	ShowAnswer(entry vocab.Entry)
	ShowComplete()
}

// Picker returns a random index in [0, n)
type Picker func(n int) int

// State is the session's mutable part
type State struct {
	Current vocab.Entry
	Pending scheduler.Token
}

// Controller handles the known and skip actions
type Controller struct {
	store  Store
	sched  scheduler.Scheduler
	view   Presenter
	pick   Picker
	dwell  time.Duration
	logger zerolog.Logger

	state State
}

// Option customises a Controller
type Option func(*Controller)

// WithPicker replaces the uniform random picker
func WithPicker(pick Picker) Option {
	return func(c *Controller) { c.pick = pick }
}

// WithDwell sets the flip delay
func WithDwell(d time.Duration) Option {
	return func(c *Controller) { c.dwell = d }
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController creates a controller. Nothing is shown until Start.
func NewController(store Store, sched scheduler.Scheduler, view Presenter, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		sched:  sched,
		view:   view,
		pick:   rand.IntN,
		dwell:  DefaultDwell,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("component", "session").Logger()
	return c
}

// Start shows the first card
func (c *Controller) Start() error {
	c.logger.Info().Int("remaining", c.store.Len()).Dur("dwell", c.dwell).Msg("session started")
	return c.SelectNext()
}

// Stop disarms the pending flip
func (c *Controller) Stop() {
	c.sched.Cancel(c.state.Pending)
	c.state.Pending = scheduler.NoToken
}

// State returns a copy of the session state
func (c *Controller) State() State {
	return c.state
}

// Remaining returns the number of words still to learn
func (c *Controller) Remaining() int {
	return c.store.Len()
}

// SelectNext shows a new random word and arms its flip. On an empty store
// the complete screen is shown and ErrEmptyStore returned.
func (c *Controller) SelectNext() error {
	c.sched.Cancel(c.state.Pending)
	c.state.Pending = scheduler.NoToken

	n := c.store.Len()
	if n == 0 {
		c.state.Current = nil
		c.view.ShowComplete()
		c.logger.Info().Msg("no words left")
		return ErrEmptyStore
	}

	entry := c.store.At(c.pick(n))
	c.state.Current = entry
	c.view.ShowQuestion(entry)

	var tok scheduler.Token
	tok = c.sched.After(c.dwell, func() {
		if c.state.Pending == tok {
			c.state.Pending = scheduler.NoToken
		}
		c.view.ShowAnswer(entry)
	})
	c.state.Pending = tok

	c.logger.Debug().Uint64("timer", uint64(tok)).Int("remaining", n).Msg("card selected")
	return nil
}

// MarkKnown removes the current word for good and moves on. A storage
// failure leaves the session as it was.
func (c *Controller) MarkKnown() error {
	current := c.state.Current
	if current == nil {
		return ErrEmptyStore
	}

	if err := c.store.Forget(current); err != nil {
		if !errors.Is(err, vocab.ErrNotFound) {
			c.logger.Error().Err(err).Msg("failed to save progress")
			return fmt.Errorf("failed to mark word as known: %w", err)
		}
		// Current always comes from the store, so this is a sequencing bug
		c.logger.Error().Err(err).Interface("entry", current).Msg("current word missing from store")
	} else {
		c.logger.Info().Int("remaining", c.store.Len()).Msg("word marked known")
	}

	return c.SelectNext()
}
