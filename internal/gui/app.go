package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"codeberg.org/snonux/flashy/internal"
	"codeberg.org/snonux/flashy/internal/scheduler"
	"codeberg.org/snonux/flashy/internal/session"
	"codeberg.org/snonux/flashy/internal/vocab"
)

// Application represents the trainer window
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	card        *CardView
	knownButton *ttwidget.Button
	skipButton  *ttwidget.Button
	statusLabel *widget.Label

	// Session
	controller *session.Controller
	sched      scheduler.Scheduler

	config *Config
	logger zerolog.Logger
}

// Config holds GUI application configuration
type Config struct {
	Language   string
	AssetsDir  string
	Dwell      time.Duration
	Background color.Color
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		Language:   "french",
		AssetsDir:  "images",
		Dwell:      session.DefaultDwell,
		Background: color.NRGBA{R: 0xB1, G: 0xDD, B: 0xC6, A: 0xff},
	}
}

// New creates the trainer window for store. Missing images are a startup error.
func New(config *Config, store *vocab.Store, logger zerolog.Logger) (*Application, error) {
	config = withDefaults(config)

	assets, err := LoadAssets(afero.NewOsFs(), config.AssetsDir)
	if err != nil {
		return nil, err
	}

	myApp := app.NewWithID("org.codeberg.snonux.flashy")
	myApp.SetIcon(assets.CardFront)

	sched := scheduler.NewTimerScheduler(fyne.Do)
	return newApplication(myApp, config, store, assets, sched, logger), nil
}

func withDefaults(config *Config) *Config {
	defaults := DefaultConfig()
	if config == nil {
		return defaults
	}
	if config.Language == "" {
		config.Language = defaults.Language
	}
	if config.AssetsDir == "" {
		config.AssetsDir = defaults.AssetsDir
	}
	if config.Dwell <= 0 {
		config.Dwell = defaults.Dwell
	}
	if config.Background == nil {
		config.Background = defaults.Background
	}
	return config
}

func newApplication(fyneApp fyne.App, config *Config, store session.Store, assets *Assets, sched scheduler.Scheduler, logger zerolog.Logger) *Application {
	a := &Application{
		app:    fyneApp,
		config: config,
		sched:  sched,
		logger: logger.With().Str("component", "gui").Logger(),
	}

	a.setupUI(assets)

	a.controller = session.NewController(store, sched, a.card,
		session.WithDwell(config.Dwell),
		session.WithLogger(logger),
	)

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI(assets *Assets) {
	question := internal.LanguageColumn(a.config.Language)

	a.window = a.app.NewWindow(fmt.Sprintf("Flashy v%s - %s", internal.Version, question))
	a.window.SetIcon(assets.CardFront)
	a.window.SetFixedSize(true)

	a.card = NewCardView(assets, question)

	// Tooltips are set after the tooltip layer is created
	a.skipButton = ttwidget.NewButtonWithIcon("", assets.Skip, a.onSkip)
	a.skipButton.Importance = widget.LowImportance

	a.knownButton = ttwidget.NewButtonWithIcon("", assets.Known, a.onKnown)
	a.knownButton.Importance = widget.LowImportance

	buttons := container.NewGridWithColumns(2,
		container.NewCenter(a.skipButton),
		container.NewCenter(a.knownButton),
	)

	a.statusLabel = widget.NewLabel("")
	a.statusLabel.Alignment = fyne.TextAlignCenter

	body := container.NewVBox(a.card, buttons, a.statusLabel)

	content := container.NewStack(
		canvas.NewRectangle(a.config.Background),
		container.New(layout.NewCustomPaddedLayout(50, 50, 50, 50), body),
	)

	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	a.skipButton.SetToolTip("Show another word")
	a.knownButton.SetToolTip("I know this word, don't show it again")

	a.window.SetOnClosed(func() {
		a.controller.Stop()
		if s, ok := a.sched.(*scheduler.TimerScheduler); ok {
			s.Stop()
		}
	})
}

// Start shows the first card
func (a *Application) Start() {
	a.handleResult(a.controller.Start())
}

// Run starts the session and blocks until the window is closed
func (a *Application) Run() {
	a.Start()
	a.window.ShowAndRun()
}

// onKnown handles the "known" button
func (a *Application) onKnown() {
	a.handleResult(a.controller.MarkKnown())
}

// onSkip handles the "skip" button
func (a *Application) onSkip() {
	a.handleResult(a.controller.SelectNext())
}

func (a *Application) handleResult(err error) {
	switch {
	case err == nil:
		a.updateStatus(remainingText(a.controller.Remaining()))
	case errors.Is(err, session.ErrEmptyStore):
		a.disableButtons()
		a.updateStatus("Well done! Use --reset to start over.")
	default:
		a.logger.Error().Err(err).Msg("action failed")
		dialog.ShowError(err, a.window)
	}
}

// disableButtons locks the window once every word is known
func (a *Application) disableButtons() {
	a.knownButton.Disable()
	a.skipButton.Disable()
}

func remainingText(n int) string {
	if n == 1 {
		return "1 word left"
	}
	return fmt.Sprintf("%d words left", n)
}

// updateStatus updates the status label
func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}
