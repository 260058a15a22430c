package cli

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"codeberg.org/snonux/flashy/internal/logger"
)

// Settings is the resolved configuration the trainer runs with
type Settings struct {
	Language   string
	DataDir    string
	AssetsDir  string
	Dwell      time.Duration
	Background color.NRGBA
	LogLevel   zerolog.Level
}

// LoadSettings resolves flags, config file and environment through viper
func LoadSettings() (*Settings, error) {
	s := &Settings{
		Language:  strings.TrimSpace(viper.GetString("language")),
		DataDir:   viper.GetString("data.directory"),
		AssetsDir: viper.GetString("assets.directory"),
		Dwell:     viper.GetDuration("card.dwell"),
	}

	if s.Language == "" {
		return nil, fmt.Errorf("no language configured")
	}
	defaults := NewFlags()
	if s.DataDir == "" {
		s.DataDir = defaults.DataDir
	}
	if s.AssetsDir == "" {
		s.AssetsDir = defaults.AssetsDir
	}
	if s.Dwell <= 0 {
		return nil, fmt.Errorf("dwell must be positive, got %s", s.Dwell)
	}

	background := viper.GetString("card.background")
	if background == "" {
		background = defaults.Background
	}
	bg, err := ParseHexColor(background)
	if err != nil {
		return nil, err
	}
	s.Background = bg

	level, err := logger.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return nil, err
	}
	s.LogLevel = level

	return s, nil
}

// ParseHexColor parses "#RRGGBB" (the leading # is optional)
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return c, fmt.Errorf("invalid colour %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return c, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
	return c, nil
}
