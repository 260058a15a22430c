package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	CfgFile    string
	Language   string
	DataDir    string
	AssetsDir  string
	Dwell      time.Duration
	Background string
	LogLevel   string
	Reset      bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:   "french",
		DataDir:    "data",
		AssetsDir:  "images",
		Dwell:      3 * time.Second,
		Background: "#B1DDC6",
		LogLevel:   "info",
	}
}
