package cli

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "flashy" {
		t.Errorf("Expected Use to be 'flashy', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "flashcard trainer") {
		t.Errorf("Expected Short description to mention the flashcard trainer")
	}

	flagTests := []string{"config", "language", "data", "assets", "dwell", "background", "log-level", "reset"}

	for _, name := range flagTests {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}

	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Error("Expected positional arguments to be rejected")
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	defaults := map[string]string{
		"language":   "french",
		"data":       "data",
		"assets":     "images",
		"dwell":      "3s",
		"background": "#B1DDC6",
		"log-level":  "info",
		"reset":      "false",
	}
	for name, want := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("%s flag not found", name)
		}
		if flag.DefValue != want {
			t.Errorf("Expected default %s to be %s, got %s", name, want, flag.DefValue)
		}
	}

	if cmd.Flags().ShorthandLookup("l") == nil {
		t.Error("Expected -l shorthand for --language")
	}
}

func TestInitConfig(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		language  string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `language: german
data:
  directory: /test/data
card:
  dwell: 5s`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			language: "german",
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
			language: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			// Keep ./flashy.yaml lookups inside an empty directory
			t.Chdir(t.TempDir())

			InitConfig(tt.setupFunc(t))

			t.Setenv("FLASHY_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			if got := viper.GetString("language"); tt.language != "" && got != tt.language {
				t.Errorf("language = %q, want %q", got, tt.language)
			}
		})
	}
}

func TestInitConfigNestedEnv(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	t.Chdir(t.TempDir())

	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())

	t.Setenv("FLASHY_LANGUAGE", "german")
	t.Setenv("FLASHY_DATA_DIRECTORY", "/env/data")
	t.Setenv("FLASHY_ASSETS_DIRECTORY", "/env/images")
	t.Setenv("FLASHY_CARD_DWELL", "9s")
	t.Setenv("FLASHY_CARD_BACKGROUND", "#000000")
	t.Setenv("FLASHY_LOG_LEVEL", "warn")

	InitConfig("")

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	want := Settings{
		Language:   "german",
		DataDir:    "/env/data",
		AssetsDir:  "/env/images",
		Dwell:      9 * time.Second,
		Background: color.NRGBA{A: 0xff},
		LogLevel:   zerolog.WarnLevel,
	}
	if *got != want {
		t.Errorf("LoadSettings() = %+v, want %+v", *got, want)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	cmd.Flags().Set("language", "german")
	cmd.Flags().Set("data", "/test/data")
	cmd.Flags().Set("dwell", "1500ms")

	bindFlagsToViper(cmd)

	if viper.GetString("language") != "german" {
		t.Errorf("Expected language to be german, got %s", viper.GetString("language"))
	}
	if viper.GetString("data.directory") != "/test/data" {
		t.Errorf("Expected data.directory to be /test/data, got %s", viper.GetString("data.directory"))
	}
	if viper.GetDuration("card.dwell") != 1500*time.Millisecond {
		t.Errorf("Expected card.dwell to be 1.5s, got %s", viper.GetDuration("card.dwell"))
	}
}

func TestLoadSettings(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name    string
		set     map[string]interface{}
		want    *Settings
		wantErr bool
	}{
		{
			name: "flag defaults",
			set:  map[string]interface{}{},
			want: &Settings{
				Language:   "french",
				DataDir:    "data",
				AssetsDir:  "images",
				Dwell:      3 * time.Second,
				Background: color.NRGBA{R: 0xB1, G: 0xDD, B: 0xC6, A: 0xff},
				LogLevel:   zerolog.InfoLevel,
			},
		},
		{
			name: "overrides",
			set: map[string]interface{}{
				"language":        "German",
				"data.directory":  "/words",
				"card.dwell":      "750ms",
				"card.background": "000000",
				"log.level":       "debug",
			},
			want: &Settings{
				Language:   "German",
				DataDir:    "/words",
				AssetsDir:  "images",
				Dwell:      750 * time.Millisecond,
				Background: color.NRGBA{A: 0xff},
				LogLevel:   zerolog.DebugLevel,
			},
		},
		{
			name: "empty directories fall back to flag defaults",
			set: map[string]interface{}{
				"data.directory":   "",
				"assets.directory": "",
			},
			want: &Settings{
				Language:   "french",
				DataDir:    "data",
				AssetsDir:  "images",
				Dwell:      3 * time.Second,
				Background: color.NRGBA{R: 0xB1, G: 0xDD, B: 0xC6, A: 0xff},
				LogLevel:   zerolog.InfoLevel,
			},
		},
		{
			name:    "empty language",
			set:     map[string]interface{}{"language": " "},
			wantErr: true,
		},
		{
			name:    "zero dwell",
			set:     map[string]interface{}{"card.dwell": "0s"},
			wantErr: true,
		},
		{
			name:    "bad colour",
			set:     map[string]interface{}{"card.background": "#GG0000"},
			wantErr: true,
		},
		{
			name:    "bad log level",
			set:     map[string]interface{}{"log.level": "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			cmd := &cobra.Command{}
			setupFlags(cmd, NewFlags())
			for k, v := range tt.set {
				viper.Set(k, v)
			}

			got, err := LoadSettings()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if *got != *tt.want {
				t.Errorf("LoadSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#B1DDC6", color.NRGBA{R: 0xB1, G: 0xDD, B: 0xC6, A: 0xff}, false},
		{"ffffff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"#fff", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
