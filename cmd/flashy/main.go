package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/flashy/internal/archive"
	"codeberg.org/snonux/flashy/internal/cli"
	"codeberg.org/snonux/flashy/internal/gui"
	"codeberg.org/snonux/flashy/internal/logger"
	"codeberg.org/snonux/flashy/internal/vocab"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	settings, err := cli.LoadSettings()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewConsole(settings.LogLevel)
	fs := afero.NewOsFs()

	// Handle --reset flag
	if flags.Reset {
		return resetProgress(fs, settings, cmd.OutOrStdout())
	}

	store, err := loadStore(fs, settings, log)
	if err != nil {
		return err
	}

	app, err := gui.New(&gui.Config{
		Language:   settings.Language,
		AssetsDir:  settings.AssetsDir,
		Dwell:      settings.Dwell,
		Background: settings.Background,
	}, store, log)
	if err != nil {
		return err
	}

	app.Run()
	return nil
}

func loadStore(fs afero.Fs, settings *cli.Settings, log zerolog.Logger) (*vocab.Store, error) {
	store, err := vocab.Load(fs, settings.DataDir, settings.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}

	log.Info().
		Str("source", store.Source()).
		Str("language", store.Schema().Target).
		Int("words", store.Len()).
		Msg("word list loaded")
	return store, nil
}

func resetProgress(fs afero.Fs, settings *cli.Settings, out io.Writer) error {
	remaining := vocab.RemainingPath(settings.DataDir, settings.Language)

	archived, err := archive.ArchiveProgress(fs, remaining)
	if err != nil {
		if exists, _ := afero.Exists(fs, remaining); !exists {
			fmt.Fprintf(out, "No progress saved for %s yet\n", settings.Language)
			return nil
		}
		return fmt.Errorf("failed to reset progress: %w", err)
	}

	fmt.Fprintf(out, "Progress archived to: %s\n", archived)
	return nil
}
