package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/flashy/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flashy",
		Short: "Vocabulary flashcard trainer",
		Long: `flashy shows one word at a time in the language you are learning,
flips the card to its English translation after a short delay and
remembers which words you already know.

Examples:
  flashy                          # Train French with ./data and ./images
  flashy --language german        # Train German instead
  flashy --dwell 5s               # Give yourself more time per card
  flashy --reset                  # Archive progress and start over`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/flashy/flashy.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Language to train (matches <language>_words.csv)")
	cmd.Flags().StringVar(&flags.DataDir, "data", flags.DataDir, "Directory holding the word lists")
	cmd.Flags().StringVar(&flags.AssetsDir, "assets", flags.AssetsDir, "Directory holding the card and button images")
	cmd.Flags().DurationVar(&flags.Dwell, "dwell", flags.Dwell, "How long the question side is shown before flipping")
	cmd.Flags().StringVar(&flags.Background, "background", flags.Background, "Window background colour (#RRGGBB)")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flags.Reset, "reset", false, "Archive the learning progress for the language and exit")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("data.directory", cmd.Flags().Lookup("data"))
	viper.BindPFlag("assets.directory", cmd.Flags().Lookup("assets"))
	viper.BindPFlag("card.dwell", cmd.Flags().Lookup("dwell"))
	viper.BindPFlag("card.background", cmd.Flags().Lookup("background"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "flashy"))
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("flashy")
	}

	// Environment variables
	viper.SetEnvPrefix("FLASHY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
