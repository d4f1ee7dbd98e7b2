package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/robot-taxonomy/internal/cli"
	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/Veraticus/robot-taxonomy/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "robotax",
		Short: "🤖 Rule-based robot taxonomy classifier",
		Long: `robotax classifies robot descriptions into an eight-level biological-style
taxonomy (Domain, Kingdom, Phylum, Class, Order, Family, Genus, Species)
by keyword matching, and keeps a history of classification runs.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/robotax/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	config.SetDefaults(viper.GetViper())

	// Add commands
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(filterCmd())
	rootCmd.AddCommand(taxonomyCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(runsCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(similarCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx, stop := interrupts.HandleInterrupts(context.Background())

	err := rootCmd.ExecuteContext(ctx)
	stop() // Always cleanup

	if err != nil {
		if msg, ok := common.UserMessage(err); ok {
			fmt.Fprintln(os.Stderr, cli.FormatError(msg))
		} else {
			fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		}
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/robotax", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. ROBOTAX_DATABASE_PATH
	viper.SetEnvPrefix("ROBOTAX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := common.SetupLogger(viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "robotax version %s\n", version)
		},
	}
}
