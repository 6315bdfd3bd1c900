package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/skiphire/internal/common"
	"github.com/Veraticus/skiphire/internal/config"
)

var version = "dev"

// app carries what every command shares.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	logFile *os.File
	cfgFile string
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}
	config.SetDefaults(v)

	rootCmd := &cobra.Command{
		Use:   "skiphire",
		Short: "Choose a skip for your waste collection",
		Long: `skiphire walks you through the skip selection step of a skip hire booking.

It fetches the skip sizes offered for your postcode, shows their prices
including VAT and lets you pick one.`,
		PersistentPreRunE:  a.initConfig,
		PersistentPostRunE: a.closeLog,
		SilenceUsage:       true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/skiphire/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("log-file", "", "write logs to this file")
	flags.String("api-url", config.DefaultAPIBaseURL, "booking API base URL")
	flags.String("postcode", "", "postcode to fetch skips for")
	flags.String("area", "", "area to fetch skips for")

	// Bind flags to viper
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	_ = v.BindPFlag(config.KeyAPIBaseURL, flags.Lookup("api-url"))
	_ = v.BindPFlag(config.KeyPostcode, flags.Lookup("postcode"))
	_ = v.BindPFlag(config.KeyArea, flags.Lookup("area"))

	// Add commands
	rootCmd.AddCommand(a.selectCmd())
	rootCmd.AddCommand(a.listCmd())
	rootCmd.AddCommand(a.historyCmd())
	rootCmd.AddCommand(a.migrateCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd(viper.New()).ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		a.v.AddConfigPath(filepath.Join(home, ".config", "skiphire"))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix("SKIPHIRE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AllowEmptyEnv(true)
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Set up logging
	if err := a.setupLogging(os.Stderr); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

// setupLogging sends logs to the configured file, or to fallback when no
// file is set.
func (a *app) setupLogging(fallback io.Writer) error {
	level, err := common.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}

	w, color := fallback, false
	if f, ok := fallback.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}

	if a.cfg.LogFile != "" {
		if a.logFile == nil {
			if err := os.MkdirAll(filepath.Dir(a.cfg.LogFile), 0750); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
			f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			a.logFile = f
		}
		w, color = a.logFile, false
	}

	return common.SetupLogger(w, level, a.cfg.LogFormat, color)
}

func (a *app) closeLog(_ *cobra.Command, _ []string) error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "skiphire %s\n", version)
		},
	}
}
