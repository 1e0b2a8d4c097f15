// Package cli provides the command-line interface for ragchat.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiosklabs/ragchat-cli/internal/adapters/driven/backend/rest"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driven/config/file"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driven/storage/sqlite"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driving"
	"github.com/kiosklabs/ragchat-cli/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

// Package-level services, injected by initServices or by tests.
var (
	chatService  driving.ChatService
	adminService driving.AdminService
	themeService driving.ThemeService

	logger zerolog.Logger

	// closers run after the command finishes.
	closers []func() error
)

var rootCmd = &cobra.Command{
	Use:   "ragchat",
	Short: "Terminal client for the RagChat knowledge service",
	Long: `ragchat is a terminal client for a retrieval-augmented chat backend.

Ask questions against curated knowledge domains, manage the document
stores behind them, or launch the interactive TUI.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		for _, c := range closers {
			_ = c()
		}
		closers = nil
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetServices injects service implementations. Used by tests to swap
// in mocks before running commands.
func SetServices(chat driving.ChatService, admin driving.AdminService, theme driving.ThemeService) {
	chatService = chat
	adminService = admin
	themeService = theme
}

// configDir resolves the ragchat home directory, honouring RAGCHAT_DIR.
func configDir() (string, error) {
	if dir := viper.GetString("dir"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".ragchat"), nil
}

// loadConfig reads .env, the optional config file and the environment.
func loadConfig() error {
	// A local .env is convenient in development; absence is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix("RAGCHAT")
	viper.AutomaticEnv()

	viper.SetDefault("backend_url", "http://localhost:8000/api")
	viper.SetDefault("preset", "predefined")
	viper.SetDefault("timeout", "60s")
	viper.SetDefault("log_level", "info")

	dir, err := configDir()
	if err != nil {
		return err
	}

	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(dir)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// newLogger opens the diagnostic log file. The TUI owns the terminal,
// so diagnostics never go to stderr.
func newLogger(dir string) (zerolog.Logger, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return zerolog.Nop(), fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "ragchat.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("opening log file: %w", err)
	}
	closers = append(closers, f.Close)

	level, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(f).Level(level).With().Timestamp().Logger(), nil
}

// initServices wires the real adapters behind the driving ports.
// Tests that injected mocks via SetServices are left alone.
func initServices(*cobra.Command, []string) error {
	if chatService != nil && adminService != nil && themeService != nil {
		return nil
	}

	if err := loadConfig(); err != nil {
		return err
	}

	dir, err := configDir()
	if err != nil {
		return err
	}

	logger, err = newLogger(dir)
	if err != nil {
		return err
	}

	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	backend := rest.NewClient(rest.Config{
		BaseURL: viper.GetString("backend_url"),
		Preset:  viper.GetString("preset"),
		Timeout: timeout,
		Logger:  logger,
	})

	prefs, err := file.NewPrefStore(dir)
	if err != nil {
		return fmt.Errorf("opening preference store: %w", err)
	}

	history, err := sqlite.NewHistoryStore(filepath.Join(dir, "data"))
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	closers = append(closers, history.Close)

	chatService = services.NewChat(backend, history, logger)
	adminService = services.NewAdmin(backend)
	themeService = services.NewTheme(prefs, lipgloss.HasDarkBackground())
	return nil
}
