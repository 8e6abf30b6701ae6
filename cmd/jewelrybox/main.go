// Jewelrybox relays Telegram messages from a single authorized chat to a
// small e-paper display.
//
// It long-polls the Telegram Bot API, word-wraps incoming text onto the
// 2.13" bichrome panel, and keeps the panel asleep between updates.
//
// Usage:
//
//	jewelrybox serve [flags]
//
// See 'jewelrybox serve --help' for available options.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gvklok/jewelrybox/internal/bot"
	"github.com/gvklok/jewelrybox/internal/config"
	"github.com/gvklok/jewelrybox/internal/epd"
	"github.com/gvklok/jewelrybox/internal/logging"
	"github.com/gvklok/jewelrybox/internal/render"
	"github.com/gvklok/jewelrybox/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jewelrybox",
	Short: "Jewelry Box e-paper message display",
	Long: `A notification appliance that relays Telegram messages from a single
authorized chat to a Waveshare 2.13" (B) bichrome e-paper display.

Credentials come from the JEWELRYBOX_BOT_TOKEN and JEWELRYBOX_CHAT_ID
environment variables, with a dotenv fallback file (~/.jewelrybox_env).`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command and flags
var (
	logLevel     string
	envFile      string
	settingsPath string
	spiPort      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the message relay",
	Long: `Start the relay loop: poll Telegram for updates, render authorized
messages, and paint them onto the e-paper panel.

At startup the display is woken, cleared, and put back to sleep as a
self-test; the process exits if the panel is not working. The panel is
powered down on every exit path, including signals.`,
	Example: `  # Start with credentials from the environment
  jewelrybox serve

  # Verbose logging and an explicit credentials file
  jewelrybox serve --log-level debug --env-file /boot/jewelrybox.env

  # Use the second SPI chip select
  jewelrybox serve --spi-port SPI0.1`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&envFile, "env-file", "", "Credentials dotenv file (default ~/.jewelrybox_env)")
	serveCmd.Flags().StringVar(&settingsPath, "config", "", "Settings YAML file (default ~/.config/jewelrybox/config.yaml)")
	serveCmd.Flags().StringVar(&spiPort, "spi-port", "", "periph.io SPI port name (overrides the settings file)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()
	logging.Info("Starting jewelrybox", zap.String("version", version.Full()))

	creds, err := config.LoadCredentials(envFile)
	if err != nil {
		logging.Error("Configuration error", zap.Error(err))
		return err
	}
	logging.Info("Bot token and chat ID loaded")

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		logging.Error("Configuration error", zap.Error(err))
		return err
	}
	if spiPort != "" {
		settings.SPIPort = spiPort
	}

	fonts, err := render.LoadFonts(settings.MessageFontSize, settings.WelcomeFontSize)
	if err != nil {
		logging.Error("Font setup failed", zap.Error(err))
		return err
	}
	logging.Info("Fonts loaded",
		zap.Int("message_size", settings.MessageFontSize),
		zap.Int("welcome_size", settings.WelcomeFontSize),
	)

	display, err := epd.New(settings.SPIPort)
	if err != nil {
		logging.Error("Display driver initialization failed", zap.Error(err))
		return err
	}
	// Power the panel down on every exit path, signals included.
	defer func() {
		if err := display.Close(); err != nil {
			logging.Error("Display teardown failed", zap.Error(err))
		}
	}()
	logging.Info("Display driver ready",
		zap.Int("width", display.Width()),
		zap.Int("height", display.Height()),
	)

	relay, err := bot.New(creds, settings, display, fonts)
	if err != nil {
		logging.Error("Bot setup failed", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := relay.Run(ctx); err != nil {
		logging.Error("Serving loop failed", zap.Error(err))
		return err
	}
	return nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jewelrybox %s (commit: %s)\n", version.Version, version.Commit)
	},
}
