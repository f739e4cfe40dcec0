package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clickplay/clickplay/internal/app"
	"github.com/clickplay/clickplay/internal/config"
	"github.com/clickplay/clickplay/internal/keyboard"
	"github.com/clickplay/clickplay/internal/media"
	"github.com/clickplay/clickplay/internal/theme"
	"github.com/clickplay/clickplay/internal/tray"
)

const currentVersion = "1.0.0"

var (
	opts    *config.Options
	verbose bool

	events = make(chan app.Event, 16)
	cancel context.CancelFunc
	done   = make(chan struct{})
)

var rootCmd = &cobra.Command{
	Use:   "clickplay",
	Short: "Media controls in the notification area",
	Long: `ClickPlay places previous, play/pause and next icons in the system
notification area and keeps them in sync with playback and the desktop theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		opts = config.Load()
		if verbose {
			opts.Verbose = true
		}
		tray.Run(onReady, onExit)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ClickPlay %s\n", currentVersion)
		fmt.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  Go: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every tray icon update")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	logPath := filepath.Join(config.Dir(), "clickplay.log")
	os.MkdirAll(config.Dir(), 0755)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err == nil {
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
}

func onReady() {
	settingsPath := config.SettingsPath()
	store := config.SettingsStore{Path: settingsPath}

	t := tray.SetupMenu(events, tray.Callbacks{
		OnOpenSettings: func() { openSettings(store) },
		OnQuit:         func() { events <- app.Event{Kind: app.EventQuit} },
		Version:        currentVersion,
	})

	session := media.NewSession()
	m := app.New(app.Config{
		Publisher:    t,
		Playback:     session,
		Theme:        theme.New(opts.Appearance),
		Transport:    session,
		Store:        store,
		OpenMenu:     t.OpenMenu,
		StateChanged: t.StateChanged,
		Verbose:      opts.Verbose,
	})

	var watcher *config.SettingsWatcher
	if !opts.DisableSettingsWatch {
		w, err := config.WatchSettings(settingsPath, func() {
			events <- app.Event{Kind: app.EventSettingsChanged}
		})
		if err != nil {
			log.Printf("Settings watcher not available: %v", err)
		} else {
			watcher = w
		}
	}

	var ctx context.Context
	ctx, cancel = context.WithCancel(context.Background())
	go func() {
		m.Run(ctx, events)
		if watcher != nil {
			watcher.Close()
		}
		close(done)
		tray.Quit()
	}()

	// Handle OS signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()
}

func onExit() {
	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Println("ClickPlay exited")
}

// openSettings opens the settings file in the default editor, writing
// defaults first if it does not exist yet.
func openSettings(store config.SettingsStore) {
	if _, err := os.Stat(store.Path); os.IsNotExist(err) {
		if err := store.Save(config.Settings{}); err != nil {
			log.Printf("Failed to create settings file: %v", err)
			return
		}
	}
	if err := keyboard.OpenFile(store.Path); err != nil {
		log.Printf("Failed to open settings file: %v", err)
	}
}
