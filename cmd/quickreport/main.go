package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quickreport/cmd/quickreport/config"
	"quickreport/cmd/quickreport/ui"
	"quickreport/internal/logging"
	"quickreport/internal/report"
	"quickreport/internal/store"
)

const version = "4.0.0"

var (
	// Global flags
	verbose   bool
	workspace string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quickreport",
	Short: "quickreport - Trình soạn báo cáo kết quả nhanh",
	Long: `quickreport composes daily campaign result reports (BCKQ) for the
ML / TH / SG markets: revenue, advertising cost and cost percentage are
derived while you type, and the finished block is copied straight to
the clipboard.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "quickreport" && cmd.CalledAs() == "quickreport" {
			return nil
		}

		// Initialize logger
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// versionCmd shows version info
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Debug("version requested", zap.String("version", version))
		}
		fmt.Printf("quickreport %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveWorkspace applies the --workspace flag with cwd fallback.
func resolveWorkspace() string {
	if workspace != "" {
		return workspace
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

func snapshotPath(ws string) string {
	return filepath.Join(ws, ".quickreport", "report.db")
}

// newRunLogger builds a zap logger for the interactive session. The TUI
// owns the terminal, so it writes to a file under the workspace log dir
// instead of stderr.
func newRunLogger(ws string) (*zap.Logger, error) {
	logDir := filepath.Join(ws, ".quickreport", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{filepath.Join(logDir, "run.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	return cfg.Build()
}

// loadState opens the snapshot store and restores the last session.
// A broken store is downgraded to a warning; the app then runs without
// persistence rather than not at all.
func loadState(ws string, cfg config.Config, log *zap.Logger) (report.State, *store.SnapshotStore) {
	st, err := store.Open(snapshotPath(ws))
	if err != nil {
		log.Warn("snapshot store unavailable, running without persistence", zap.Error(err))
		logging.BootError("snapshot store unavailable: %v", err)
		st = nil
	}

	if st != nil {
		if state, ok, err := st.Load(); err == nil && ok {
			log.Info("restored snapshot", zap.Int("campaigns", len(state.Items)))
			return state, st
		} else if err != nil {
			log.Warn("snapshot load failed, starting fresh", zap.Error(err))
			logging.BootError("snapshot load failed: %v", err)
		}
	}

	log.Info("starting from default state")
	state := report.DefaultState(time.Now())
	if cfg.UserName != "" {
		state.UserName = cfg.UserName
	}
	return state, st
}

// persistPreferences remembers the reporter name and theme across
// sessions, so a fresh snapshot starts with the last used name.
func persistPreferences(cfg config.Config, state report.State) error {
	cfg.UserName = state.UserName
	return config.Save(cfg)
}

func stylesFor(theme string) ui.Styles {
	switch theme {
	case "light":
		return ui.NewStyles(ui.LightTheme())
	case "dark":
		return ui.NewStyles(ui.DarkTheme())
	default:
		return ui.NewStyles(ui.DetectTheme())
	}
}

// runInteractive starts the report editor interface
func runInteractive() error {
	ws := resolveWorkspace()
	if err := logging.Initialize(ws); err != nil {
		return err
	}
	defer logging.CloseAll()

	runLog, err := newRunLogger(ws)
	if err != nil {
		return err
	}
	defer runLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		runLog.Warn("config load failed, using defaults", zap.Error(err))
		logging.BootError("config load failed, using defaults: %v", err)
	}
	runLog.Info("starting interactive session",
		zap.String("workspace", ws),
		zap.String("theme", cfg.Theme),
		zap.String("version", version))

	state, st := loadState(ws, cfg, runLog)
	if st != nil {
		defer st.Close()
	}
	logging.Boot("starting with %d campaigns", len(state.Items))

	var saver ui.Saver
	if st != nil {
		saver = st
	}

	p := tea.NewProgram(
		ui.NewApp(state, saver, stylesFor(cfg.Theme)),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		runLog.Error("interface terminated", zap.Error(err))
		return err
	}

	// Flush whatever the last reduce produced before exiting.
	if app, ok := finalModel.(ui.App); ok {
		if st != nil {
			if err := st.Save(app.State()); err != nil {
				runLog.Error("final snapshot save failed", zap.Error(err))
				logging.StoreError("final snapshot save failed: %v", err)
			}
		}
		if err := persistPreferences(cfg, app.State()); err != nil {
			runLog.Warn("preferences save failed", zap.Error(err))
		}
	}
	runLog.Info("session closed")
	return nil
}

