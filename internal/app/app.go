package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/config"
	"github.com/five82/strata/internal/layout"
	"github.com/five82/strata/internal/prefs"
	"github.com/five82/strata/internal/state"
	"github.com/five82/strata/internal/ui"
	"github.com/five82/strata/internal/welldata"
)

// Options configure the strata application. Non-empty string fields and a
// positive PollEvery override the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/strata/prefs.toml
	APIBind    string
	Workarea   string
	Well       string
	LayoutPath string
	PollEvery  int // seconds; zero uses the config value
}

// LoadConfig reads the config file, applies the overrides in opts and
// checks that a well is selected.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load strata config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIBind); v != "" {
		cfg.APIBind = v
	}
	if v := strings.TrimSpace(opts.Workarea); v != "" {
		cfg.Workarea = v
	}
	if v := strings.TrimSpace(opts.Well); v != "" {
		cfg.Well = v
	}
	if v := strings.TrimSpace(opts.LayoutPath); v != "" {
		cfg.LayoutPath = v
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Run boots the strata TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; route the standard logger to a file.
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.LogPath, "strata")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	tf, err := loadTypeface(cfg, complog.SystemFontCandidates)
	if err != nil {
		return err
	}

	client, err := welldata.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init welldata client: %w", err)
	}

	// Fail fast against an unreachable service or unknown well.
	bootCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	session, err := OpenSession(bootCtx, client, cfg, complog.DepthRange{})
	cancel()
	if err != nil {
		return err
	}

	store := &state.Store{}
	store.SetConfig(session.Config)
	store.UpdateData(session.Data, nil)

	poller := NewPoller(store, client, cfg.Workarea, cfg.Well, cfg.PollInterval)
	poller.Start(ctx)

	if cfg.LayoutPath != "" {
		go watchLayout(ctx, cfg, store, poller)
	}

	uiOpts := ui.Options{
		Context:    ctx,
		Store:      store,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		Refresh:    poller.Kick,
		SaveLayout: layoutSaver(cfg.LayoutPath),
		Export:     snapshotExporter(tf),
		Typeface:   tf,
	}
	return ui.Run(uiOpts)
}

// watchLayout pushes edits of the layout file into the store. A layout
// without a depth range keeps the range the user is looking at.
func watchLayout(ctx context.Context, cfg config.Config, store *state.Store, poller *Poller) {
	err := layout.Watch(ctx, cfg.LayoutPath, func(chart complog.CompositeLogConfig, err error) {
		if err != nil {
			log.Printf("layout reload failed: %v", err)
			return
		}
		current := store.Snapshot().Config
		if !chart.DepthRange.Valid() {
			chart.DepthRange = current.DepthRange
		}
		if chart.WellName == "" {
			chart.WellName = cfg.Well
		}
		store.SetConfig(chart)
		poller.Kick()
		log.Printf("layout reloaded from %s", cfg.LayoutPath)
	})
	if err != nil {
		log.Printf("layout watch stopped: %v", err)
	}
}

func layoutSaver(path string) func(complog.CompositeLogConfig) (string, error) {
	if path == "" {
		return nil
	}
	return func(chart complog.CompositeLogConfig) (string, error) {
		return path, layout.Save(path, chart)
	}
}
