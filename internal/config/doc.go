// Package config loads the strata configuration file.
//
// # Overview
//
// The config file tells strata which compute service to talk to, which
// workarea and well to open, where the chart layout lives and where to
// write its log. Every field is optional so the viewer starts without a
// file; the command line fills in whatever is still missing.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/strata/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/strata/config.toml
//   - API endpoint: 127.0.0.1:20022
//   - Log file: ~/.local/state/strata/strata.log
//   - Poll interval: 10 seconds
//
// # TOML Format
//
//	api_bind = "127.0.0.1:20022"
//	workarea = "~/areas/ordos"
//	well = "W1"
//	layout = "~/.config/strata/layouts/standard.toml"
//	log_file = "~/.local/state/strata/strata.log"
//	poll_seconds = 10
//
// Tilde expansion is applied to workarea, layout and log_file. A
// non-positive poll_seconds keeps the default.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error. Validate reports a missing
// workarea or well once command line overrides have been applied.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//	client, err := welldata.NewClient(cfg.APIBind)
//
// The package is stateless: it reads the file once and returns a Config
// value. No global state or singleton patterns are used.
package config
