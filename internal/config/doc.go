// Package config loads pantry's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pantry/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	api_bind  = "127.0.0.1:8080"
//	log_file  = "~/.local/state/pantry/pantry.log"
//	log_level = "info"
//	page_size = 12
//
//	[search]
//	url_debounce  = "500ms"   # quiet period before the address follows the query
//	fetch_timeout = "5s"      # per suggestion request
//	stale_policy  = "latest"  # or "last-arrival"
//
// All fields are optional. Tilde expansion is performed for log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors, unparsable durations and unknown stale
// policies. A missing file is not an error.
package config
