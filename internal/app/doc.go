// Package app is the composition root for pantry.
//
// Run loads config.toml, opens the JSON log file, reads the saved
// preferences and shopping list, and builds the recipe service: the HTTP
// client, or the bundled catalog with --demo. A background poller keeps the
// navbar's favorites count and session fresh, backing off exponentially
// while the API is unreachable. The UI then takes over the terminal until
// the user quits or the context is cancelled.
//
// Startup fails only when the config cannot be parsed, the log file cannot
// be opened, or the API address is invalid. A broken shopping list file or
// an unreachable API degrade the UI instead.
package app
