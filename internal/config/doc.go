// Package config loads and validates editor configuration.
//
// Configuration comes from three sources, later ones winning:
//
//  1. built-in defaults
//  2. a TOML config file (gridstorm.toml)
//  3. GRIDSTORM_* environment variables
//
// Key bindings live in a separate YAML keymap file so users can swap
// keymaps without touching the main config. A file watcher based on
// fsnotify re-loads the config file on change and notifies subscribers.
package config
