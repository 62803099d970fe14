// Package config loads the crux configuration.
//
// Values are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. CRUX_* environment      │  ← Highest priority (.env files fill gaps)
//	├─────────────────────────────┤
//	│  2. Config file             │  ← crux.toml or crux.yaml
//	├─────────────────────────────┤
//	│  1. Built-in defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Watcher reloads the file on change and publishes the new Config on an
// event bus.
//
// # Sub-packages
//
//   - loader: TOML and YAML decoding, environment and .env reading
//   - watcher: debounced file change notifications
package config
