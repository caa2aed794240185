// Package config loads gearbox configuration with koanf.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/gearbox/gearbox.toml or an
//     explicit path
//  3. GEARBOX_* environment variables, e.g. GEARBOX_REGISTRY_STRICT=true
//  4. overrides supplied by the caller, usually command-line flags
package config
