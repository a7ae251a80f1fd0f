// Package paths resolves where ngofile keeps its files.
//
// Locations follow the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/ngofile (config.toml)
//   - State: $XDG_STATE_HOME/ngofile (roots.toml, ngofile.log)
//
// # Environment Variables
//
//   - NGOFILE_CONFIG_DIR: overrides the config directory
//   - NGOFILE_STATE_DIR: overrides the state directory
//
// Both accept a leading "~".
package paths
