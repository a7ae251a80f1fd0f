// Package config loads ngofile's configuration.
//
// Layers, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/ngofile/config.toml
//  3. the project file, .ngofile.toml in the working directory
//  4. an explicit file passed with --config
//  5. NGOFILE_<SECTION>_<KEY> environment variables
//
// Tables merge key by key; arrays are replaced, not appended.
package config
