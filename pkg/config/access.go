package config

import "sync"

var (
	globalMu     sync.RWMutex
	globalConfig *Config
)

// Initialize sets the process-wide configuration. nil installs the
// embedded defaults.
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// Get returns the process-wide configuration
func Get() *Config {
	globalMu.RLock()
	cfg := globalConfig
	globalMu.RUnlock()
	if cfg != nil {
		return cfg
	}
	Initialize(nil)
	return Get()
}
