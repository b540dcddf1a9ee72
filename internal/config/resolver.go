package config

import "slices"

// Resolve returns a sorted list of function names from the configuration.
// The deterministic order ensures consistent registration.
func Resolve(cfg *Config) []string {
	names := make([]string, 0, len(cfg.Functions))
	for name := range cfg.Functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
