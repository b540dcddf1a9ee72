package config

import (
	"errors"
	"fmt"

	"github.com/flemzord/wpmock/pkg/function"
)

// Validate checks the structural validity of a Config.
// It verifies the version field, the log level, every function name and
// every expectation's times option, and rejects functions listed both as
// echo and passthru.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Version == "" {
		errs = append(errs, errors.New("config: version field is required"))
	} else if cfg.Version != "1" {
		errs = append(errs, fmt.Errorf("config: unsupported version %q (supported: \"1\")", cfg.Version))
	}

	if cfg.LogLevel != "" {
		if _, ok := cfg.Level(); !ok {
			errs = append(errs, fmt.Errorf("config: unknown log_level %q", cfg.LogLevel))
		}
	}

	for _, name := range Resolve(cfg) {
		if err := function.ValidateName(name); err != nil {
			errs = append(errs, fmt.Errorf("config: functions: %w", err))
			continue
		}
		for i, opts := range cfg.Functions[name] {
			if _, _, err := function.ParseTimes(opts.Times); err != nil {
				errs = append(errs, fmt.Errorf("config: functions.%s[%d]: %w", name, i, err))
			}
		}
	}

	errs = append(errs, validateDefaults(cfg)...)

	return errors.Join(errs...)
}

func validateDefaults(cfg *Config) []error {
	var errs []error
	echo := make(map[string]bool, len(cfg.Echo))

	for i, name := range cfg.Echo {
		if err := function.ValidateName(name); err != nil {
			errs = append(errs, fmt.Errorf("config: echo[%d]: %w", i, err))
		}
		echo[name] = true
	}
	for i, name := range cfg.Passthru {
		if err := function.ValidateName(name); err != nil {
			errs = append(errs, fmt.Errorf("config: passthru[%d]: %w", i, err))
		}
		if echo[name] {
			errs = append(errs, fmt.Errorf("config: %q is listed as both echo and passthru", name))
		}
	}
	return errs
}
