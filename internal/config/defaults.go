package config

import "github.com/xdg/coderun/internal/executor"

// DefaultPollInterval is used when poll_interval is not set.
const DefaultPollInterval = "50ms"

// Default returns a Config with all defaults populated.
func Default() *Config {
	return &Config{
		Shell:        executor.DefaultShell,
		PollInterval: DefaultPollInterval,
		Drain:        executor.DrainSequential.String(),
		Evaluators: map[string][]string{
			"bash":   {"bash"},
			"python": {"python3", "-u"},
			"node":   {"node"},
			"ruby":   {"ruby"},
			"perl":   {"perl"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
