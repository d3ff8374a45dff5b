package config

import "slices"

// Merge returns base overlaid with override. Scalar fields in override win
// when non-empty. Evaluator entries in override add to or replace entries of
// the same name in base. Neither input is modified.
func Merge(base, override *Config) *Config {
	out := clone(base)
	if override == nil {
		return out
	}

	if override.Shell != "" {
		out.Shell = override.Shell
	}
	if override.PollInterval != "" {
		out.PollInterval = override.PollInterval
	}
	if override.Drain != "" {
		out.Drain = override.Drain
	}
	if override.TempDir != "" {
		out.TempDir = override.TempDir
	}
	if override.AuditFile != "" {
		out.AuditFile = override.AuditFile
	}
	if override.Log.File != "" {
		out.Log.File = override.Log.File
	}
	if override.Log.Level != "" {
		out.Log.Level = override.Log.Level
	}

	if len(override.Evaluators) > 0 && out.Evaluators == nil {
		out.Evaluators = make(map[string][]string, len(override.Evaluators))
	}
	for name, tokens := range override.Evaluators {
		out.Evaluators[name] = slices.Clone(tokens)
	}
	return out
}

func clone(cfg *Config) *Config {
	if cfg == nil {
		return &Config{}
	}
	out := *cfg
	if cfg.Evaluators != nil {
		out.Evaluators = make(map[string][]string, len(cfg.Evaluators))
		for name, tokens := range cfg.Evaluators {
			out.Evaluators[name] = slices.Clone(tokens)
		}
	}
	return &out
}
