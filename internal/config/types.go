// Package config provides the coderun configuration file. It maps to YAML
// stored at ~/.config/coderun/config.yaml.
//
// The executor core never reads this package; the CLI loads a Config and
// hands the executor a Registry and launch options built from it.
package config

// Config represents the coderun configuration file.
type Config struct {
	// Shell is the single-token interpreter used by --shell.
	Shell string `yaml:"shell,omitempty"`
	// PollInterval is how often the CLI polls a running fragment, as a
	// duration string.
	PollInterval string `yaml:"poll_interval,omitempty"`
	// Drain is "sequential" or "concurrent".
	Drain string `yaml:"drain,omitempty"`
	// TempDir holds fragment source files. Empty means the OS temp dir.
	TempDir string `yaml:"temp_dir,omitempty"`
	// Evaluators maps evaluator names to interpreter and fixed arguments.
	Evaluators map[string][]string `yaml:"evaluators,omitempty"`
	// AuditFile receives one line per execution event. Empty disables it.
	AuditFile string    `yaml:"audit_file,omitempty"`
	Log       LogConfig `yaml:"log,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
}
