package domain

// Config represents the kata configuration loaded from kata.yaml.
type Config struct {
	Random  RandomConfig
	Reports ReportsConfig
	Output  OutputConfig
}

type RandomConfig struct {
	// Seed is nil when shuffles and choices should be nondeterministic.
	Seed *uint64
}

type ReportsConfig struct {
	Dir   string
	Index bool
}

type OutputConfig struct {
	Format string
}

// DefaultConfig provides sane defaults if kata.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Reports: ReportsConfig{
			Dir:   "reports",
			Index: true,
		},
		Output: OutputConfig{
			Format: "pretty",
		},
	}
}

// WorkspaceSpec describes where a workspace is initialized.
type WorkspaceSpec struct {
	Root string
}
