package berkeleydb

// Config collects the settings applied by OpenEnvironment.
type Config struct {
	// Flags passed to DB_ENV->open.
	Flags Flags
	// Mode of files created by the engine; 0 selects the engine default.
	Mode int
	// CacheSize in bytes; 0 keeps the engine default.
	CacheSize uint64
	// CacheRegions the cache is split into (at least 1).
	CacheRegions int
	// Logger receives engine error messages. nil discards them.
	Logger Logger
}

// DefaultConfig returns a configuration for a transactional environment
// that is created if missing.
func DefaultConfig() *Config {
	return &Config{
		Flags:        DbCreate | DbInitMpool | DbInitLock | DbInitLog | DbInitTxn,
		Mode:         0644,
		CacheRegions: 1,
	}
}

// OpenEnvironment creates, configures and opens an environment at home.
// A nil cfg means DefaultConfig.
func OpenEnvironment(home string, cfg *Config) (*Environment, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	env, err := NewEnvironment()
	if err != nil {
		return nil, err
	}
	if cfg.Logger != nil {
		if err := env.SetLogger(cfg.Logger); err != nil {
			env.Close()
			return nil, err
		}
	}
	if cfg.CacheSize > 0 {
		regions := cfg.CacheRegions
		if regions < 1 {
			regions = 1
		}
		if err := env.SetCacheSize(cfg.CacheSize, regions); err != nil {
			env.Close()
			return nil, err
		}
	}
	// a handle whose open failed must still be closed
	if err := env.Open(home, cfg.Flags, cfg.Mode); err != nil {
		env.Close()
		return nil, err
	}
	return env, nil
}
