package config

// Config holds the whole configuration of the minter node
type Config struct {
	General GeneralConfig
	API     APIConfig
	DB      DBConfig
	Genesis GenesisConfig
}

// GeneralConfig holds process-wide settings
type GeneralConfig struct {
	LogLevel string
}

// APIConfig holds the REST interface settings
type APIConfig struct {
	Enabled bool
	Address string
}

// DBConfig holds the persistence settings. With UseMemory set, state lives only for the
// lifetime of the process.
type DBConfig struct {
	UseMemory bool
	FilePath  string
	CacheSize int
}

// GenesisConfig holds the one-time initialization parameters applied at first start.
// Amounts are base-10 strings at the documented scales.
type GenesisConfig struct {
	AdminAddress        string
	ProjectsAddress     string
	RecoveryAddress     string
	AlternunAddress     string
	FeeBps              uint32
	CommercialFactorBps uint32
	InitialPrice        string
	GBTTokenName        string
	GBTTickerName       string
	StableTokenName     string
	StableTickerName    string
	TokenDecimals       uint32
}
