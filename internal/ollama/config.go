package ollama

// Config contains inference server client configuration.
// Timeouts are in seconds; zero disables the per-call bound.
type Config struct {
	BaseURL         string `env:"OLLAMA_BASE_URL"         envDefault:"http://ollama:11434"`
	DefaultModel    string `env:"OLLAMA_DEFAULT_MODEL"    envDefault:"llama2"`
	ProbeTimeout    int    `env:"OLLAMA_PROBE_TIMEOUT"    envDefault:"5"`
	GenerateTimeout int    `env:"OLLAMA_GENERATE_TIMEOUT" envDefault:"60"`
	ListTimeout     int    `env:"OLLAMA_LIST_TIMEOUT"     envDefault:"0"`
	PullTimeout     int    `env:"OLLAMA_PULL_TIMEOUT"     envDefault:"0"`
	PullWait        bool   `env:"OLLAMA_PULL_WAIT"        envDefault:"false"`
}
