package inputguard

// Config is the environment representation of the middleware options.
type Config struct {
	MaxBodyBytes int64 `env:"INPUTGUARD_MAX_BODY_BYTES" envDefault:"1048576"`
	MaxDepth     int   `env:"INPUTGUARD_MAX_DEPTH" envDefault:"128"`
}
