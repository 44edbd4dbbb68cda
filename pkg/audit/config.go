package audit

import "time"

// Config is the environment representation of the Logger options.
type Config struct {
	BufferSize     int           `env:"AUDIT_BUFFER_SIZE" envDefault:"1000"`
	BatchSize      int           `env:"AUDIT_BATCH_SIZE" envDefault:"100"`
	FlushInterval  time.Duration `env:"AUDIT_FLUSH_INTERVAL" envDefault:"1s"`
	StorageTimeout time.Duration `env:"AUDIT_STORAGE_TIMEOUT" envDefault:"5s"`
	Collection     string        `env:"AUDIT_COLLECTION" envDefault:"security_events"`
	Retention      time.Duration `env:"AUDIT_RETENTION" envDefault:"2160h"`
}

// Options converts the config into Logger options.
func (c Config) Options() []Option {
	return []Option{
		WithBufferSize(c.BufferSize),
		WithBatchSize(c.BatchSize),
		WithFlushInterval(c.FlushInterval),
		WithStorageTimeout(c.StorageTimeout),
	}
}
