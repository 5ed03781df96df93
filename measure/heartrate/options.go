package heartrate

const (
	defaultBufferCapacity = 300
	defaultSampleRate     = 30.0
)

// Config defines configuration for the estimator.
type Config struct {
	// BufferCapacity is the sliding-window length in samples. The
	// default of 300 holds ten seconds at the nominal frame rate.
	BufferCapacity int

	// SampleRate is the nominal frame rate in Hz. Frequency-to-BPM
	// conversion assumes this rate; actual frame timing is not
	// measured.
	SampleRate float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: 300 samples at 30 Hz.
func DefaultConfig() Config {
	return Config{
		BufferCapacity: defaultBufferCapacity,
		SampleRate:     defaultSampleRate,
	}
}

// WithBufferCapacity sets the sliding-window capacity in samples.
func WithBufferCapacity(capacity int) Option {
	return func(cfg *Config) {
		cfg.BufferCapacity = capacity
	}
}

// WithSampleRate sets the nominal sampling rate in Hz.
func WithSampleRate(rate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = rate
	}
}

// ApplyOptions applies zero or more options to the default config.
// Values are validated by NewEstimator, not here.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
