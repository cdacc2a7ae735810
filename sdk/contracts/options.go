package contracts

// TunerOptions defines the configuration options for the tuner client.
type TunerOptions struct {
	Logger       Logger   // Logger for diagnostic output.
	LogLevel     LogLevel // Level of logging to use.
	ConcertPitch float64  // Reference frequency for A4 in Hz; 440 when unset.
}

// Option is a function that modifies TunerOptions.
type Option func(*TunerOptions)

// WithLogger sets the logger for the tuner client.
func WithLogger(l Logger) Option {
	return func(opts *TunerOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the tuner client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *TunerOptions) {
		opts.LogLevel = level
	}
}

// WithConcertPitch sets the reference frequency of A4 in Hz. Conversions
// still use equal temperament; only the tuning anchor moves.
func WithConcertPitch(hz float64) Option {
	return func(opts *TunerOptions) {
		opts.ConcertPitch = hz
	}
}
