package config

// ConfigInitError reports a configuration file that exists but is not
// yet usable, signalling the caller to run first-time setup.
type ConfigInitError struct {
	msg string
}

func (e *ConfigInitError) Error() string { return e.msg }
