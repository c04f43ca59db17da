package lang

import "fmt"

// ConfigError reports a language tag outside the supported set.
type ConfigError struct {
	Tag string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unsupported language: %q", e.Tag)
}
