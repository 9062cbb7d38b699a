package config

import "fmt"

// ValidationError represents configuration that cannot drive the wizard.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %s", e.Reason)
}
