package synth

import(
  "fmt"
)

// ConfigurationError reports a parameter record that cannot be rendered.
type ConfigurationError struct {
  Field string
  Value interface{}
  Reason string
}

func (e *ConfigurationError) Error() string {
  return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}
