package survey

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every ParamError.
var ErrInvalidConfig = errors.New("survey: invalid config")

// ParamError reports the configuration parameter that failed validation.
type ParamError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("survey: invalid %s=%v: %s", e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidConfig }
