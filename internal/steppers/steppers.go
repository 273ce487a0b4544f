package steppers

import (
	"fmt"

	"github.com/san-kum/horizon/internal/ode"
)

// New returns the stepper registered under name ("euler" or "rk2").
func New(name string) (ode.Stepper, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk2":
		return NewRK2(), nil
	default:
		return nil, fmt.Errorf("unknown scheme: %s", name)
	}
}

// Names lists the registered scheme names.
func Names() []string {
	return []string{"euler", "rk2"}
}
