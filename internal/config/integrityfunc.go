package config

import (
	"fmt"

	"github.com/roach88/sofi/internal/sofi"
)

// ParseIntegrityFunc resolves the integrity-function name an entity
// document uses for its test/providing/receiving roles, matching the
// original demo's int_fun rows (0,'min'), (1,'identity'), (2,'max').
func ParseIntegrityFunc(name string) (sofi.IntegrityFunc, error) {
	switch name {
	case "min":
		return sofi.Min(), nil
	case "identity":
		return sofi.Identity(), nil
	case "max":
		return sofi.Max(), nil
	default:
		return nil, &LoadError{Code: ErrCodeBadIntegrityFunc, Message: fmt.Sprintf("unrecognized integrity function %q", name)}
	}
}

// FormatIntegrityFunc is ParseIntegrityFunc's inverse, identifying f by
// the same name the demo's integrity functions are constructed with. It
// recognizes only the three singleton factories; a demo.TableFunc or any
// other custom IntegrityFunc is not nameable this way and returns an
// error — custom functions have no place in the serialized form.
func FormatIntegrityFunc(f sofi.IntegrityFunc) (string, error) {
	switch {
	case f == sofi.Min():
		return "min", nil
	case f == sofi.Identity():
		return "identity", nil
	case f == sofi.Max():
		return "max", nil
	default:
		return "", &LoadError{Code: ErrCodeBadIntegrityFunc, Message: fmt.Sprintf("%T is not a nameable integrity function", f)}
	}
}
