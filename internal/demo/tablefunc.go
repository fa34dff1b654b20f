package demo

import (
	"github.com/roach88/sofi/internal/lattice"
	"github.com/roach88/sofi/internal/sofi"
)

// TableRule is one row of a TableFunc: if the input integrity dominates
// Cmp, then either Plus (if non-nil) or the input itself is joined into
// the function's result.
type TableRule struct {
	Cmp  lattice.Integrity
	Plus *lattice.Integrity // nil means "add the input"
}

// TableFunc is the demonstration's table-driven integrity function,
// grounded on the original demo's integrity_fun: a list of (cmp, plus)
// rules evaluated against the input and joined together, then met with
// limit. It is always safe, since the final meet with limit bounds the
// result regardless of the rules.
type TableFunc struct {
	Rules   []TableRule
	Comment string
}

// Apply evaluates every rule against i, joins the matching contributions,
// and clamps the result to limit.
func (f TableFunc) Apply(i, limit lattice.Integrity, _ sofi.Operation) lattice.Integrity {
	result := limit.Min()
	for _, rule := range f.Rules {
		if !lattice.LessEq(rule.Cmp, i) {
			continue
		}
		if rule.Plus != nil {
			result = result.Join(*rule.Plus)
		} else {
			result = result.Join(i)
		}
	}
	return result.Meet(limit)
}

// Safe always reports true: the meet with limit in Apply is unconditional.
func (TableFunc) Safe() bool { return true }

// TableMin returns the table-driven function with no rules, equivalent to
// sofi.Min.
func TableMin() TableFunc { return TableFunc{Comment: "min"} }

// TableIdentity returns the table-driven function with a single
// match-everything rule, equivalent to sofi.Identity.
func TableIdentity(zero lattice.Integrity) TableFunc {
	return TableFunc{Comment: "identity", Rules: []TableRule{{Cmp: zero}}}
}

// TableMax returns the table-driven function whose single rule replaces
// the input with the lattice's maximum, equivalent to sofi.Max.
func TableMax(zero, max lattice.Integrity) TableFunc {
	return TableFunc{Comment: "max", Rules: []TableRule{{Cmp: zero, Plus: &max}}}
}
