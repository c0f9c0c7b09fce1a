package mapping

import (
	"errors"
	"fmt"
	"maps"
	"math/cmplx"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownMapping indicates a name outside the registry and not of the form z^n.
var ErrUnknownMapping = errors.New("mapping: unknown mapping")

// Func is a pointwise complex mapping.
type Func func(complex128) complex128

var registry = map[string]Func{
	"z":    func(z complex128) complex128 { return z },
	"1/z":  func(z complex128) complex128 { return 1 / z },
	"exp":  cmplx.Exp,
	"log":  cmplx.Log,
	"sqrt": cmplx.Sqrt,
	"sin":  cmplx.Sin,
	"cos":  cmplx.Cos,
	"tan":  cmplx.Tan,
	"sinh": cmplx.Sinh,
	"cosh": cmplx.Cosh,
	"tanh": cmplx.Tanh,

	"joukowski":      func(z complex128) complex128 { return z + 1/z },
	"cayley":         func(z complex128) complex128 { return (z - 1i) / (z + 1i) },
	"inverse-cayley": func(z complex128) complex128 { return 1i * (1 + z) / (1 - z) },
}

// Names returns the registered names in sorted order, without the z^n family.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup resolves name to a Func.
func Lookup(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := registry[key]; ok {
		return f, nil
	}
	if f, ok := power(key); ok {
		return f, nil
	}

	return nil, fmt.Errorf("Lookup(%q): %w (known: %s, z^n)",
		name, ErrUnknownMapping, strings.Join(Names(), ", "))
}

// power parses "z^n" or "z**n" with a real exponent.
// Integer exponents use repeated multiplication so z^2 stays exact on the axes.
func power(key string) (Func, bool) {
	var exp string
	switch {
	case strings.HasPrefix(key, "z**"):
		exp = key[3:]
	case strings.HasPrefix(key, "z^"):
		exp = key[2:]
	default:
		return nil, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(exp), 64)
	if err != nil {
		return nil, false
	}
	if k := int(n); float64(k) == n && k >= -64 && k <= 64 {
		return func(z complex128) complex128 { return intPow(z, k) }, true
	}
	e := complex(n, 0)

	return func(z complex128) complex128 { return cmplx.Pow(z, e) }, true
}

func intPow(z complex128, k int) complex128 {
	if k < 0 {
		return 1 / intPow(z, -k)
	}
	out := complex(1, 0)
	for ; k > 0; k-- {
		out *= z
	}

	return out
}

// LookupAll resolves every name, stopping at the first failure.
func LookupAll(names []string) ([]Func, error) {
	out := make([]Func, 0, len(names))
	for _, name := range names {
		f, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

// Compose returns the function applying fs in order; no functions is the identity.
func Compose(fs ...Func) Func {
	list := slices.Clone(fs)
	return func(z complex128) complex128 {
		for _, f := range list {
			z = f(z)
		}
		return z
	}
}
