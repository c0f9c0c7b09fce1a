package main

import (
	"fmt"
	"strconv"
	"strings"
)

// floatList collects floats from repeated flags or comma-separated values.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	for _, field := range splitList(s) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", field)
		}
		*l = append(*l, v)
	}
	return nil
}

// complexList collects complex numbers written as "1+2i", "-0.5i" or "3".
type complexList []complex128

func (l *complexList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatComplex(v, 'g', -1, 128)
	}
	return strings.Join(parts, ",")
}

func (l *complexList) Set(s string) error {
	for _, field := range splitList(s) {
		// Accept the "j" suffix too.
		v, err := strconv.ParseComplex(strings.ReplaceAll(field, "j", "i"), 128)
		if err != nil {
			return fmt.Errorf("%q is not a complex number", field)
		}
		*l = append(*l, v)
	}
	return nil
}

// stringList collects names from repeated flags or comma-separated values.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(s string) error {
	*l = append(*l, splitList(s)...)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			out = append(out, field)
		}
	}
	return out
}
