package booc

import "strings"

// Argument is one element of the compiler command line. Switch carries the
// prefix including its separator ("-o:", "-r:", "@"); Value carries the
// payload. Bare flags have no Value and source files have no Switch.
type Argument struct {
	Switch string `json:"switch,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Token is the argv element for a.
func (a Argument) Token() string {
	return a.Switch + a.Value
}

// Display renders a for a human-readable command line, quoting the value
// when it holds whitespace or quotes.
func (a Argument) Display() string {
	return a.Switch + quote(a.Value)
}

// Arguments is an ordered compiler command line.
type Arguments []Argument

// Strings returns the argv tokens, one per argument.
func (args Arguments) Strings() []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.Token()
	}
	return out
}

// String renders the command line as a single space-separated string.
func (args Arguments) String() string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Display()
	}
	return strings.Join(parts, " ")
}

// Len returns the rendered length of the command line in bytes.
func (args Arguments) Len() int {
	return len(args.String())
}

// Has reports whether any argument carries the exact switch and value.
func (args Arguments) Has(sw, value string) bool {
	for _, a := range args {
		if a.Switch == sw && a.Value == value {
			return true
		}
	}
	return false
}

func quote(v string) string {
	if v == "" || !strings.ContainsAny(v, " \t\"") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}
