package diag

import (
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rule recognizes one diagnostic shape.
type Rule interface {
	Name() string
	Match(line string) (Record, bool)
}

// warningPattern matches
//
//	Program.boo(1,1): BCW0000: WARNING: This is a warning.
//
// The position is optional.
var warningPattern = regexp.MustCompile(
	`^(?P<file>.*?)(?:\((?P<line>\d+),(?P<column>\d+)\):)?\s?(?P<code>BCW\d{4}):\sWARNING:\s(?P<message>.*)$`)

// errorPattern matches
//
//	Program.boo(1,1): BCE0000: This is an error.
//	Program.boo(1,1): BCE0000: Boo.Lang.Compiler.CompilerError: This is an error. ---> inner
//	BCE0000: This is an error.
//	Fatal error: This is an error.
//
// The message stops before a chained " --->" cause.
var errorPattern = regexp.MustCompile(
	`(?m)^(?:(?:(?P<file>.*?)\((?P<line>\d+),(?P<column>\d+)\): )?(?P<code>BCE\d{4})|(?P<errorType>Fatal) error):(?: Boo\.Lang\.Compiler\.CompilerError:)? (?P<message>.*?)(?:$| --->)`)

// WarningRule classifies BCW warnings.
type WarningRule struct{}

func (WarningRule) Name() string { return "warning" }

func (WarningRule) Match(line string) (Record, bool) {
	g, ok := submatches(warningPattern, line)
	if !ok {
		return Record{}, false
	}
	return Record{
		Severity: SeverityWarning,
		Code:     g["code"],
		File:     g["file"],
		Line:     atoi(g["line"]),
		Column:   atoi(g["column"]),
		Message:  g["message"],
	}, true
}

// ErrorRule classifies BCE errors and fatal errors.
type ErrorRule struct{}

func (ErrorRule) Name() string { return "error" }

func (ErrorRule) Match(line string) (Record, bool) {
	g, ok := submatches(errorPattern, line)
	if !ok {
		return Record{}, false
	}
	rec := Record{
		Severity:    SeverityError,
		Subcategory: cases.Lower(language.Und).String(g["errorType"]),
		Code:        g["code"],
		File:        g["file"],
		Line:        atoi(g["line"]),
		Column:      atoi(g["column"]),
		Message:     g["message"],
	}
	if rec.Code == "" {
		rec.Code = DefaultErrorCode
	}
	if rec.File == "" {
		rec.File = DefaultErrorFile
	}
	return rec, true
}

func submatches(re *regexp.Regexp, line string) (map[string]string, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out, true
}

// atoi returns 0 for empty or out-of-range digits.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
