package booc

import "fmt"

// IssueCode identifies a non-fatal configuration problem.
type IssueCode string

const (
	// IssueInvalidVerbosity marks a verbosity outside Normal, Warning, Info
	// and Verbose. No verbosity switch is emitted.
	IssueInvalidVerbosity IssueCode = "InvalidVerbosity"
	// IssueUnknownResourceKind marks a resource whose kind is neither Resx
	// nor Non-Resx. The resource is left off the command line.
	IssueUnknownResourceKind IssueCode = "UnknownResourceKind"
)

// Issue is a configuration problem found while assembling the command line.
// Assembly always continues past an Issue.
type Issue struct {
	Code    IssueCode `json:"code"`
	Field   string    `json:"field"`
	Value   string    `json:"value"`
	Message string    `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

func invalidVerbosity(v Verbosity) Issue {
	return Issue{
		Code:  IssueInvalidVerbosity,
		Field: "Verbosity",
		Value: string(v),
		Message: fmt.Sprintf("The %q parameter has an invalid value %q. Valid values are: %s.",
			"Verbosity", string(v), "Normal, Warning, Info, Verbose"),
	}
}

func unknownResourceKind(r Resource) Issue {
	return Issue{
		Code:    IssueUnknownResourceKind,
		Field:   "Resources",
		Value:   string(r.Kind),
		Message: fmt.Sprintf("resource %q has type %q (expected Resx or Non-Resx); not embedded", r.Spec, string(r.Kind)),
	}
}
