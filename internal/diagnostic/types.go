package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"vanilla/internal/common"
)

// Diagnostics holds all diagnostic information from one generator run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypePair identifies which draft/target pair this relates to (if any).
	TypePair string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Pos is the source position the diagnostic is reported at (if known).
	Pos token.Position
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// NewError builds an error diagnostic.
func NewError(code, message string, pos token.Position) Diagnostic {
	return Diagnostic{Severity: DiagnosticError, Code: code, Message: message, Pos: pos}
}

// NewWarning builds a warning diagnostic.
func NewWarning(code, message string, pos token.Position) Diagnostic {
	return Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, Pos: pos}
}

// NewInfo builds an info diagnostic.
func NewInfo(code, message string, pos token.Position) Diagnostic {
	return Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message, Pos: pos}
}

// WithPair returns a copy of d attributed to a type pair.
func (d Diagnostic) WithPair(pair string) Diagnostic {
	d.TypePair = pair
	return d
}

// WithField returns a copy of d attributed to a field.
func (d Diagnostic) WithField(path string) Diagnostic {
	d.FieldPath = path
	return d
}

// WithSuggestions returns a copy of d carrying suggestions.
func (d Diagnostic) WithSuggestions(suggestions ...string) Diagnostic {
	d.Suggestions = append(append([]string(nil), d.Suggestions...), suggestions...)
	return d
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typePair, fieldPath string) {
	d.Add(Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   message,
		TypePair:  typePair,
		FieldPath: fieldPath,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typePair, fieldPath string) {
	d.Add(Diagnostic{
		Severity:  DiagnosticWarning,
		Code:      code,
		Message:   message,
		TypePair:  typePair,
		FieldPath: fieldPath,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typePair, fieldPath string) {
	d.Add(Diagnostic{
		Severity:  DiagnosticInfo,
		Code:      code,
		Message:   message,
		TypePair:  typePair,
		FieldPath: fieldPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypePair != "" {
		prefix = append(prefix, "["+d.TypePair+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
