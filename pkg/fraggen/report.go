package fraggen

import (
	"errors"
	"fmt"
	"strings"
)

var ErrDuplicateFragmentName = errors.New("duplicate fragment name")

// DuplicateFragmentNameError is returned when two types map to the same
// fragment name under the configured naming scheme.
type DuplicateFragmentNameError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicateFragmentNameError) Error() string {
	return fmt.Sprintf("types %q and %q both map to fragment name %q", e.First, e.Second, e.Name)
}

func (e *DuplicateFragmentNameError) Is(target error) bool {
	return target == ErrDuplicateFragmentName
}

type WarningKind int

const (
	WarningKindUnknown WarningKind = iota
	WarningKindEmptySelection
)

func (k WarningKind) String() string {
	switch k {
	case WarningKindEmptySelection:
		return "EmptySelection"
	default:
		return "Unknown"
	}
}

type Warning struct {
	Kind     WarningKind
	TypeName string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningKindEmptySelection:
		return fmt.Sprintf("%s: type %s has nothing to select, no fragment generated", w.Kind, w.TypeName)
	default:
		return fmt.Sprintf("%s: type %s", w.Kind, w.TypeName)
	}
}

// Report collects the non fatal findings of a synthesis run.
type Report struct {
	Warnings []Warning
}

func (r *Report) AddWarning(warning Warning) {
	r.Warnings = append(r.Warnings, warning)
}

func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r Report) String() string {
	lines := make([]string, 0, len(r.Warnings))
	for i := range r.Warnings {
		lines = append(lines, r.Warnings[i].String())
	}
	return strings.Join(lines, "\n")
}
