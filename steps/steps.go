// Package steps models the ordered wizard steps and the validity guard that
// decides whether the cursor may move between them.
package steps

import "github.com/BrianJOC/coco/state"

// Step identifies one page of the builder.
type Step int

const (
	Type Step = iota
	Scope
	Commit
	BreakingChange
	Preview
)

// All lists the steps in base order.
var All = []Step{Type, Scope, Commit, BreakingChange, Preview}

// Key is the kebab-case name used for validity and child lookup.
func (s Step) Key() string {
	switch s {
	case Type:
		return "type"
	case Scope:
		return "scope"
	case Commit:
		return state.CommitStepKey
	case BreakingChange:
		return "breaking-change"
	case Preview:
		return "preview"
	default:
		return "unknown"
	}
}

func (s Step) String() string {
	return s.Key()
}

// Toggles carries the config switches that enable optional steps and fields.
type Toggles struct {
	AskScope          bool
	AskBody           bool
	AskFooter         bool
	AskBreakingChange bool
}

// AllEnabled returns toggles with every optional step and field turned on.
func AllEnabled() Toggles {
	return Toggles{AskScope: true, AskBody: true, AskFooter: true, AskBreakingChange: true}
}

// Enabled reports whether the step participates in navigation.
func Enabled(s Step, t Toggles) bool {
	switch s {
	case Scope:
		return t.AskScope
	case BreakingChange:
		return t.AskBreakingChange
	default:
		return true
	}
}

// Next returns the nearest enabled step after s.
func Next(s Step, t Toggles) (Step, bool) {
	for candidate := s + 1; candidate <= Preview; candidate++ {
		if Enabled(candidate, t) {
			return candidate, true
		}
	}
	return s, false
}

// Prev returns the nearest enabled step before s.
func Prev(s Step, t Toggles) (Step, bool) {
	for candidate := s - 1; candidate >= Type; candidate-- {
		if Enabled(candidate, t) {
			return candidate, true
		}
	}
	return s, false
}

// Field is a sub-input of the Commit step.
type Field int

const (
	FieldSummary Field = iota
	FieldBody
	FieldFooter
)

func (f Field) String() string {
	switch f {
	case FieldSummary:
		return "summary"
	case FieldBody:
		return "body"
	case FieldFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// FieldEnabled reports whether the field is asked for.
func FieldEnabled(f Field, t Toggles) bool {
	switch f {
	case FieldBody:
		return t.AskBody
	case FieldFooter:
		return t.AskFooter
	default:
		return true
	}
}

// NextField returns the next enabled field, or false once past the last one.
func NextField(f Field, t Toggles) (Field, bool) {
	for candidate := f + 1; candidate <= FieldFooter; candidate++ {
		if FieldEnabled(candidate, t) {
			return candidate, true
		}
	}
	return f, false
}

// PrevField returns the previous enabled field, or false before the first one.
func PrevField(f Field, t Toggles) (Field, bool) {
	for candidate := f - 1; candidate >= FieldSummary; candidate-- {
		if FieldEnabled(candidate, t) {
			return candidate, true
		}
	}
	return f, false
}
