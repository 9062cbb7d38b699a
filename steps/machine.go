package steps

import "github.com/BrianJOC/coco/state"

// Validity reads the recorded status of a step key.
type Validity interface {
	StepStatus(key string) state.StepStatus
}

// Outcome describes what a navigation request did.
type Outcome int

const (
	// Stay means there was nowhere to go.
	Stay Outcome = iota
	// Blocked means the guard refused the move.
	Blocked
	// Moved means the cursor now points at a different step.
	Moved
	// Advance means the last step was confirmed and the builder is done.
	Advance
)

func (o Outcome) String() string {
	switch o {
	case Stay:
		return "stay"
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	case Advance:
		return "advance"
	default:
		return "unknown"
	}
}

// Machine tracks the current step.
type Machine struct {
	current Step
	toggles Toggles
}

// NewMachine starts at Type.
func NewMachine(t Toggles) *Machine {
	return &Machine{current: Type, toggles: t}
}

func (m *Machine) Current() Step {
	return m.current
}

func (m *Machine) Toggles() Toggles {
	return m.toggles
}

// Next moves forward when the current or target step is valid. From the last
// step it reports Advance once that step is valid.
func (m *Machine) Next(v Validity) Outcome {
	target, ok := Next(m.current, m.toggles)
	if !ok {
		if isValid(v, m.current) {
			return Advance
		}
		return Blocked
	}
	return m.moveTo(v, target)
}

// Prev moves backward under the same guard as Next.
func (m *Machine) Prev(v Validity) Outcome {
	target, ok := Prev(m.current, m.toggles)
	if !ok {
		return Stay
	}
	return m.moveTo(v, target)
}

// Restart returns to Type without touching recorded validity.
func (m *Machine) Restart() Outcome {
	if m.current == Type {
		return Stay
	}
	m.current = Type
	return Moved
}

func (m *Machine) moveTo(v Validity, target Step) Outcome {
	if !isValid(v, m.current) && !isValid(v, target) {
		return Blocked
	}
	m.current = target
	return Moved
}

func isValid(v Validity, s Step) bool {
	if v == nil {
		return false
	}
	return v.StepStatus(s.Key()) == state.Valid
}
