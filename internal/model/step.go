package model

// StepStatus is the progress state of one step in the booking flow.
type StepStatus string

const (
	// StepCompleted marks a step the user has already passed.
	StepCompleted StepStatus = "completed"
	// StepActive marks the step currently shown.
	StepActive StepStatus = "active"
	// StepPending marks a step that has not been reached.
	StepPending StepStatus = "pending"
)

// Step is a single indicator in the booking progress strip.
type Step struct {
	Label  string
	Icon   string
	Status StepStatus
}

// BookingSteps returns the six steps of the booking flow with
// "Select Skip" as the current one.
func BookingSteps() []Step {
	return []Step{
		{Label: "Postcode", Icon: "⌖", Status: StepCompleted},
		{Label: "Waste Type", Icon: "♲", Status: StepCompleted},
		{Label: "Select Skip", Icon: "▣", Status: StepActive},
		{Label: "Permit Check", Icon: "✎", Status: StepPending},
		{Label: "Choose Date", Icon: "◷", Status: StepPending},
		{Label: "Payment", Icon: "£", Status: StepPending},
	}
}
