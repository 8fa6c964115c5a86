package booking

import "github.com/mindbridge/campus-care/backend/internal/model/counselor"

// Step is the wizard page the user is on.
type Step int

const (
	StepCounselor Step = 1
	StepSchedule  Step = 2
	StepDetails   Step = 3
)

// Selection accumulates the user's choices across the wizard.
type Selection struct {
	CounselorID string                `json:"counselorId,omitempty"`
	Date        *Date                 `json:"date,omitempty"`
	TimeSlotID  string                `json:"timeSlotId,omitempty"`
	SessionType counselor.SessionType `json:"sessionType,omitempty"`
	Notes       string                `json:"notes"`
}

// Summary is the confirmation view of a selection, derived from the catalogs.
type Summary struct {
	Counselor   string `json:"counselor"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	SessionType string `json:"sessionType"`
	Duration    string `json:"duration"`
	Cost        string `json:"cost"`
	Notes       string `json:"notes,omitempty"`
}

// Confirmation is announced once a booking is submitted.
type Confirmation struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Summary     Summary `json:"summary"`
}

const (
	SessionDuration = "50 minutes"
	SessionCost     = "Free for Students"

	ConfirmationTitle       = "Appointment Booked Successfully!"
	ConfirmationDescription = "You'll receive a confirmation email shortly. The counselor will contact you 15 minutes before your session."
)
