package booking

import (
	"errors"

	"github.com/mindbridge/campus-care/backend/internal/model/booking"
	"github.com/mindbridge/campus-care/backend/internal/model/counselor"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrCounselorNotFound  = errors.New("counselor not found")
	ErrDateInPast         = errors.New("date is before today")
	ErrSlotUnavailable    = errors.New("time slot is not available")
	ErrInvalidSessionType = errors.New("unknown session type")
	ErrWrongStep          = errors.New("selection is not editable at the current step")
	ErrNotReady           = errors.New("required selections are missing")
)

// Wizard is the three step appointment flow. Forward moves are gated on the
// selections of the current step; backward moves never clear data.
//
// A Wizard is not safe for concurrent use.
type Wizard struct {
	step      booking.Step
	selection booking.Selection

	counselors counselor.Store
	slots      *booking.SlotCatalog
	today      func() booking.Date
}

// NewWizard returns a wizard at step one with an empty selection. today
// supplies the current calendar day used to reject past dates.
func NewWizard(counselors counselor.Store, slots *booking.SlotCatalog, today func() booking.Date) *Wizard {
	return &Wizard{
		step:       booking.StepCounselor,
		counselors: counselors,
		slots:      slots,
		today:      today,
	}
}

// Step returns the current step.
func (w *Wizard) Step() booking.Step {
	return w.step
}

// Selection returns a copy of the current selection.
func (w *Wizard) Selection() booking.Selection {
	out := w.selection
	if w.selection.Date != nil {
		d := *w.selection.Date
		out.Date = &d
	}
	return out
}

// SelectCounselor replaces the selected counselor.
func (w *Wizard) SelectCounselor(id string) error {
	if w.step != booking.StepCounselor {
		return ErrWrongStep
	}
	if _, ok := w.counselors.FindByID(id); !ok {
		return ErrCounselorNotFound
	}
	w.selection.CounselorID = id
	return nil
}

// SelectDate sets the appointment day. Days before today are refused.
func (w *Wizard) SelectDate(d booking.Date) error {
	if w.step != booking.StepSchedule {
		return ErrWrongStep
	}
	if d.Before(w.today()) {
		return ErrDateInPast
	}
	w.selection.Date = &d
	return nil
}

// SelectTime sets the time slot by id or label. Unavailable slots are refused.
func (w *Wizard) SelectTime(ref string) error {
	if w.step != booking.StepSchedule {
		return ErrWrongStep
	}
	slot, ok := w.slots.Resolve(ref)
	if !ok || !slot.Available {
		return ErrSlotUnavailable
	}
	w.selection.TimeSlotID = slot.ID
	return nil
}

// SelectSessionType sets the session modality.
func (w *Wizard) SelectSessionType(t counselor.SessionType) error {
	if w.step != booking.StepSchedule {
		return ErrWrongStep
	}
	if !t.Valid() {
		return ErrInvalidSessionType
	}
	w.selection.SessionType = t
	return nil
}

// UpdateSchedule applies the given step two fields together. Nil or empty
// arguments are left untouched. If any field is refused none are applied.
func (w *Wizard) UpdateSchedule(date *booking.Date, slot string, sessionType counselor.SessionType) error {
	trial := *w
	if date != nil {
		if err := trial.SelectDate(*date); err != nil {
			return err
		}
	}
	if slot != "" {
		if err := trial.SelectTime(slot); err != nil {
			return err
		}
	}
	if sessionType != "" {
		if err := trial.SelectSessionType(sessionType); err != nil {
			return err
		}
	}
	*w = trial
	return nil
}

// SetNotes stores the optional free text shared with the counselor.
func (w *Wizard) SetNotes(notes string) error {
	if w.step != booking.StepDetails {
		return ErrWrongStep
	}
	w.selection.Notes = notes
	return nil
}

// CanAdvance reports whether the current step is complete.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case booking.StepCounselor:
		return w.selection.CounselorID != ""
	case booking.StepSchedule:
		// a date picked yesterday may have gone stale overnight
		return w.selection.Date != nil &&
			!w.selection.Date.Before(w.today()) &&
			w.selection.TimeSlotID != "" &&
			w.selection.SessionType != ""
	default:
		return false
	}
}

// Advance moves to the next step. It is a no-op returning false when the
// current step is incomplete.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	w.step++
	return true
}

// Back moves to the previous step keeping every selection. It returns false
// at step one.
func (w *Wizard) Back() bool {
	if w.step == booking.StepCounselor {
		return false
	}
	w.step--
	return true
}

// Summary derives the display fields of the current selection from the
// catalogs. Unset fields are left blank.
func (w *Wizard) Summary() booking.Summary {
	summary := booking.Summary{
		Duration: booking.SessionDuration,
		Cost:     booking.SessionCost,
		Notes:    w.selection.Notes,
	}
	if c, ok := w.counselors.FindByID(w.selection.CounselorID); ok {
		summary.Counselor = c.Name
	}
	if w.selection.Date != nil {
		summary.Date = w.selection.Date.Display()
	}
	if w.selection.TimeSlotID != "" {
		if slot, ok := w.slots.Resolve(w.selection.TimeSlotID); ok {
			summary.Time = slot.Time
		}
	}
	if w.selection.SessionType != "" {
		summary.SessionType = w.selection.SessionType.Label()
	}
	return summary
}

// Confirm submits the booking from the details step and resets the wizard.
// A date that has gone stale since it was picked is refused with
// ErrDateInPast and the wizard is left as is.
func (w *Wizard) Confirm() (booking.Summary, error) {
	if w.step != booking.StepDetails {
		return booking.Summary{}, ErrNotReady
	}
	if w.selection.Date == nil || w.selection.Date.Before(w.today()) {
		return booking.Summary{}, ErrDateInPast
	}
	summary := w.Summary()
	w.Cancel()
	return summary, nil
}

// Cancel returns the wizard to its initial state.
func (w *Wizard) Cancel() {
	w.step = booking.StepCounselor
	w.selection = booking.Selection{}
}
