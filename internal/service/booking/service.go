package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindbridge/campus-care/backend/internal/model/booking"
	"github.com/mindbridge/campus-care/backend/internal/model/counselor"
	"github.com/mindbridge/campus-care/backend/internal/service/analytics"
)

// State is the externally visible snapshot of a wizard.
type State struct {
	ID         string            `json:"id"`
	Step       booking.Step      `json:"step"`
	Selection  booking.Selection `json:"selection"`
	CanAdvance bool              `json:"canAdvance"`
}

// ScheduleUpdate carries the step two fields. Nil or empty fields are left
// untouched.
type ScheduleUpdate struct {
	Date        *booking.Date
	TimeSlot    string
	SessionType counselor.SessionType
}

// Listener receives every confirmed booking.
type Listener func(booking.Confirmation)

// Options tunes a Service.
type Options struct {
	// Location is the time zone "today" is computed in.
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
	Tracker  *analytics.Tracker
}

// Service keeps one wizard per booking id.
type Service struct {
	mu        sync.Mutex
	wizards   map[string]*Wizard
	listeners []Listener

	counselors counselor.Store
	slots      *booking.SlotCatalog
	location   *time.Location
	now        func() time.Time
	logger     *zap.Logger
	tracker    *analytics.Tracker
}

// NewService wires the booking flow to the static catalogs.
func NewService(counselors counselor.Store, slots *booking.SlotCatalog, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		wizards:    make(map[string]*Wizard),
		counselors: counselors,
		slots:      slots,
		location:   loc,
		now:        now,
		logger:     logger,
		tracker:    opts.Tracker,
	}
}

// Subscribe registers a listener for confirmations.
func (s *Service) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Today returns the current calendar day in the configured time zone.
func (s *Service) Today() booking.Date {
	return booking.DateOf(s.now().In(s.location))
}

// Start opens a new wizard.
func (s *Service) Start(_ context.Context) (State, error) {
	id := uuid.NewString()
	w := NewWizard(s.counselors, s.slots, s.Today)

	s.mu.Lock()
	s.wizards[id] = w
	s.mu.Unlock()

	s.logger.Info("booking started", zap.String("booking_id", id))
	return stateOf(id, w), nil
}

// Get returns the state of a wizard.
func (s *Service) Get(_ context.Context, id string) (State, error) {
	var state State
	err := s.with(id, func(w *Wizard) error {
		state = stateOf(id, w)
		return nil
	})
	return state, err
}

// SelectCounselor chooses the counselor on step one.
func (s *Service) SelectCounselor(_ context.Context, id, counselorID string) (State, error) {
	return s.mutate(id, func(w *Wizard) error {
		return w.SelectCounselor(counselorID)
	})
}

// UpdateSchedule applies the set fields of u on step two, all or nothing.
func (s *Service) UpdateSchedule(_ context.Context, id string, u ScheduleUpdate) (State, error) {
	return s.mutate(id, func(w *Wizard) error {
		return w.UpdateSchedule(u.Date, u.TimeSlot, u.SessionType)
	})
}

// SetNotes stores notes on step three.
func (s *Service) SetNotes(_ context.Context, id, notes string) (State, error) {
	return s.mutate(id, func(w *Wizard) error {
		return w.SetNotes(notes)
	})
}

// Advance moves the wizard forward. When the current step is incomplete the
// state is left as is and ErrNotReady is returned alongside it.
func (s *Service) Advance(_ context.Context, id string) (State, error) {
	var moved bool
	state, err := s.mutate(id, func(w *Wizard) error {
		moved = w.Advance()
		return nil
	})
	if err != nil {
		return State{}, err
	}
	s.tracker.WizardMoved("forward", moved)
	if !moved {
		return state, ErrNotReady
	}
	return state, nil
}

// Back moves the wizard one step back.
func (s *Service) Back(_ context.Context, id string) (State, error) {
	var moved bool
	state, err := s.mutate(id, func(w *Wizard) error {
		moved = w.Back()
		return nil
	})
	if err != nil {
		return State{}, err
	}
	s.tracker.WizardMoved("back", moved)
	return state, nil
}

// Summary derives the confirmation view of a wizard.
func (s *Service) Summary(_ context.Context, id string) (booking.Summary, error) {
	var summary booking.Summary
	err := s.with(id, func(w *Wizard) error {
		summary = w.Summary()
		return nil
	})
	return summary, err
}

// Confirm submits the booking, resets the wizard and notifies listeners.
func (s *Service) Confirm(_ context.Context, id string) (booking.Confirmation, error) {
	var (
		summary     booking.Summary
		sessionType counselor.SessionType
	)
	err := s.with(id, func(w *Wizard) error {
		sessionType = w.Selection().SessionType
		var err error
		summary, err = w.Confirm()
		return err
	})
	if err != nil {
		return booking.Confirmation{}, err
	}

	confirmation := booking.Confirmation{
		ID:          id,
		Title:       booking.ConfirmationTitle,
		Description: booking.ConfirmationDescription,
		Summary:     summary,
	}

	s.mu.Lock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	for _, l := range listeners {
		l(confirmation)
	}

	s.tracker.BookingConfirmed(string(sessionType))
	s.logger.Info("booking confirmed",
		zap.String("booking_id", id),
		zap.String("counselor", summary.Counselor),
		zap.String("session_type", string(sessionType)),
	)
	return confirmation, nil
}

// Cancel resets the wizard to its initial state.
func (s *Service) Cancel(_ context.Context, id string) (State, error) {
	return s.mutate(id, func(w *Wizard) error {
		w.Cancel()
		return nil
	})
}

func (s *Service) with(id string, fn func(*Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[id]
	if !ok {
		return ErrBookingNotFound
	}
	return fn(w)
}

func (s *Service) mutate(id string, fn func(*Wizard) error) (State, error) {
	var state State
	err := s.with(id, func(w *Wizard) error {
		if err := fn(w); err != nil {
			return err
		}
		state = stateOf(id, w)
		return nil
	})
	if err != nil {
		return State{}, fmt.Errorf("booking %s: %w", id, err)
	}
	return state, nil
}

func stateOf(id string, w *Wizard) State {
	return State{
		ID:         id,
		Step:       w.Step(),
		Selection:  w.Selection(),
		CanAdvance: w.CanAdvance(),
	}
}
