package mood

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindbridge/campus-care/backend/internal/service/analytics"
)

// ErrInvalidCheckIn is returned when mood or stress is missing or out of range.
var ErrInvalidCheckIn = errors.New("mood and stress must be between 1 and 5")

const (
	Acknowledgement = "Mood check-in recorded. Thank you for taking care of your mental health!"
	FollowUpPrompt  = "Would you like to try a breathing exercise or chat with our AI assistant?"
)

// CheckIn is a self-reported wellbeing rating on a 1..5 scale.
type CheckIn struct {
	Mood   int    `json:"mood" validate:"required,min=1,max=5"`
	Stress int    `json:"stress" validate:"required,min=1,max=5"`
	Notes  string `json:"notes,omitempty" validate:"max=2000"`
}

// Result acknowledges a check-in.
type Result struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	FollowUp    bool      `json:"followUp"`
	Prompt      string    `json:"prompt,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// NeedsFollowUp reports whether a check-in should offer extra support.
func NeedsFollowUp(c CheckIn) bool {
	return c.Mood <= 2 || c.Stress >= 4
}

// Service records mood check-ins.
type Service struct {
	validate *validator.Validate
	tracker  *analytics.Tracker
	logger   *zap.Logger
	now      func() time.Time
}

// NewService builds a mood service. logger and tracker may be nil.
func NewService(tracker *analytics.Tracker, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		validate: validator.New(),
		tracker:  tracker,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates and tallies a check-in.
func (s *Service) Submit(_ context.Context, c CheckIn) (Result, error) {
	if err := s.validate.Struct(c); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidCheckIn, err)
	}

	followUp := NeedsFollowUp(c)
	result := Result{
		ID:          uuid.NewString(),
		Message:     Acknowledgement,
		FollowUp:    followUp,
		SubmittedAt: s.now().UTC(),
	}
	if followUp {
		result.Prompt = FollowUpPrompt
	}

	s.tracker.MoodCheckedIn(c.Mood, followUp)
	s.logger.Info("mood check-in recorded",
		zap.String("check_in_id", result.ID),
		zap.Int("mood", c.Mood),
		zap.Int("stress", c.Stress),
		zap.Bool("follow_up", followUp),
	)
	return result, nil
}
