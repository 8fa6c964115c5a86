package analytics

import (
	"sync"

	"github.com/mindbridge/campus-care/backend/internal/observability/metrics"
)

// Snapshot is the admin dashboard view of platform activity since startup.
type Snapshot struct {
	ChatSessions      int            `json:"chatSessions"`
	UserMessages      int            `json:"userMessages"`
	RepliesByCategory map[string]int `json:"repliesByCategory"`
	BookingsConfirmed int            `json:"bookingsConfirmed"`
	MoodCheckIns      int            `json:"moodCheckIns"`
	AverageMood       float64        `json:"averageMood"`
	SupportFollowUps  int            `json:"supportFollowUps"`
}

// Tracker tallies activity in memory and mirrors it to Prometheus. A nil
// Tracker discards everything.
type Tracker struct {
	mu       sync.Mutex
	metrics  *metrics.Metrics
	sessions int
	messages int
	replies  map[string]int
	bookings int
	checkIns int
	moodSum  int
	followUp int
}

// NewTracker creates a tracker; m may be nil.
func NewTracker(m *metrics.Metrics) *Tracker {
	return &Tracker{metrics: m, replies: make(map[string]int)}
}

// SessionStarted counts a newly created chat session.
func (t *Tracker) SessionStarted() {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.sessions++
	t.mu.Unlock()
	t.metrics.ObserveSession()
}

// MessageReceived counts an accepted user message.
func (t *Tracker) MessageReceived() {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.messages++
	t.mu.Unlock()
}

// ReplyDelivered counts a bot reply under its response category.
func (t *Tracker) ReplyDelivered(category string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.replies[category]++
	t.mu.Unlock()
	t.metrics.ObserveReply(category)
}

// SendRejected records a send refused because a reply was still pending.
func (t *Tracker) SendRejected() {
	if t == nil {
		return
	}
	t.metrics.ObserveRejectedSend()
}

// ReplyCanceled records a pending reply dropped before delivery.
func (t *Tracker) ReplyCanceled() {
	if t == nil {
		return
	}
	t.metrics.ObserveCanceledReply()
}

// WizardMoved records a booking step transition attempt in direction and
// whether it was allowed.
func (t *Tracker) WizardMoved(direction string, ok bool) {
	if t == nil {
		return
	}
	t.metrics.ObserveTransition(direction, ok)
}

// BookingConfirmed counts a confirmed appointment by session type.
func (t *Tracker) BookingConfirmed(sessionType string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.bookings++
	t.mu.Unlock()
	t.metrics.ObserveBooking(sessionType)
}

// MoodCheckedIn adds a check-in score to the running average. followUp
// marks check-ins low enough to be offered extra support.
func (t *Tracker) MoodCheckedIn(mood int, followUp bool) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.checkIns++
	t.moodSum += mood
	if followUp {
		t.followUp++
	}
	t.mu.Unlock()
	t.metrics.ObserveMoodCheckIn(followUp)
}

// Snapshot returns a copy of the current tallies.
func (t *Tracker) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{RepliesByCategory: map[string]int{}}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	replies := make(map[string]int, len(t.replies))
	for k, v := range t.replies {
		replies[k] = v
	}

	var avg float64
	if t.checkIns > 0 {
		avg = float64(t.moodSum) / float64(t.checkIns)
	}

	return Snapshot{
		ChatSessions:      t.sessions,
		UserMessages:      t.messages,
		RepliesByCategory: replies,
		BookingsConfirmed: t.bookings,
		MoodCheckIns:      t.checkIns,
		AverageMood:       avg,
		SupportFollowUps:  t.followUp,
	}
}
