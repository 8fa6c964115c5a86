package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters for the chat, booking and check-in flows.
type Metrics struct {
	chatSessions     prometheus.Counter
	repliesTotal     *prometheus.CounterVec
	rejectedSends    prometheus.Counter
	canceledReplies  prometheus.Counter
	wizardTransition *prometheus.CounterVec
	bookingsTotal    *prometheus.CounterVec
	moodCheckIns     *prometheus.CounterVec
}

// New registers the collectors on reg, or on the default registerer when nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		chatSessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mindbridge",
			Subsystem: "chat",
			Name:      "sessions_total",
			Help:      "Conversations started",
		}),
		repliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindbridge",
			Subsystem: "chat",
			Name:      "replies_total",
			Help:      "Bot replies delivered by reply category",
		}, []string{"category"}),
		rejectedSends: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mindbridge",
			Subsystem: "chat",
			Name:      "rejected_sends_total",
			Help:      "Messages rejected because a reply was still pending",
		}),
		canceledReplies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mindbridge",
			Subsystem: "chat",
			Name:      "canceled_replies_total",
			Help:      "Pending replies canceled before delivery",
		}),
		wizardTransition: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindbridge",
			Subsystem: "booking",
			Name:      "wizard_transitions_total",
			Help:      "Booking wizard navigation attempts",
		}, []string{"direction", "outcome"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindbridge",
			Subsystem: "booking",
			Name:      "confirmed_total",
			Help:      "Bookings confirmed by session type",
		}, []string{"session_type"}),
		moodCheckIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindbridge",
			Subsystem: "mood",
			Name:      "checkins_total",
			Help:      "Mood check-ins by whether a follow-up was offered",
		}, []string{"follow_up"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.chatSessions,
		m.repliesTotal,
		m.rejectedSends,
		m.canceledReplies,
		m.wizardTransition,
		m.bookingsTotal,
		m.moodCheckIns,
	)
	return m
}

func (m *Metrics) ObserveSession() {
	if m == nil {
		return
	}
	m.chatSessions.Inc()
}

func (m *Metrics) ObserveReply(category string) {
	if m == nil {
		return
	}
	m.repliesTotal.WithLabelValues(category).Inc()
}

func (m *Metrics) ObserveRejectedSend() {
	if m == nil {
		return
	}
	m.rejectedSends.Inc()
}

func (m *Metrics) ObserveCanceledReply() {
	if m == nil {
		return
	}
	m.canceledReplies.Inc()
}

func (m *Metrics) ObserveTransition(direction string, ok bool) {
	if m == nil {
		return
	}
	outcome := "blocked"
	if ok {
		outcome = "moved"
	}
	m.wizardTransition.WithLabelValues(direction, outcome).Inc()
}

func (m *Metrics) ObserveBooking(sessionType string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(sessionType).Inc()
}

func (m *Metrics) ObserveMoodCheckIn(followUp bool) {
	if m == nil {
		return
	}
	label := "false"
	if followUp {
		label = "true"
	}
	m.moodCheckIns.WithLabelValues(label).Inc()
}
