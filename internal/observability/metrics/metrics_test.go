package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveSession()
	m.ObserveReply("sleep")
	m.ObserveReply("sleep")
	m.ObserveRejectedSend()
	m.ObserveCanceledReply()
	m.ObserveTransition("forward", false)
	m.ObserveBooking("online")
	m.ObserveMoodCheckIn(true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.chatSessions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.repliesTotal.WithLabelValues("sleep")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.wizardTransition.WithLabelValues("forward", "blocked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("online")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.moodCheckIns.WithLabelValues("true")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveSession()
	m.ObserveReply("general")
	m.ObserveRejectedSend()
	m.ObserveCanceledReply()
	m.ObserveTransition("back", true)
	m.ObserveBooking("phone")
	m.ObserveMoodCheckIn(false)
}
