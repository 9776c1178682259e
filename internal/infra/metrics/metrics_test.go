package metrics

import (
	"testing"
	"time"

	"relay/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveChunk(t *testing.T) {
	m := New()

	m.ObserveChunk("expo", 10*time.Millisecond, nil)
	m.ObserveChunk("expo", 10*time.Millisecond, nil)
	m.ObserveChunk("expo", time.Second, errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.chunks.WithLabelValues("expo", resultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.chunks.WithLabelValues("expo", resultFailure)), 0)
}

func TestMetrics_ObserveTickets(t *testing.T) {
	m := New()

	m.ObserveTickets("expo", []entity.Ticket{
		{Status: entity.TicketStatusOK, ID: "a"},
		{Status: entity.TicketStatusError, Message: "gone"},
		{Status: entity.TicketStatusOK, ID: "b"},
	})

	assert.InDelta(t, 2, testutil.ToFloat64(m.tickets.WithLabelValues("expo", entity.TicketStatusOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.tickets.WithLabelValues("expo", entity.TicketStatusError)), 0)
}

func TestMetrics_TokenRegistered(t *testing.T) {
	m := New()

	m.TokenRegistered(1)
	m.TokenRegistered(1)

	assert.InDelta(t, 2, testutil.ToFloat64(m.registrations), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.registeredTokens), 0)
}
