package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain/core"
)

func TestRecordAndList(t *testing.T) {
	svc := New(core.FixedClock{At: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)})
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, "hr", "employee.create", "employee", "andi", "req-1", "127.0.0.1", nil, map[string]string{"name": "Andi"}))
	require.NoError(t, svc.Record(ctx, "dedi", "leave.approve", "leave_request", "l1", "req-2", "127.0.0.1", map[string]string{"status": "Pending"}, map[string]string{"status": "Approved"}))
	require.NoError(t, svc.Record(ctx, "hr", "employee.update", "employee", "andi", "req-3", "127.0.0.1", nil, nil))

	events, total := svc.List(ctx, Filter{}, false, 10, 0)
	require.Equal(t, 3, total)
	assert.Equal(t, "employee.update", events[0].Action)
	assert.Nil(t, events[1].After)

	events, total = svc.List(ctx, Filter{EntityType: "employee"}, true, 1, 1)
	assert.Equal(t, 2, total)
	require.Len(t, events, 1)
	assert.JSONEq(t, `{"name":"Andi"}`, string(events[0].After))

	events, _ = svc.List(ctx, Filter{ActorUser: "dedi"}, true, 0, 0)
	require.Len(t, events, 1)
	assert.JSONEq(t, `{"status":"Pending"}`, string(events[0].Before))

	events, total = svc.List(ctx, Filter{}, false, 10, 5)
	assert.Empty(t, events)
	assert.Equal(t, 3, total)
}
