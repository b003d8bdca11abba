package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/pkg/logger"
)

type stubProductionRepo struct{ days []time.Time }

func (r *stubProductionRepo) Create(context.Context, *entity.Production) error { return nil }
func (r *stubProductionRepo) Update(context.Context, *entity.Production) error { return nil }
func (r *stubProductionRepo) List(context.Context, *dates.Window) ([]*entity.Production, error) {
	return nil, nil
}
func (r *stubProductionRepo) GetByDay(context.Context, dates.Window) (*entity.Production, error) {
	return nil, nil
}
func (r *stubProductionRepo) ExistsInWindow(_ context.Context, w dates.Window) (bool, error) {
	for _, d := range r.days {
		if w.Contains(d) {
			return true, nil
		}
	}
	return false, nil
}

type stubOrderRepo struct{ days []time.Time }

func (r *stubOrderRepo) Create(context.Context, *entity.Order) error { return nil }
func (r *stubOrderRepo) List(context.Context, *dates.Window) ([]*entity.Order, error) {
	return nil, nil
}
func (r *stubOrderRepo) ExistsInWindow(_ context.Context, w dates.Window) (bool, error) {
	for _, d := range r.days {
		if w.Contains(d) {
			return true, nil
		}
	}
	return false, nil
}

type stubNotificationRepo struct{ items []*entity.Notification }

func (r *stubNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.items = append(r.items, n)
	return nil
}
func (r *stubNotificationRepo) GetByID(context.Context, string) (*entity.Notification, error) {
	return nil, nil
}
func (r *stubNotificationRepo) Update(context.Context, *entity.Notification) error { return nil }
func (r *stubNotificationRepo) List(context.Context) ([]*entity.Notification, error) {
	return r.items, nil
}
func (r *stubNotificationRepo) FindPending(_ context.Context, typ string, w dates.Window) (*entity.Notification, error) {
	for _, n := range r.items {
		if n.Type == typ && n.Pending() && w.Contains(n.Date) {
			return n, nil
		}
	}
	return nil, nil
}
func (r *stubNotificationRepo) CompletePending(context.Context, string, dates.Window) error {
	return nil
}
func (r *stubNotificationRepo) CompleteAllPending(context.Context, string) error { return nil }

var checkNow = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func newTestCheck(prod *stubProductionRepo, ord *stubOrderRepo, notif *stubNotificationRepo) *DailyCheck {
	c := NewDailyCheck(prod, ord, notif, logger.New(logger.Config{Env: "test"}), 18, time.UTC)
	c.now = func() time.Time { return checkNow }
	return c
}

func countType(items []*entity.Notification, typ string) int {
	n := 0
	for _, item := range items {
		if item.Type == typ {
			n++
		}
	}
	return n
}

func TestRunOnce_RaisesBothWhenNothingEntered(t *testing.T) {
	notif := &stubNotificationRepo{}
	check := newTestCheck(&stubProductionRepo{}, &stubOrderRepo{}, notif)

	require.NoError(t, check.RunOnce(context.Background()))

	assert.Equal(t, 1, countType(notif.items, entity.NotificationMissingProduction))
	assert.Equal(t, 1, countType(notif.items, entity.NotificationMissingOrder))
	for _, n := range notif.items {
		assert.Equal(t, entity.NotificationPending, n.Status)
		assert.True(t, dates.DayOf(checkNow).Contains(n.Date))
	}
}

func TestRunOnce_SkipsWhenDataExists(t *testing.T) {
	notif := &stubNotificationRepo{}
	check := newTestCheck(
		&stubProductionRepo{days: []time.Time{checkNow.Add(-2 * time.Hour)}},
		&stubOrderRepo{},
		notif,
	)

	require.NoError(t, check.RunOnce(context.Background()))

	assert.Equal(t, 0, countType(notif.items, entity.NotificationMissingProduction))
	assert.Equal(t, 1, countType(notif.items, entity.NotificationMissingOrder))
}

func TestRunOnce_IsIdempotentWithinTheDay(t *testing.T) {
	notif := &stubNotificationRepo{}
	check := newTestCheck(&stubProductionRepo{}, &stubOrderRepo{}, notif)

	require.NoError(t, check.RunOnce(context.Background()))
	require.NoError(t, check.RunOnce(context.Background()))

	assert.Equal(t, 1, countType(notif.items, entity.NotificationMissingProduction))
	assert.Equal(t, 1, countType(notif.items, entity.NotificationMissingOrder))
}

func TestRunOnce_MessagesMatchContract(t *testing.T) {
	notif := &stubNotificationRepo{}
	check := newTestCheck(&stubProductionRepo{}, &stubOrderRepo{}, notif)

	require.NoError(t, check.RunOnce(context.Background()))

	var messages []string
	for _, n := range notif.items {
		messages = append(messages, n.Message)
	}
	assert.Contains(t, messages, "Daily Production Not Entered")
	assert.Contains(t, messages, "No Orders Entered Today")
}

func TestNextFiring(t *testing.T) {
	check := newTestCheck(&stubProductionRepo{}, &stubOrderRepo{}, &stubNotificationRepo{})

	// 18:00 has already passed at exactly 18:00, so the next firing is tomorrow.
	next := check.nextFiring()
	assert.Equal(t, time.Date(2026, 3, 11, 18, 0, 0, 0, time.UTC), next)

	check.now = func() time.Time { return time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC) }
	next = check.nextFiring()
	assert.Equal(t, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), next)
}
