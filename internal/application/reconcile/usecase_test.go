package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/domain"
	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

// memStore is shared in-memory state for the fake repositories. The fake
// TxRunner snapshots it before each run and restores it when the function
// returns an error, mirroring a rolled-back transaction.
type memStore struct {
	productions   []*entity.Production
	orders        []*entity.Order
	notifications []*entity.Notification
	settings      *entity.Settings
}

func (s *memStore) snapshot() *memStore {
	c := &memStore{}
	for _, p := range s.productions {
		cp := *p
		c.productions = append(c.productions, &cp)
	}
	for _, o := range s.orders {
		co := *o
		c.orders = append(c.orders, &co)
	}
	for _, n := range s.notifications {
		cn := *n
		c.notifications = append(c.notifications, &cn)
	}
	if s.settings != nil {
		cs := *s.settings
		c.settings = &cs
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	s.productions = from.productions
	s.orders = from.orders
	s.notifications = from.notifications
	s.settings = from.settings
}

func (s *memStore) pendingOfType(typ string) []*entity.Notification {
	var out []*entity.Notification
	for _, n := range s.notifications {
		if n.Type == typ && n.Pending() {
			out = append(out, n)
		}
	}
	return out
}

type fakeProductionRepo struct{ s *memStore }

func (r *fakeProductionRepo) Create(_ context.Context, p *entity.Production) error {
	r.s.productions = append(r.s.productions, p)
	return nil
}

func (r *fakeProductionRepo) Update(_ context.Context, p *entity.Production) error {
	for i, existing := range r.s.productions {
		if existing.ID == p.ID {
			r.s.productions[i] = p
			return nil
		}
	}
	return nil
}

func (r *fakeProductionRepo) List(_ context.Context, w *dates.Window) ([]*entity.Production, error) {
	if w == nil {
		return r.s.productions, nil
	}
	var out []*entity.Production
	for _, p := range r.s.productions {
		if w.Contains(p.Date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductionRepo) GetByDay(_ context.Context, w dates.Window) (*entity.Production, error) {
	for _, p := range r.s.productions {
		if w.Contains(p.Date) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductionRepo) ExistsInWindow(_ context.Context, w dates.Window) (bool, error) {
	p, _ := r.GetByDay(context.Background(), w)
	return p != nil, nil
}

type fakeOrderRepo struct{ s *memStore }

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.orders = append(r.s.orders, o)
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, w *dates.Window) ([]*entity.Order, error) {
	if w == nil {
		return r.s.orders, nil
	}
	var out []*entity.Order
	for _, o := range r.s.orders {
		if w.Contains(o.Date) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ExistsInWindow(_ context.Context, w dates.Window) (bool, error) {
	for _, o := range r.s.orders {
		if w.Contains(o.Date) {
			return true, nil
		}
	}
	return false, nil
}

type fakeSettingsRepo struct{ s *memStore }

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	return r.s.settings, nil
}

func (r *fakeSettingsRepo) GetForUpdate(ctx context.Context) (*entity.Settings, error) {
	return r.Get(ctx)
}

func (r *fakeSettingsRepo) Create(_ context.Context, s *entity.Settings) error {
	r.s.settings = s
	return nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, s *entity.Settings) error {
	r.s.settings = s
	return nil
}

type fakeNotificationRepo struct{ s *memStore }

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.s.notifications = append(r.s.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	for _, n := range r.s.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, nil
}

func (r *fakeNotificationRepo) Update(_ context.Context, n *entity.Notification) error {
	for i, existing := range r.s.notifications {
		if existing.ID == n.ID {
			r.s.notifications[i] = n
			return nil
		}
	}
	return nil
}

func (r *fakeNotificationRepo) List(_ context.Context) ([]*entity.Notification, error) {
	return r.s.notifications, nil
}

func (r *fakeNotificationRepo) FindPending(_ context.Context, typ string, w dates.Window) (*entity.Notification, error) {
	for _, n := range r.s.notifications {
		if n.Type == typ && n.Pending() && w.Contains(n.Date) {
			return n, nil
		}
	}
	return nil, nil
}

func (r *fakeNotificationRepo) CompletePending(_ context.Context, typ string, w dates.Window) error {
	for _, n := range r.s.notifications {
		if n.Type == typ && n.Pending() && w.Contains(n.Date) {
			n.Status = entity.NotificationCompleted
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CompleteAllPending(_ context.Context, typ string) error {
	for _, n := range r.s.notifications {
		if n.Type == typ && n.Pending() {
			n.Status = entity.NotificationCompleted
		}
	}
	return nil
}

type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.ProductionRepository,
	repository.OrderRepository,
	repository.SettingsRepository,
	repository.NotificationRepository,
) error) error {
	before := r.s.snapshot()
	err := fn(
		&fakeProductionRepo{s: r.s},
		&fakeOrderRepo{s: r.s},
		&fakeSettingsRepo{s: r.s},
		&fakeNotificationRepo{s: r.s},
	)
	if err != nil {
		r.s.restore(before)
	}
	return err
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestReconciler(s *memStore) *UseCase {
	uc := NewUseCase(&fakeTxRunner{s: s}, time.UTC)
	uc.now = func() time.Time { return testNow }
	return uc
}

func seedSettings(s *memStore, inventory, production int64) {
	s.settings = &entity.Settings{
		ID:                  1,
		OwnerSecretPassword: "admin",
		LowStockThreshold:   100,
		TotalInventory:      inventory,
		TotalProduction:     production,
		CreatedAt:           testNow,
		UpdatedAt:           testNow,
	}
}

func TestRecordProduction_UpdatesRunningTotals(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 0, 0)
	uc := newTestReconciler(s)

	out, err := uc.RecordProduction(context.Background(), "sup-1", dto.RecordProductionRequest{Quantity: 150})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.EqualValues(t, 150, out.Quantity)
	assert.EqualValues(t, 150, s.settings.TotalInventory)
	assert.EqualValues(t, 150, s.settings.TotalProduction)
	require.Len(t, s.productions, 1)
	assert.Equal(t, "sup-1", s.productions[0].SupervisorID)
}

func TestRecordProduction_RejectsNonPositiveQuantity(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 0, 0)
	uc := newTestReconciler(s)

	_, err := uc.RecordProduction(context.Background(), "sup-1", dto.RecordProductionRequest{Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.productions)
}

func TestRecordProduction_LazilyCreatesSettingsDefaults(t *testing.T) {
	s := &memStore{} // no settings row yet
	uc := newTestReconciler(s)

	_, err := uc.RecordProduction(context.Background(), "sup-1", dto.RecordProductionRequest{Quantity: 10})
	require.NoError(t, err)

	require.NotNil(t, s.settings)
	assert.Equal(t, "admin", s.settings.OwnerSecretPassword)
	assert.EqualValues(t, entity.DefaultLowStockThreshold, s.settings.LowStockThreshold)
	assert.EqualValues(t, 10, s.settings.TotalInventory)
}

func TestRecordProduction_CompletesMissingProductionForTheDay(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 0, 0)
	today := dates.DayOf(testNow)
	s.notifications = append(s.notifications, &entity.Notification{
		ID: "n-1", Date: today.Start,
		Type:   entity.NotificationMissingProduction,
		Status: entity.NotificationPending,
	})
	uc := newTestReconciler(s)

	_, err := uc.RecordProduction(context.Background(), "sup-1", dto.RecordProductionRequest{Quantity: 50})
	require.NoError(t, err)

	assert.Empty(t, s.pendingOfType(entity.NotificationMissingProduction))
}

func TestRecordProduction_ClearsLowStockAboveThreshold(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 20, 20)
	s.notifications = append(s.notifications, &entity.Notification{
		ID: "n-1", Date: dates.DayOf(testNow).Start,
		Type:   entity.NotificationLowStock,
		Status: entity.NotificationPending,
	})
	uc := newTestReconciler(s)

	// 20 + 90 = 110 > threshold 100: the warning must clear.
	_, err := uc.RecordProduction(context.Background(), "sup-1", dto.RecordProductionRequest{Quantity: 90})
	require.NoError(t, err)

	assert.Empty(t, s.pendingOfType(entity.NotificationLowStock))
}

func TestRecordProduction_KeepsLowStockAtOrBelowThreshold(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 20, 20)
	s.notifications = append(s.notifications, &entity.Notification{
		ID: "n-1", Date: dates.DayOf(testNow).Start,
		Type:   entity.NotificationLowStock,
		Status: entity.NotificationPending,
	})
	uc := newTestReconciler(s)

	// 20 + 80 = 100, which is not strictly above the threshold.
	_, err := uc.RecordProduction(context.Background(), "sup-1", dto.RecordProductionRequest{Quantity: 80})
	require.NoError(t, err)

	assert.Len(t, s.pendingOfType(entity.NotificationLowStock), 1)
}

func TestRecordProduction_PastDayRequiresSecret(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 0, 0)
	uc := newTestReconciler(s)
	yesterday := testNow.AddDate(0, 0, -1).Format(dates.ISODate)

	_, err := uc.RecordProduction(context.Background(), "sup-1", dto.RecordProductionRequest{
		Date: yesterday, Quantity: 50, SecretPassword: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSecret)
	assert.Empty(t, s.productions)
	assert.EqualValues(t, 0, s.settings.TotalInventory)

	_, err = uc.RecordProduction(context.Background(), "sup-1", dto.RecordProductionRequest{
		Date: yesterday, Quantity: 50, SecretPassword: "admin",
	})
	require.NoError(t, err)
	assert.Len(t, s.productions, 1)
}

func TestRecordProduction_TodayNeedsNoSecret(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 0, 0)
	uc := newTestReconciler(s)

	_, err := uc.RecordProduction(context.Background(), "sup-1", dto.RecordProductionRequest{
		Date: testNow.Format(dates.ISODate), Quantity: 50,
	})
	assert.NoError(t, err)
}

func TestPlaceOrder_RejectsInsufficientStock(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 40, 40)
	uc := newTestReconciler(s)

	_, err := uc.PlaceOrder(context.Background(), "sup-1", dto.PlaceOrderRequest{
		CustomerName: "ACME", Quantity: 50,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rolled back: no order stored, inventory untouched.
	assert.Empty(t, s.orders)
	assert.EqualValues(t, 40, s.settings.TotalInventory)
}

func TestPlaceOrder_AllowsExactlyAvailableStock(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 40, 40)
	uc := newTestReconciler(s)

	out, err := uc.PlaceOrder(context.Background(), "sup-1", dto.PlaceOrderRequest{
		CustomerName: "ACME", Quantity: 40,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 40, out.Quantity)
	assert.EqualValues(t, 0, s.settings.TotalInventory)
}

func TestPlaceOrder_RaisesLowStockWarningOnce(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 130, 130)
	uc := newTestReconciler(s)

	_, err := uc.PlaceOrder(context.Background(), "sup-1", dto.PlaceOrderRequest{
		CustomerName: "ACME", Quantity: 40, Amount: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	warnings := s.pendingOfType(entity.NotificationLowStock)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "90")

	// A second breach the same day must not duplicate the warning.
	_, err = uc.PlaceOrder(context.Background(), "sup-1", dto.PlaceOrderRequest{
		CustomerName: "ACME", Quantity: 10,
	})
	require.NoError(t, err)
	assert.Len(t, s.pendingOfType(entity.NotificationLowStock), 1)
}

func TestPlaceOrder_NoWarningAboveThreshold(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 300, 300)
	uc := newTestReconciler(s)

	_, err := uc.PlaceOrder(context.Background(), "sup-1", dto.PlaceOrderRequest{
		CustomerName: "ACME", Quantity: 40,
	})
	require.NoError(t, err)
	assert.Empty(t, s.pendingOfType(entity.NotificationLowStock))
}

func TestPlaceOrder_CompletesMissingOrderForTheDay(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 500, 500)
	s.notifications = append(s.notifications, &entity.Notification{
		ID: "n-1", Date: dates.DayOf(testNow).Start,
		Type:   entity.NotificationMissingOrder,
		Status: entity.NotificationPending,
	})
	uc := newTestReconciler(s)

	_, err := uc.PlaceOrder(context.Background(), "sup-1", dto.PlaceOrderRequest{
		CustomerName: "ACME", Quantity: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, s.pendingOfType(entity.NotificationMissingOrder))
}

func TestSyncProduction_AppliesDeltaToTotals(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 100, 100)
	today := dates.DayOf(testNow)
	s.productions = append(s.productions, &entity.Production{
		ID: "p-1", Date: today.Start, Quantity: 100, SupervisorID: "sup-1",
	})
	uc := newTestReconciler(s)

	out, err := uc.SyncProduction(context.Background(), "sup-1", dto.SyncProductionRequest{
		Date: testNow.Format(dates.ISODate), Quantity: 130, SecretPassword: "admin",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 130, out.Quantity)
	assert.EqualValues(t, 130, s.settings.TotalInventory)
	assert.EqualValues(t, 130, s.settings.TotalProduction)
	require.Len(t, s.productions, 1)
	assert.EqualValues(t, 130, s.productions[0].Quantity)

	audits := s.pendingOfType(entity.NotificationProductionUpdate)
	require.Len(t, audits, 1)
	assert.Contains(t, audits[0].Message, "corrected from 100 to 130")
}

func TestSyncProduction_NegativeDelta(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 100, 100)
	s.productions = append(s.productions, &entity.Production{
		ID: "p-1", Date: dates.DayOf(testNow).Start, Quantity: 100,
	})
	uc := newTestReconciler(s)

	_, err := uc.SyncProduction(context.Background(), "sup-1", dto.SyncProductionRequest{
		Date: testNow.Format(dates.ISODate), Quantity: 70, SecretPassword: "admin",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 70, s.settings.TotalInventory)
	assert.EqualValues(t, 70, s.settings.TotalProduction)
}

func TestSyncProduction_CreatesRecordWhenDayHasNone(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 0, 0)
	uc := newTestReconciler(s)

	out, err := uc.SyncProduction(context.Background(), "sup-1", dto.SyncProductionRequest{
		Date: testNow.Format(dates.ISODate), Quantity: 80, SecretPassword: "admin",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 80, out.Quantity)
	require.Len(t, s.productions, 1)
	assert.True(t, dates.DayOf(testNow).Contains(s.productions[0].Date))
	assert.EqualValues(t, 80, s.settings.TotalInventory)
	assert.EqualValues(t, 80, s.settings.TotalProduction)
}

func TestSyncProduction_AlwaysRequiresSecret(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 100, 100)
	uc := newTestReconciler(s)

	_, err := uc.SyncProduction(context.Background(), "sup-1", dto.SyncProductionRequest{
		Date: testNow.Format(dates.ISODate), Quantity: 130, SecretPassword: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSecret)
	assert.EqualValues(t, 100, s.settings.TotalInventory)
}

func TestSyncProduction_CompletesMissingProduction(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 0, 0)
	s.notifications = append(s.notifications, &entity.Notification{
		ID: "n-1", Date: dates.DayOf(testNow).Start,
		Type:   entity.NotificationMissingProduction,
		Status: entity.NotificationPending,
	})
	uc := newTestReconciler(s)

	_, err := uc.SyncProduction(context.Background(), "sup-1", dto.SyncProductionRequest{
		Date: testNow.Format(dates.ISODate), Quantity: 40, SecretPassword: "admin",
	})
	require.NoError(t, err)
	assert.Empty(t, s.pendingOfType(entity.NotificationMissingProduction))
}

// The running balance must always equal total production minus total ordered.
func TestTotalsConservation(t *testing.T) {
	s := &memStore{}
	seedSettings(s, 0, 0)
	uc := newTestReconciler(s)
	ctx := context.Background()

	_, err := uc.RecordProduction(ctx, "sup-1", dto.RecordProductionRequest{Quantity: 200})
	require.NoError(t, err)
	_, err = uc.PlaceOrder(ctx, "sup-1", dto.PlaceOrderRequest{CustomerName: "A", Quantity: 30})
	require.NoError(t, err)
	_, err = uc.RecordProduction(ctx, "sup-1", dto.RecordProductionRequest{Quantity: 50})
	require.NoError(t, err)
	_, err = uc.PlaceOrder(ctx, "sup-1", dto.PlaceOrderRequest{CustomerName: "B", Quantity: 70})
	require.NoError(t, err)
	_, err = uc.SyncProduction(ctx, "sup-1", dto.SyncProductionRequest{
		Date: testNow.Format(dates.ISODate), Quantity: 120, SecretPassword: "admin",
	})
	require.NoError(t, err)

	var ordered int64
	for _, o := range s.orders {
		ordered += o.Quantity
	}
	assert.Equal(t, s.settings.TotalProduction-ordered, s.settings.TotalInventory)
}
