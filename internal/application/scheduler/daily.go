package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
	"github.com/tanvirul/shopledger-api/pkg/logger"
)

// DailyCheck raises "Missing Production" / "Missing Order" notifications when
// no data was entered for the current day. It fires once per calendar day at
// a fixed wall-clock hour and always checks for an existing Pending entry
// before creating one, so a repeated firing within the same day cannot
// produce duplicates.
type DailyCheck struct {
	productionRepo repository.ProductionRepository
	orderRepo      repository.OrderRepository
	notifRepo      repository.NotificationRepository
	log            *logger.Logger

	// Hour is the local wall-clock hour (0-23) of the daily firing.
	Hour int
	loc  *time.Location
	now  func() time.Time
}

// NewDailyCheck builds the scheduler. A nil location means local time.
func NewDailyCheck(
	productionRepo repository.ProductionRepository,
	orderRepo repository.OrderRepository,
	notifRepo repository.NotificationRepository,
	log *logger.Logger,
	hour int,
	loc *time.Location,
) *DailyCheck {
	if loc == nil {
		loc = time.Local
	}
	return &DailyCheck{
		productionRepo: productionRepo,
		orderRepo:      orderRepo,
		notifRepo:      notifRepo,
		log:            log,
		Hour:           hour,
		loc:            loc,
		now:            time.Now,
	}
}

// Run blocks until ctx is done, firing RunOnce at the configured hour each
// day. Runs as an independent goroutine next to the HTTP server.
func (c *DailyCheck) Run(ctx context.Context) {
	for {
		wait := time.Until(c.nextFiring())
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		if err := c.RunOnce(ctx); err != nil {
			c.log.Error().Err(err).Msg("daily data entry check failed")
		}
	}
}

// RunOnce performs a single missing-data check for the current day window.
func (c *DailyCheck) RunOnce(ctx context.Context) error {
	today := dates.DayOf(c.now().In(c.loc))
	c.log.Info().Time("day", today.Start).Msg("running daily data entry check")

	if err := c.checkMissing(ctx, today,
		entity.NotificationMissingProduction,
		"Daily Production Not Entered",
		c.productionRepo.ExistsInWindow,
	); err != nil {
		return err
	}
	return c.checkMissing(ctx, today,
		entity.NotificationMissingOrder,
		"No Orders Entered Today",
		c.orderRepo.ExistsInWindow,
	)
}

// checkMissing creates a Pending notification of the given type for the day
// unless data exists in the window or a Pending entry is already there.
func (c *DailyCheck) checkMissing(
	ctx context.Context,
	day dates.Window,
	typ, message string,
	exists func(context.Context, dates.Window) (bool, error),
) error {
	found, err := exists(ctx, day)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	pending, err := c.notifRepo.FindPending(ctx, typ, day)
	if err != nil {
		return err
	}
	if pending != nil {
		return nil
	}
	now := c.now()
	return c.notifRepo.Create(ctx, &entity.Notification{
		ID:        uuid.New().String(),
		Date:      day.Start,
		Type:      typ,
		Message:   message,
		Status:    entity.NotificationPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// nextFiring returns the next occurrence of the configured hour: today if it
// is still ahead, otherwise tomorrow.
func (c *DailyCheck) nextFiring() time.Time {
	now := c.now().In(c.loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), c.Hour, 0, 0, 0, c.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
