package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implements the NotificationRepository port over PostgreSQL.
type NotificationRepo struct {
	db querier
}

// NewNotificationRepository builds the persistence adapter for notifications.
func NewNotificationRepository(db querier) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create persists a notification.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, date, type, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, n.ID, n.Date, n.Type, n.Message, n.Status, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID fetches a notification, or (nil, nil) when absent.
func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	query := `
		SELECT id, date, type, message, status, created_at, updated_at
		FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.db.QueryRow(ctx, query, id).Scan(&n.ID, &n.Date, &n.Type, &n.Message, &n.Status, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification by id: %w", err)
	}
	return &n, nil
}

// Update persists status changes.
func (r *NotificationRepo) Update(ctx context.Context, n *entity.Notification) error {
	query := `UPDATE notifications SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, n.ID, n.Status, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

// List returns all notifications sorted by date descending.
func (r *NotificationRepo) List(ctx context.Context) ([]*entity.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, date, type, message, status, created_at, updated_at
		FROM notifications ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Date, &n.Type, &n.Message, &n.Status, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// FindPending returns a Pending notification of the given type in the window,
// or (nil, nil).
func (r *NotificationRepo) FindPending(ctx context.Context, typ string, w dates.Window) (*entity.Notification, error) {
	query := `
		SELECT id, date, type, message, status, created_at, updated_at
		FROM notifications
		WHERE type = $1 AND status = $2 AND date BETWEEN $3 AND $4
		LIMIT 1`
	var n entity.Notification
	err := r.db.QueryRow(ctx, query, typ, entity.NotificationPending, w.Start, w.End).Scan(
		&n.ID, &n.Date, &n.Type, &n.Message, &n.Status, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pending notification: %w", err)
	}
	return &n, nil
}

// CompletePending marks Pending notifications of the type inside the window
// as Completed.
func (r *NotificationRepo) CompletePending(ctx context.Context, typ string, w dates.Window) error {
	query := `
		UPDATE notifications SET status = $1, updated_at = NOW()
		WHERE type = $2 AND status = $3 AND date BETWEEN $4 AND $5`
	_, err := r.db.Exec(ctx, query, entity.NotificationCompleted, typ, entity.NotificationPending, w.Start, w.End)
	if err != nil {
		return fmt.Errorf("complete pending notifications: %w", err)
	}
	return nil
}

// CompleteAllPending marks every Pending notification of the type as Completed.
func (r *NotificationRepo) CompleteAllPending(ctx context.Context, typ string) error {
	query := `
		UPDATE notifications SET status = $1, updated_at = NOW()
		WHERE type = $2 AND status = $3`
	_, err := r.db.Exec(ctx, query, entity.NotificationCompleted, typ, entity.NotificationPending)
	if err != nil {
		return fmt.Errorf("complete all pending notifications: %w", err)
	}
	return nil
}
