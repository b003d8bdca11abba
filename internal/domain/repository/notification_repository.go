package repository

import (
	"context"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
)

// NotificationRepository is the persistence port for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	Update(ctx context.Context, n *entity.Notification) error
	// List returns notifications sorted by date descending.
	List(ctx context.Context) ([]*entity.Notification, error)
	// FindPending returns a Pending notification of the given type whose date
	// falls in the window, or (nil, nil).
	FindPending(ctx context.Context, typ string, w dates.Window) (*entity.Notification, error)
	// CompletePending marks Pending notifications of the given type inside the
	// window as Completed.
	CompletePending(ctx context.Context, typ string, w dates.Window) error
	// CompleteAllPending marks every Pending notification of the given type as
	// Completed, regardless of date.
	CompleteAllPending(ctx context.Context, typ string) error
}
