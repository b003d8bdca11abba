package usecase

import (
	"context"
	"time"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/domain"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

// NotificationUseCase lists notifications and handles explicit mark-read.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase builds the use case.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List returns all notifications, newest day first.
func (uc *NotificationUseCase) List(ctx context.Context) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// MarkCompleted transitions a notification to Completed. The transition is
// one-way; completing an already Completed entry is a no-op.
func (uc *NotificationUseCase) MarkCompleted(ctx context.Context, id string) (*dto.NotificationResponse, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if n.Pending() {
		n.Status = entity.NotificationCompleted
		n.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, n); err != nil {
			return nil, err
		}
	}
	resp := toNotificationResponse(n)
	return &resp, nil
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Date:      n.Date,
		Type:      n.Type,
		Message:   n.Message,
		Status:    n.Status,
		CreatedAt: n.CreatedAt,
	}
}
