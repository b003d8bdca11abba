package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/domain"
	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

// SalaryUseCase records and lists salary payments. Salaries carry no derived
// invariants; they never touch the settings aggregate.
type SalaryUseCase struct {
	repo repository.SalaryRepository
	loc  *time.Location
}

// NewSalaryUseCase builds the use case. A nil location means local time.
func NewSalaryUseCase(repo repository.SalaryRepository, loc *time.Location) *SalaryUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &SalaryUseCase{repo: repo, loc: loc}
}

// Create records a salary payment. An empty date means today.
func (uc *SalaryUseCase) Create(ctx context.Context, supervisorID string, in dto.CreateSalaryRequest) (*dto.SalaryResponse, error) {
	if in.EmployeeName == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now.In(uc.loc)
	if in.Date != "" {
		var err error
		date, err = dates.ParseISO(in.Date, uc.loc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	s := &entity.Salary{
		ID:           uuid.New().String(),
		Date:         date,
		EmployeeName: in.EmployeeName,
		Amount:       in.Amount,
		SupervisorID: supervisorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSalaryResponse(s), nil
}

// List returns salaries, optionally filtered by an inclusive day range.
func (uc *SalaryUseCase) List(ctx context.Context, q dto.DateRangeQuery) ([]dto.SalaryResponse, error) {
	var w *dates.Window
	if q.HasRange() {
		from, err := dates.ParseISO(q.StartDate, uc.loc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to, err := dates.ParseISO(q.EndDate, uc.loc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		r := dates.Range(from, to)
		w = &r
	}
	list, err := uc.repo.List(ctx, w)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSalaryResponse(s))
	}
	return out, nil
}

func toSalaryResponse(s *entity.Salary) *dto.SalaryResponse {
	return &dto.SalaryResponse{
		ID:           s.ID,
		Date:         s.Date,
		EmployeeName: s.EmployeeName,
		Amount:       s.Amount,
		SupervisorID: s.SupervisorID,
		CreatedAt:    s.CreatedAt,
	}
}
