package usecase

import (
	"context"
	"time"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/domain"
	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

// ReportUseCase is the read side for productions and orders: flat listings
// with optional inclusive day-window filtering, sorted by date descending.
type ReportUseCase struct {
	productionRepo repository.ProductionRepository
	orderRepo      repository.OrderRepository
	loc            *time.Location
}

// NewReportUseCase builds the use case. A nil location means local time.
func NewReportUseCase(productionRepo repository.ProductionRepository, orderRepo repository.OrderRepository, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{productionRepo: productionRepo, orderRepo: orderRepo, loc: loc}
}

// ListProductions returns production records, optionally filtered by range.
func (uc *ReportUseCase) ListProductions(ctx context.Context, q dto.DateRangeQuery) ([]dto.ProductionResponse, error) {
	w, err := uc.window(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.productionRepo.List(ctx, w)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductionResponse{
			ID:           p.ID,
			Date:         p.Date,
			Quantity:     p.Quantity,
			SupervisorID: p.SupervisorID,
			CreatedAt:    p.CreatedAt,
		})
	}
	return out, nil
}

// ProductionsByDate returns the records of one calendar day.
func (uc *ReportUseCase) ProductionsByDate(ctx context.Context, isoDate string) ([]dto.ProductionResponse, error) {
	day, err := dates.ParseISO(isoDate, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	w := dates.DayOf(day)
	return uc.ListProductions(ctx, dto.DateRangeQuery{
		StartDate: w.Start.Format(dates.ISODate),
		EndDate:   w.End.Format(dates.ISODate),
	})
}

// ListOrders returns orders, optionally filtered by range.
func (uc *ReportUseCase) ListOrders(ctx context.Context, q dto.DateRangeQuery) ([]dto.OrderResponse, error) {
	w, err := uc.window(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.orderRepo.List(ctx, w)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OrderResponse{
			ID:           o.ID,
			Date:         o.Date,
			CustomerName: o.CustomerName,
			Quantity:     o.Quantity,
			Amount:       o.Amount,
			SupervisorID: o.SupervisorID,
			CreatedAt:    o.CreatedAt,
		})
	}
	return out, nil
}

// window maps a range query to a day window; nil means no filter.
func (uc *ReportUseCase) window(q dto.DateRangeQuery) (*dates.Window, error) {
	if !q.HasRange() {
		return nil, nil
	}
	from, err := dates.ParseISO(q.StartDate, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := dates.ParseISO(q.EndDate, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	w := dates.Range(from, to)
	return &w, nil
}
