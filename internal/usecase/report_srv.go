package usecase

import (
	"context"
	"fmt"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/data/repository"
	"field-booking/internal/dto/response"

	"go.uber.org/zap"
)

// ReportService computes derived views over the booking collection. All
// views are pure recomputations per request; nothing is cached.
type ReportService interface {
	Revenue(ctx context.Context, date string) (*response.RevenueResponse, error)
	OccupancyGrid(ctx context.Context, date string) (*response.OccupancyGridResponse, error)
	DashboardSummary(ctx context.Context) (*response.DashboardSummaryResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
		now:  time.Now,
	}
}

// Revenue sums total prices of confirmed bookings for a date
func (s *reportService) Revenue(ctx context.Context, date string) (*response.RevenueResponse, error) {
	if _, err := time.Parse(entity.DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date format %s: %w", date, err)
	}

	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load bookings for revenue", zap.Error(err))
		return nil, fmt.Errorf("compute revenue: %w", err)
	}

	var revenue float64
	for _, booking := range bookings {
		if booking.Date == date && booking.Status == entity.BookingStatusConfirmed {
			revenue += booking.TotalPrice
		}
	}

	return &response.RevenueResponse{Date: date, Revenue: revenue}, nil
}

// OccupancyGrid maps every field/slot pair of a date to its occupying
// booking, if any
func (s *reportService) OccupancyGrid(ctx context.Context, date string) (*response.OccupancyGridResponse, error) {
	if _, err := time.Parse(entity.DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date format %s: %w", date, err)
	}

	fields, err := s.repo.Field.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	grid := &response.OccupancyGridResponse{Date: date}
	for _, field := range fields {
		for _, slot := range entity.DailySlots() {
			cell := response.OccupancyCell{
				FieldID: field.ID.String(),
				Slot:    slot,
			}

			for _, booking := range bookings {
				if booking.Occupies(field.ID, date, slot) {
					resp := response.BookingToResponse(booking)
					cell.Booking = &resp
					break
				}
			}

			grid.Cells = append(grid.Cells, cell)
		}
	}

	return grid, nil
}

func (s *reportService) DashboardSummary(ctx context.Context) (*response.DashboardSummaryResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load bookings for dashboard", zap.Error(err))
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	fields, err := s.repo.Field.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	today := s.now().Format(entity.DateFormat)
	summary := &response.DashboardSummaryResponse{FieldCount: len(fields)}

	for _, booking := range bookings {
		if booking.Status == entity.BookingStatusPending {
			summary.PendingCount++
		}
		if booking.Date == today {
			summary.TodayBookings++
			if booking.Status == entity.BookingStatusConfirmed {
				summary.TodayRevenue += booking.TotalPrice
			}
		}
	}

	return summary, nil
}
