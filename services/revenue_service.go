package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/platsajacki/make-this-order/config"
	"github.com/platsajacki/make-this-order/models"
)

// WorkingTime is the slice of the current shift that revenue is
// attributed to: from the shift start up to the current moment.
type WorkingTime struct {
	Start time.Time
	End   time.Time
}

// ShiftRevenueService sums paid-order totals inside the current working
// shift. The shift window and the clock are injected so the service can
// be tested against arbitrary moments in time.
type ShiftRevenueService struct {
	db    *gorm.DB
	shift config.ShiftConfig
	now   func() time.Time
}

func NewShiftRevenueService(db *gorm.DB, shift config.ShiftConfig) *ShiftRevenueService {
	return &ShiftRevenueService{db: db, shift: shift, now: time.Now}
}

// WithClock replaces the wall clock, for tests.
func (s *ShiftRevenueService) WithClock(now func() time.Time) *ShiftRevenueService {
	s.now = now
	return s
}

// CurrentWindow computes the active revenue window. The shift starts
// today at the configured HH:MM and lasts the configured number of
// hours. When the current time falls inside the shift (bounds
// inclusive) the window runs from the shift start to now; outside the
// shift there is no window.
func (s *ShiftRevenueService) CurrentWindow() (*WorkingTime, error) {
	start, err := time.Parse("15:04", s.shift.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid shift start %q: %w", s.shift.Start, err)
	}

	now := s.now()
	shiftStart := time.Date(now.Year(), now.Month(), now.Day(), start.Hour(), start.Minute(), 0, 0, now.Location())
	shiftEnd := shiftStart.Add(time.Duration(s.shift.Hours) * time.Hour)

	if now.Before(shiftStart) || now.After(shiftEnd) {
		return nil, nil
	}
	return &WorkingTime{Start: shiftStart, End: now}, nil
}

// TotalRevenue returns the exact decimal sum of total_price over paid
// orders created inside the current window. No active shift or no
// matching orders both yield zero.
func (s *ShiftRevenueService) TotalRevenue() (decimal.Decimal, error) {
	window, err := s.CurrentWindow()
	if err != nil {
		return decimal.Zero, err
	}
	if window == nil {
		return decimal.Zero, nil
	}

	var totals []decimal.Decimal
	err = s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPaid).
		Where("created_at >= ? AND created_at <= ?", window.Start, window.End).
		Pluck("total_price", &totals).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, t := range totals {
		total = total.Add(t)
	}
	return total, nil
}
