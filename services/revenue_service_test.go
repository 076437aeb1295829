package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/platsajacki/make-this-order/config"
	"github.com/platsajacki/make-this-order/models"
	"github.com/platsajacki/make-this-order/services"
)

var testShift = config.ShiftConfig{Start: "10:00", Hours: 12}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedOrder(t *testing.T, db *gorm.DB, table models.Table, status, total string, created time.Time) models.Order {
	order := models.Order{
		TableID:    table.ID,
		Status:     status,
		TotalPrice: decimal.RequireFromString(total),
		CreatedAt:  created,
		UpdatedAt:  created,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func TestCurrentWindowInsideShift(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	svc := services.NewShiftRevenueService(db, testShift).WithClock(fixedClock(now))
	window, err := svc.CurrentWindow()
	assert.NoError(t, err)
	assert.NotNil(t, window)
	assert.Equal(t, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, now, window.End)
}

func TestCurrentWindowOutsideShift(t *testing.T) {
	db := setupTestDB(t)

	for _, now := range []time.Time{
		time.Date(2026, 8, 28, 9, 59, 0, 0, time.UTC),
		time.Date(2026, 8, 28, 22, 1, 0, 0, time.UTC),
	} {
		svc := services.NewShiftRevenueService(db, testShift).WithClock(fixedClock(now))
		window, err := svc.CurrentWindow()
		assert.NoError(t, err)
		assert.Nil(t, window, "expected no window at %s", now)
	}
}

func TestCurrentWindowBoundsAreInclusive(t *testing.T) {
	db := setupTestDB(t)

	for _, now := range []time.Time{
		time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 28, 22, 0, 0, 0, time.UTC),
	} {
		svc := services.NewShiftRevenueService(db, testShift).WithClock(fixedClock(now))
		window, err := svc.CurrentWindow()
		assert.NoError(t, err)
		assert.NotNil(t, window, "expected a window at %s", now)
	}
}

func TestTotalRevenueSumsPaidOrdersInWindow(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, 1)
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	// Inside the window and paid: counted
	seedOrder(t, db, table, models.OrderStatusPaid, "40.00", time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC))
	seedOrder(t, db, table, models.OrderStatusPaid, "12.50", time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC))
	// Inside the window but not paid: excluded
	seedOrder(t, db, table, models.OrderStatusPending, "99.00", time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC))
	seedOrder(t, db, table, models.OrderStatusReady, "99.00", time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	// Paid but created after the current moment: excluded
	seedOrder(t, db, table, models.OrderStatusPaid, "99.00", time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC))
	// Paid but before the shift start: excluded
	seedOrder(t, db, table, models.OrderStatusPaid, "99.00", time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))

	svc := services.NewShiftRevenueService(db, testShift).WithClock(fixedClock(now))
	total, err := svc.TotalRevenue()
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("52.50")),
		"expected 52.50, got %s", total)
}

func TestTotalRevenueOutsideShiftIsZero(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, 1)
	seedOrder(t, db, table, models.OrderStatusPaid, "40.00", time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC))

	now := time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)
	svc := services.NewShiftRevenueService(db, testShift).WithClock(fixedClock(now))
	total, err := svc.TotalRevenue()
	assert.NoError(t, err)
	assert.True(t, total.IsZero(), "expected zero, got %s", total)
}

func TestTotalRevenueWithNoMatchingOrdersIsZero(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	svc := services.NewShiftRevenueService(db, testShift).WithClock(fixedClock(now))
	total, err := svc.TotalRevenue()
	assert.NoError(t, err)
	assert.True(t, total.IsZero(), "expected zero, got %s", total)
}

func TestShiftStartHonorsConfiguredMinutes(t *testing.T) {
	db := setupTestDB(t)
	shift := config.ShiftConfig{Start: "09:30", Hours: 8}
	now := time.Date(2026, 8, 28, 9, 45, 0, 0, time.UTC)

	svc := services.NewShiftRevenueService(db, shift).WithClock(fixedClock(now))
	window, err := svc.CurrentWindow()
	assert.NoError(t, err)
	assert.NotNil(t, window)
	assert.Equal(t, time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC), window.Start)
}
