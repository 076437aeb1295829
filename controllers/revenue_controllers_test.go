package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/platsajacki/make-this-order/config"
	"github.com/platsajacki/make-this-order/controllers"
	"github.com/platsajacki/make-this-order/models"
)

// alwaysOpenShift keeps the revenue endpoint inside a shift regardless
// of when the test runs.
var alwaysOpenShift = config.ShiftConfig{Start: "00:00", Hours: 24}

func setupRevenueRouter(db *gorm.DB, shift config.ShiftConfig) *gin.Engine {
	r := gin.New()
	revenueCtrl := controllers.NewRevenueController(db, shift)
	r.GET("/shift-revenue", revenueCtrl.GetShiftRevenue)
	return r
}

func TestGetShiftRevenue(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, 1)

	paid := models.Order{
		TableID:    table.ID,
		Status:     models.OrderStatusPaid,
		TotalPrice: decimal.RequireFromString("40.00"),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	assert.NoError(t, db.Create(&paid).Error)

	pending := models.Order{
		TableID:    table.ID,
		Status:     models.OrderStatusPending,
		TotalPrice: decimal.RequireFromString("99.00"),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	assert.NoError(t, db.Create(&pending).Error)

	r := setupRevenueRouter(db, alwaysOpenShift)
	w := doJSON(t, r, http.MethodGet, "/shift-revenue", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp controllers.ShiftRevenueResponse
	decodeData(t, w, &resp)
	assert.True(t, resp.TotalRevenue.Equal(decimal.RequireFromString("40.00")),
		"expected 40.00, got %s", resp.TotalRevenue)
}

func TestGetShiftRevenueWithNoPaidOrders(t *testing.T) {
	db := setupTestDB(t)

	r := setupRevenueRouter(db, alwaysOpenShift)
	w := doJSON(t, r, http.MethodGet, "/shift-revenue", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp controllers.ShiftRevenueResponse
	decodeData(t, w, &resp)
	assert.True(t, resp.TotalRevenue.IsZero(), "expected zero, got %s", resp.TotalRevenue)
}
