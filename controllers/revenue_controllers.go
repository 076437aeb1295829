package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/platsajacki/make-this-order/config"
	"github.com/platsajacki/make-this-order/services"
	"github.com/platsajacki/make-this-order/utils"
)

type RevenueController struct {
	service *services.ShiftRevenueService
}

func NewRevenueController(db *gorm.DB, shift config.ShiftConfig) *RevenueController {
	return &RevenueController{service: services.NewShiftRevenueService(db, shift)}
}

// GetShiftRevenue -> total of paid orders in the current working shift.
// Outside the shift the revenue is reported as zero.
func (rc *RevenueController) GetShiftRevenue(c *gin.Context) {
	total, err := rc.service.TotalRevenue()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Shift revenue", ShiftRevenueResponse{TotalRevenue: total})
}
