package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/platsajacki/make-this-order/models"
	"github.com/platsajacki/make-this-order/utils"
)

type DishController struct {
	DB *gorm.DB
}

func NewDishController(db *gorm.DB) *DishController {
	return &DishController{DB: db}
}

// GetAllDishes -> list every dish, ordered by name
func (dc *DishController) GetAllDishes(c *gin.Context) {
	var dishes []models.Dish
	if err := dc.DB.Order("name").Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]DishResponse, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, ToDishResponse(d))
	}
	utils.RespondJSON(c, http.StatusOK, "List of dishes", out)
}

// GetDishByID -> detail of one dish
func (dc *DishController) GetDishByID(c *gin.Context) {
	var dish models.Dish
	if err := dc.DB.First(&dish, c.Param("dish_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish detail", ToDishResponse(dish))
}

// CreateDish -> add a new dish
func (dc *DishController) CreateDish(c *gin.Context) {
	var req DishCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish := models.Dish{Name: req.Name, Price: req.Price}
	if err := dc.DB.Create(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New dish created: %s (price=%s)", dish.Name, dish.Price)
	utils.RespondJSON(c, http.StatusCreated, "Dish created", ToDishResponse(dish))
}

// UpdateDish -> patch name and/or price
func (dc *DishController) UpdateDish(c *gin.Context) {
	var dish models.Dish
	if err := dc.DB.First(&dish, c.Param("dish_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req DishUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if err := dc.DB.Save(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dish updated", ToDishResponse(dish))
}

// DeleteDish -> remove a dish; refused while order items still reference it
func (dc *DishController) DeleteDish(c *gin.Context) {
	var dish models.Dish
	if err := dc.DB.First(&dish, c.Param("dish_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := dc.DB.Delete(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish deleted", gin.H{"dish_id": dish.ID})
}
