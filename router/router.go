package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/platsajacki/make-this-order/config"
	"github.com/platsajacki/make-this-order/controllers"
	"github.com/platsajacki/make-this-order/middlewares"
)

func SetupRouter(db *gorm.DB, shift config.ShiftConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 50).RateLimit())

	dishCtrl := controllers.NewDishController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db)
	revenueCtrl := controllers.NewRevenueController(db, shift)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/dishes", dishCtrl.GetAllDishes)
		api.POST("/dishes", dishCtrl.CreateDish)
		api.GET("/dishes/:dish_id", dishCtrl.GetDishByID)
		api.PATCH("/dishes/:dish_id", dishCtrl.UpdateDish)
		api.DELETE("/dishes/:dish_id", dishCtrl.DeleteDish)

		api.GET("/tables", tableCtrl.GetAllTables)
		api.POST("/tables", tableCtrl.CreateTable)
		api.GET("/tables/:table_id", tableCtrl.GetTableByID)
		api.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		api.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		api.PATCH("/orders/:order_id", orderCtrl.UpdateOrder)
		api.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		api.GET("/shift-revenue", revenueCtrl.GetShiftRevenue)
	}

	return r
}
