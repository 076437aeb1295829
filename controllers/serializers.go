package controllers

import (
	"github.com/shopspring/decimal"

	"github.com/platsajacki/make-this-order/models"
)

// Write-input types. These are what clients POST/PATCH; dishes are
// referenced by id, tables by their number.

type OrderItemRequest struct {
	Dish     uint `json:"dish" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

type OrderCreateRequest struct {
	Table uint64             `json:"table" binding:"required"`
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderUpdateRequest struct {
	Status *string            `json:"status"`
	Table  *uint64            `json:"table"`
	Items  []OrderItemRequest `json:"items" binding:"omitempty,dive"`
}

type DishCreateRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

type DishUpdateRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

type TableCreateRequest struct {
	Number      uint64 `json:"number" binding:"required,gt=0"`
	Seats       uint   `json:"seats" binding:"required,gt=0"`
	Description string `json:"description"`
}

type TableUpdateRequest struct {
	Number      *uint64 `json:"number" binding:"omitempty,gt=0"`
	Seats       *uint   `json:"seats" binding:"omitempty,gt=0"`
	Description *string `json:"description"`
}

// Read-output types and their mapping functions. Derived line totals
// are computed here from the preloaded dish, never read from storage.

type DishResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type TableResponse struct {
	ID          uint   `json:"id"`
	Number      uint64 `json:"number"`
	Seats       uint   `json:"seats"`
	Description string `json:"description"`
}

type OrderItemResponse struct {
	ID         uint            `json:"id"`
	Dish       DishResponse    `json:"dish"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type OrderResponse struct {
	ID         uint                `json:"id"`
	Table      TableResponse       `json:"table"`
	Items      []OrderItemResponse `json:"items"`
	Status     string              `json:"status"`
	TotalPrice decimal.Decimal     `json:"total_price"`
}

type ShiftRevenueResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

func ToDishResponse(d models.Dish) DishResponse {
	return DishResponse{ID: d.ID, Name: d.Name, Price: d.Price}
}

func ToTableResponse(t models.Table) TableResponse {
	return TableResponse{ID: t.ID, Number: t.Number, Seats: t.Seats, Description: t.Description}
}

func ToOrderItemResponse(item models.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:         item.ID,
		Dish:       ToDishResponse(item.Dish),
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice(),
	}
}

func ToOrderResponse(order models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, ToOrderItemResponse(item))
	}
	return OrderResponse{
		ID:         order.ID,
		Table:      ToTableResponse(order.Table),
		Items:      items,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
	}
}

func ToOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
