package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platsajacki/make-this-order/models"
)

// OrderItemInput is one validated line of an incoming order: the dish is
// already resolved by the API layer, the quantity already checked positive.
type OrderItemInput struct {
	Dish     models.Dish
	Quantity int
}

// OrderCreateInput carries pre-validated data for creating an order.
type OrderCreateInput struct {
	Table models.Table
	Items []OrderItemInput
}

// OrderUpdateInput carries pre-validated data for patching an order.
// Nil pointers mean the field was absent from the patch. An empty Items
// slice is treated the same as absent: existing items stay untouched.
type OrderUpdateInput struct {
	Status *string
	Table  *models.Table
	Items  []OrderItemInput
}

// OrderService performs transactional order mutations and keeps the
// denormalized order total consistent with the order's items.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create inserts a new pending order with its items in one transaction
// and persists the recomputed total. On any failure nothing is committed.
func (s *OrderService) Create(input OrderCreateInput) (*models.Order, error) {
	order := &models.Order{
		TableID:   input.Table.ID,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := s.insertItems(tx, order.ID, input.Items); err != nil {
			return err
		}
		return s.RecalculateTotalPrice(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(order.ID)
}

// Update applies a patch to an existing order in one transaction.
// A non-empty Items slice wholesale-replaces the order's items and
// recomputes the total; otherwise items and total stay untouched.
func (s *OrderService) Update(order *models.Order, input OrderUpdateInput) (*models.Order, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(input.Items) > 0 {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := s.insertItems(tx, order.ID, input.Items); err != nil {
				return err
			}
			if err := s.RecalculateTotalPrice(tx, order); err != nil {
				return err
			}
		}
		if input.Status != nil {
			order.Status = *input.Status
		}
		if input.Table != nil {
			order.TableID = input.Table.ID
		}
		order.UpdatedAt = time.Now()
		// The loaded associations were already handled above; saving
		// them again would resurrect the replaced items.
		return tx.Omit(clause.Associations).Save(order).Error
	})
	if err != nil {
		return nil, err
	}
	return s.reload(order.ID)
}

// Delete removes the order and its items in one transaction so no
// orphan rows survive.
func (s *OrderService) Delete(order *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}

// RecalculateTotalPrice re-derives the order total from its current
// items (dish price times quantity, exact decimal arithmetic) and saves
// the order row. It always writes, even when the value is unchanged.
func (s *OrderService) RecalculateTotalPrice(tx *gorm.DB, order *models.Order) error {
	var items []models.OrderItem
	if err := tx.Preload("Dish").Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return err
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalPrice())
	}

	order.TotalPrice = total
	order.UpdatedAt = time.Now()
	return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"total_price": order.TotalPrice,
		"updated_at":  order.UpdatedAt,
	}).Error
}

// GetByID loads one order with its table and items.
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	return s.reload(id)
}

func (s *OrderService) insertItems(tx *gorm.DB, orderID uint, inputs []OrderItemInput) error {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, models.OrderItem{
			OrderID:   orderID,
			DishID:    in.Dish.ID,
			Quantity:  in.Quantity,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}
	return tx.Create(&items).Error
}

func (s *OrderService) reload(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Table").Preload("OrderItems.Dish").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
