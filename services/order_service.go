package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rms-backend/models"
	"rms-backend/utils"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrTableNotFound    = errors.New("table not found")
	ErrWaiterNotFound   = errors.New("waiter not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrOrderClosed      = errors.New("order is already completed or cancelled")
	ErrAlreadyPaid      = errors.New("order already has a payment")
	ErrInvalidMethod    = errors.New("invalid payment method")
)

// OrderItemInput is one cart line as sent by the waiter client. Price and
// subtotal are client-supplied snapshots and are recorded as-is.
type OrderItemInput struct {
	MenuItemID uint    `json:"menu_item_id" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required"`
	Price      float64 `json:"price"`
	Subtotal   float64 `json:"subtotal"`
	Notes      *string `json:"notes,omitempty"`
}

// ConsumptionResult reports the inventory effect of one order line after the
// kitchen marks the order READY.
type ConsumptionResult struct {
	OrderItemID uint    `json:"order_item_id"`
	MenuItemID  uint    `json:"menu_item_id"`
	MenuItem    string  `json:"menu_item"`
	Result      string  `json:"result"` // consumed, not_tracked or failed
	NewStock    float64 `json:"new_stock,omitempty"`
	IsLowStock  bool    `json:"is_low_stock,omitempty"`
}

type OrderService struct {
	DB        *gorm.DB
	Inventory *InventoryService
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:        db,
		Inventory: NewInventoryService(db),
	}
}

// Create opens an order for a table: order row, line items and the table's
// switch to OCCUPIED commit as a single transaction.
func (s *OrderService) Create(tableID, waiterID uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for menu item %d", item.Quantity, item.MenuItemID)
		}
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTableNotFound
			}
			return err
		}

		var waiter models.User
		if err := tx.First(&waiter, waiterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWaiterNotFound
			}
			return err
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, item.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrMenuItemNotFound
				}
				return err
			}

			total += item.Subtotal
			orderItems = append(orderItems, models.OrderItem{
				MenuItemID: menuItem.ID,
				Quantity:   item.Quantity,
				Price:      item.Price,
				Subtotal:   item.Subtotal,
				Notes:      item.Notes,
				Status:     "PENDING",
			})
		}

		order = models.Order{
			OrderNumber: generateOrderNumber(),
			TableID:     table.ID,
			WaiterID:    waiter.ID,
			Status:      models.OrderNew,
			TotalAmount: total,
			Discount:    0,
			FinalAmount: total,
			OrderItems:  orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		table.Status = models.TableOccupied
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(order.ID)
}

// UpdateStatus transitions an order. COMPLETED frees the table in the same
// transaction. READY triggers inventory consumption for every line after the
// commit; individual consumption failures are logged and reported, never
// rolled back into the status change.
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*models.Order, []ConsumptionResult, error) {
	if !models.ValidOrderStatus(newStatus) {
		return nil, nil, ErrInvalidStatus
	}

	var order models.Order
	if err := s.DB.Preload("OrderItems.MenuItem").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrOrderNotFound
		}
		return nil, nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Guard and transition in one conditional UPDATE so two racing
		// calls cannot both move a closed order.
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status NOT IN ?", order.ID,
				[]string{models.OrderCompleted, models.OrderCancelled}).
			Update("status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// MySQL reports zero affected rows for a same-value update,
			// so re-check before concluding the order is closed.
			var current models.Order
			if err := tx.Select("status").First(&current, order.ID).Error; err != nil {
				return err
			}
			if models.TerminalOrderStatus(current.Status) {
				return ErrOrderClosed
			}
		}
		order.Status = newStatus

		if newStatus == models.OrderCompleted {
			return tx.Model(&models.Table{}).
				Where("id = ?", order.TableID).
				Update("status", models.TableFree).Error
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var consumption []ConsumptionResult
	if newStatus == models.OrderReady {
		consumption = s.consumeOrderStock(order)
	}

	updated, err := s.Get(order.ID)
	if err != nil {
		return nil, nil, err
	}
	return updated, consumption, nil
}

// consumeOrderStock runs once per line, sequentially, tolerating failures. A
// line without an inventory link is success-with-no-effect.
func (s *OrderService) consumeOrderStock(order models.Order) []ConsumptionResult {
	results := make([]ConsumptionResult, 0, len(order.OrderItems))

	for _, line := range order.OrderItems {
		result := ConsumptionResult{
			OrderItemID: line.ID,
			MenuItemID:  line.MenuItemID,
			MenuItem:    line.MenuItem.Name,
		}

		item, err := s.Inventory.ConsumeByMenuItemID(line.MenuItemID, float64(line.Quantity))
		switch {
		case err == nil:
			result.Result = "consumed"
			result.NewStock = item.CurrentStock
			result.IsLowStock = item.IsLowStock()
			if result.IsLowStock {
				utils.InfoLogger.Printf("Low stock after order %s: %s at %.2f %s (min %.2f)",
					order.OrderNumber, item.Name, item.CurrentStock, item.Unit, item.MinStock)
			}
		case errors.Is(err, ErrNotTracked):
			result.Result = "not_tracked"
		default:
			result.Result = "failed"
			utils.ErrorLogger.Printf("Inventory consumption failed for order %s, menu item %d: %v",
				order.OrderNumber, line.MenuItemID, err)
		}

		results = append(results, result)
	}

	return results
}

// Get returns an order with its table, waiter, line items and payment.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.
		Preload("Table").
		Preload("Waiter").
		Preload("OrderItems.MenuItem").
		Preload("Payment").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List returns the latest 50 orders, newest first.
func (s *OrderService) List() ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.
		Preload("Table").
		Preload("Waiter").
		Preload("OrderItems.MenuItem").
		Order("created_at desc").
		Limit(50).
		Find(&orders).Error
	return orders, err
}

// FinalizePayment records the cashier's charge and closes the order: payment
// row, order COMPLETED with cashier-entered discount and final amount, and the
// table freed, all in one transaction.
func (s *OrderService) FinalizePayment(orderID uint, amount float64, method string, cashierID uint, discount float64) (*models.Payment, error) {
	if !models.ValidPaymentMethod(method) {
		return nil, ErrInvalidMethod
	}

	var payment models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if models.TerminalOrderStatus(order.Status) {
			return ErrOrderClosed
		}

		var existing int64
		if err := tx.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyPaid
		}

		now := time.Now()
		payment = models.Payment{
			OrderID:   order.ID,
			Amount:    amount,
			Method:    method,
			Status:    "COMPLETED",
			CashierID: cashierID,
			PaidAt:    &now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":       models.OrderCompleted,
			"discount":     discount,
			"final_amount": amount,
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Model(&models.Table{}).
			Where("id = ?", order.TableID).
			Update("status", models.TableFree).Error
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
