package services

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"rms-backend/events"
	"rms-backend/models"
	"rms-backend/utils"
)

// StockMonitor sweeps inventory on an interval and raises one notification per
// item each time it drops to or below its minimum threshold. An item stays
// muted until its stock recovers.
type StockMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration

	mu      sync.Mutex
	alerted map[uint]bool
}

func NewStockMonitor(db *gorm.DB) *StockMonitor {
	return &StockMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 5 * time.Minute,
		alerted:  make(map[uint]bool),
	}
}

func (sm *StockMonitor) Start() {
	go func() {
		ticker := time.NewTicker(sm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sm.sweep()
			case <-sm.StopChan:
				return
			}
		}
	}()
}

func (sm *StockMonitor) Stop() {
	close(sm.StopChan)
}

func (sm *StockMonitor) sweep() {
	var items []models.InventoryItem
	if err := sm.DB.Find(&items).Error; err != nil {
		utils.ErrorLogger.Printf("Stock sweep failed: %v", err)
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, item := range items {
		if !item.IsLowStock() {
			delete(sm.alerted, item.ID)
			continue
		}
		if sm.alerted[item.ID] {
			continue
		}

		title := "Low stock"
		notification := models.Notification{
			Title: &title,
			Message: fmt.Sprintf("%s is low: %.2f %s left (minimum %.2f)",
				item.Name, item.CurrentStock, item.Unit, item.MinStock),
		}
		if err := sm.DB.Create(&notification).Error; err != nil {
			utils.ErrorLogger.Printf("Error creating low stock notification: %v", err)
			continue
		}

		events.BroadcastLowStock(item)
		sm.alerted[item.ID] = true
	}
}
