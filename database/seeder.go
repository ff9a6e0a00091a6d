package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rms-backend/models"
	"rms-backend/utils"
)

// Seed loads a workable starting dataset: one user per role, the menu
// skeleton, eight tables and tracked inventory. Safe to run repeatedly.
func Seed(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Manager User", Email: "manager@rms.com", Role: models.RoleManager},
		{Name: "Waiter User", Email: "waiter@rms.com", Role: models.RoleWaiter},
		{Name: "Chef User", Email: "chef@rms.com", Role: models.RoleChef},
		{Name: "Cashier User", Email: "cashier@rms.com", Role: models.RoleCashier},
	}
	for i := range users {
		users[i].Password = string(hashed)
		users[i].IsActive = true
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			return err
		}
	}

	categories := []models.Category{
		{Name: "Appetizers", SortOrder: 1},
		{Name: "Main Course", SortOrder: 2},
		{Name: "Beverages", SortOrder: 3},
		{Name: "Desserts", SortOrder: 4},
	}
	for i := range categories {
		if err := db.Where("name = ?", categories[i].Name).FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	menuItems := []models.MenuItem{
		{Name: "Spring Rolls", CategoryID: categories[0].ID, Price: 8.99, IsVeg: true, PrepTime: 10},
		{Name: "Chicken Wings", CategoryID: categories[0].ID, Price: 12.99, IsVeg: false, PrepTime: 15},
		{Name: "Garlic Bread", CategoryID: categories[0].ID, Price: 5.99, IsVeg: true, PrepTime: 8},
		{Name: "Grilled Chicken", CategoryID: categories[1].ID, Price: 18.99, IsVeg: false, PrepTime: 25},
		{Name: "Vegetable Pasta", CategoryID: categories[1].ID, Price: 14.99, IsVeg: true, PrepTime: 20},
		{Name: "Margherita Pizza", CategoryID: categories[1].ID, Price: 16.99, IsVeg: true, PrepTime: 18},
		{Name: "Fresh Lime Soda", CategoryID: categories[2].ID, Price: 3.99, IsVeg: true, PrepTime: 5},
		{Name: "Iced Coffee", CategoryID: categories[2].ID, Price: 4.99, IsVeg: true, PrepTime: 5},
		{Name: "Chocolate Brownie", CategoryID: categories[3].ID, Price: 6.99, IsVeg: true, PrepTime: 10},
	}
	for i := range menuItems {
		menuItems[i].IsAvailable = true
		if err := db.Where("name = ?", menuItems[i].Name).FirstOrCreate(&menuItems[i]).Error; err != nil {
			return err
		}
	}

	for number := 1; number <= 8; number++ {
		capacity := 4
		if number%3 == 0 {
			capacity = 6
		}
		table := models.Table{
			TableNumber: number,
			Capacity:    capacity,
			Shape:       "SQUARE",
			Status:      models.TableFree,
		}
		if err := db.Where("table_number = ?", number).FirstOrCreate(&table).Error; err != nil {
			return err
		}
	}

	inventory := []models.InventoryItem{
		{Name: "Tomatoes", CurrentStock: 25, MinStock: 10, Unit: "kg"},
		{Name: "Chicken Breast", CurrentStock: 15, MinStock: 5, Unit: "kg", MenuItemID: &menuItems[3].ID},
		{Name: "Mozzarella", CurrentStock: 8, MinStock: 4, Unit: "kg", MenuItemID: &menuItems[5].ID},
		{Name: "Coffee Beans", CurrentStock: 6, MinStock: 2, Unit: "kg", MenuItemID: &menuItems[7].ID},
		{Name: "Flour", CurrentStock: 40, MinStock: 15, Unit: "kg"},
	}
	for i := range inventory {
		if err := db.Where("name = ?", inventory[i].Name).FirstOrCreate(&inventory[i]).Error; err != nil {
			return err
		}
	}

	utils.InfoLogger.Println("Database seeding completed.")
	return nil
}
