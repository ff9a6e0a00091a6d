package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"rms-backend/controllers"
	"rms-backend/models"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	userCtrl := controllers.NewUserController(db)
	r.POST("/register", userCtrl.Register)
	r.POST("/login", userCtrl.Login)
	return r
}

func TestRegisterCreatesPendingRequest(t *testing.T) {
	db := newTestDB(t, "users_register")
	r := setupUserRouter(db)

	w := doJSON(t, r, "POST", "/register", map[string]interface{}{
		"name":     "New Waiter",
		"email":    "new.waiter@test.com",
		"password": "secret123",
		"role":     "WAITER",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var request models.UserRequest
	assert.NoError(t, db.Where("email = ?", "new.waiter@test.com").First(&request).Error)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.NotEqual(t, "secret123", request.Password)

	// No account until a manager approves
	var count int64
	db.Model(&models.User{}).Where("email = ?", "new.waiter@test.com").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterRejectsManagerAndBadRole(t *testing.T) {
	db := newTestDB(t, "users_register_roles")
	r := setupUserRouter(db)

	w := doJSON(t, r, "POST", "/register", map[string]interface{}{
		"name":     "Sneaky",
		"email":    "sneaky@test.com",
		"password": "secret123",
		"role":     "MANAGER",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/register", map[string]interface{}{
		"name":     "Typo",
		"email":    "typo@test.com",
		"password": "secret123",
		"role":     "WAITRESS",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t, "users_register_dup")
	r := setupUserRouter(db)

	payload := map[string]interface{}{
		"name":     "Chef One",
		"email":    "chef.one@test.com",
		"password": "secret123",
		"role":     "CHEF",
	}
	w := doJSON(t, r, "POST", "/register", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Pending request blocks a second attempt
	w = doJSON(t, r, "POST", "/register", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Existing account blocks registration too
	seedUser(t, db, "Existing", "existing@test.com", models.RoleWaiter)
	w = doJSON(t, r, "POST", "/register", map[string]interface{}{
		"name":     "Existing",
		"email":    "existing@test.com",
		"password": "secret123",
		"role":     "WAITER",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t, "users_login")
	r := setupUserRouter(db)

	user := seedUser(t, db, "Waiter", "waiter@test.com", models.RoleWaiter)

	w := doJSON(t, r, "POST", "/login", map[string]interface{}{
		"email":    "waiter@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, float64(user.ID), data["user_id"].(float64))
	assert.Equal(t, "waiter", data["user_role"])

	w = doJSON(t, r, "POST", "/login", map[string]interface{}{
		"email":    "waiter@test.com",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginInactiveUser(t *testing.T) {
	db := newTestDB(t, "users_login_inactive")
	r := setupUserRouter(db)

	user := seedUser(t, db, "Disabled", "disabled@test.com", models.RoleChef)
	assert.NoError(t, db.Model(&user).Update("is_active", false).Error)

	w := doJSON(t, r, "POST", "/login", map[string]interface{}{
		"email":    "disabled@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
