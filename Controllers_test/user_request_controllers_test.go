package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rms-backend/controllers"
	"rms-backend/models"
)

func setupUserRequestRouter(db *gorm.DB, manager models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	reqCtrl := controllers.NewUserRequestController(db)
	authed := r.Group("/", asStaff(manager.ID, manager.Role))
	authed.GET("/user-requests", reqCtrl.GetPendingRequests)
	authed.PATCH("/user-requests/:request_id", reqCtrl.ReviewRequest)
	authed.DELETE("/user-requests/:request_id", reqCtrl.DeleteRequest)
	return r
}

func seedPendingRequest(t *testing.T, db *gorm.DB, email, role string) models.UserRequest {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	request := models.UserRequest{
		Name:     "Applicant",
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Status:   models.RequestPending,
	}
	assert.NoError(t, db.Create(&request).Error)
	return request
}

func TestApproveRequestCreatesUser(t *testing.T) {
	db := newTestDB(t, "requests_approve")
	manager := seedUser(t, db, "Manager", "manager@test.com", models.RoleManager)
	r := setupUserRequestRouter(db, manager)

	request := seedPendingRequest(t, db, "applicant@test.com", models.RoleChef)

	w := doJSON(t, r, "PATCH", fmt.Sprintf("/user-requests/%d", request.ID), map[string]interface{}{
		"action": "APPROVE",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.UserRequest
	assert.NoError(t, db.First(&fresh, request.ID).Error)
	assert.Equal(t, models.RequestApproved, fresh.Status)
	assert.NotNil(t, fresh.ReviewedBy)
	assert.Equal(t, manager.ID, *fresh.ReviewedBy)
	assert.NotNil(t, fresh.ReviewedAt)

	var user models.User
	assert.NoError(t, db.Where("email = ?", "applicant@test.com").First(&user).Error)
	assert.Equal(t, models.RoleChef, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, request.Password, user.Password)

	// A processed request cannot be reviewed again
	w = doJSON(t, r, "PATCH", fmt.Sprintf("/user-requests/%d", request.ID), map[string]interface{}{
		"action": "REJECT",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectRequestWithReason(t *testing.T) {
	db := newTestDB(t, "requests_reject")
	manager := seedUser(t, db, "Manager", "manager@test.com", models.RoleManager)
	r := setupUserRequestRouter(db, manager)

	request := seedPendingRequest(t, db, "rejected@test.com", models.RoleWaiter)

	w := doJSON(t, r, "PATCH", fmt.Sprintf("/user-requests/%d", request.ID), map[string]interface{}{
		"action":           "REJECT",
		"rejection_reason": "position filled",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.UserRequest
	assert.NoError(t, db.First(&fresh, request.ID).Error)
	assert.Equal(t, models.RequestRejected, fresh.Status)
	assert.NotNil(t, fresh.RejectionReason)
	assert.Equal(t, "position filled", *fresh.RejectionReason)

	var count int64
	db.Model(&models.User{}).Where("email = ?", "rejected@test.com").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestReviewValidation(t *testing.T) {
	db := newTestDB(t, "requests_validation")
	manager := seedUser(t, db, "Manager", "manager@test.com", models.RoleManager)
	r := setupUserRequestRouter(db, manager)

	request := seedPendingRequest(t, db, "pending@test.com", models.RoleCashier)

	w := doJSON(t, r, "PATCH", fmt.Sprintf("/user-requests/%d", request.ID), map[string]interface{}{
		"action": "MAYBE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "PATCH", "/user-requests/9999", map[string]interface{}{
		"action": "APPROVE",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAndDeleteRequests(t *testing.T) {
	db := newTestDB(t, "requests_list")
	manager := seedUser(t, db, "Manager", "manager@test.com", models.RoleManager)
	r := setupUserRequestRouter(db, manager)

	seedPendingRequest(t, db, "one@test.com", models.RoleWaiter)
	second := seedPendingRequest(t, db, "two@test.com", models.RoleChef)

	w := doJSON(t, r, "GET", "/user-requests", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"].([]interface{}), 2)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/user-requests/%d", second.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/user-requests", nil)
	assert.Len(t, decodeBody(t, w)["data"].([]interface{}), 1)
}
