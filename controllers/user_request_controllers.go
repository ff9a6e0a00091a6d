package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rms-backend/events"
	"rms-backend/models"
	"rms-backend/utils"
)

type UserRequestController struct {
	DB *gorm.DB
}

func NewUserRequestController(db *gorm.DB) *UserRequestController {
	return &UserRequestController{DB: db}
}

// GetPendingRequests -> pending registrations, newest first
func (rc *UserRequestController) GetPendingRequests(c *gin.Context) {
	var requests []models.UserRequest
	if err := rc.DB.Where("status = ?", models.RequestPending).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pending user requests", requests)
}

// ReviewRequest approves or rejects a PENDING request. Approval creates the
// permanent user account with the same hashed password; either outcome is
// terminal for the request.
func (rc *UserRequestController) ReviewRequest(c *gin.Context) {
	requestID := c.Param("request_id")

	var body struct {
		Action          string  `json:"action" binding:"required"` // APPROVE or REJECT
		RejectionReason *string `json:"rejection_reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Action != "APPROVE" && body.Action != "REJECT" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid action"))
		return
	}

	reviewerID, _ := c.Get("user_id")
	reviewer, ok := reviewerID.(uint)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("reviewer not found in context"))
		return
	}

	var request models.UserRequest
	if err := rc.DB.First(&request, requestID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user request not found"))
		return
	}

	if request.Status != models.RequestPending {
		utils.RespondError(c, http.StatusBadRequest, errors.New("this request has already been processed"))
		return
	}

	now := time.Now()
	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		if body.Action == "APPROVE" {
			user := models.User{
				Name:     request.Name,
				Email:    request.Email,
				Password: request.Password,
				Phone:    request.Phone,
				Role:     request.Role,
				IsActive: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			request.Status = models.RequestApproved
		} else {
			request.Status = models.RequestRejected
			request.RejectionReason = body.RejectionReason
		}

		request.ReviewedBy = &reviewer
		request.ReviewedAt = &now
		return tx.Save(&request).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if body.Action == "APPROVE" {
		events.BroadcastStaffNotification(fmt.Sprintf("%s joined the staff as %s", request.Name, request.Role))
		utils.InfoLogger.Printf("User request %d approved: %s (role=%s)", request.ID, request.Email, request.Role)
		utils.RespondJSON(c, http.StatusOK, "User approved and account created", request)
		return
	}
	utils.InfoLogger.Printf("User request %d rejected: %s", request.ID, request.Email)
	utils.RespondJSON(c, http.StatusOK, "User request rejected", request)
}

// DeleteRequest removes a registration request entirely.
func (rc *UserRequestController) DeleteRequest(c *gin.Context) {
	requestID := c.Param("request_id")

	var request models.UserRequest
	if err := rc.DB.First(&request, requestID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user request not found"))
		return
	}

	if err := rc.DB.Delete(&request).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User request deleted", gin.H{"id": request.ID})
}
