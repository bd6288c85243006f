package controllers

import (
	"net/http"
	"strconv"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/services"

	"github.com/gin-gonic/gin"
)

func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	alerts, err := services.ListAlerts(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func MarkAlertRead(c *gin.Context) {
	uid := c.GetUint("userID")

	alertID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	if err := services.MarkAlertRead(uid, uint(alertID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "alert marked read"})
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// ToggleNotifications enables or disables push across all of the user's
// registered devices.
func ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}
