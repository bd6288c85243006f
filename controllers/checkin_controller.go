package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rishabhc286/Vital-x/services"
	"github.com/rishabhc286/Vital-x/utils"

	"github.com/gin-gonic/gin"
)

func CreateCheckIn(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.CreateCheckIn(uid, input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mood must be a known value and energy/sleep in 1-10"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func ListCheckIns(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	entries, err := services.ListCheckIns(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"check_ins": entries})
}

// GetWellness returns the trailing 7-day wellness score, or a no-data
// placeholder when nothing was logged.
func GetWellness(c *gin.Context) {
	uid := c.GetUint("userID")

	result, err := services.GetWellnessSummary(uid, time.Now())
	if err != nil {
		if errors.Is(err, utils.ErrInsufficientData) {
			c.JSON(http.StatusOK, gin.H{"no_data": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
