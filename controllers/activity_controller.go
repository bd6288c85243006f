package controllers

import (
	"net/http"
	"time"

	"github.com/rishabhc286/Vital-x/services"

	"github.com/gin-gonic/gin"
)

func UpsertActivity(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.UpsertDailyActivity(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity":        entry,
		"calories_burned": services.EstimateDailyBurn(entry),
	})
}

func GetActivity(c *gin.Context) {
	uid := c.GetUint("userID")

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	entry, err := services.GetDailyActivity(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity":         entry,
		"exercise_minutes": services.TotalExerciseMinutes(entry),
		"calories_burned":  services.EstimateDailyBurn(entry),
	})
}
