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

func LogCycle(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CycleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cycle, err := services.LogCycle(uid, input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cycle)
}

func ListCycles(c *gin.Context) {
	uid := c.GetUint("userID")

	cycles, err := services.ListCycles(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cycles": cycles})
}

func GetCycleOverview(c *gin.Context) {
	uid := c.GetUint("userID")

	overview, err := services.GetCycleOverview(uid, time.Now())
	if err != nil {
		if errors.Is(err, utils.ErrInsufficientData) {
			c.JSON(http.StatusOK, gin.H{"no_data": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetCycleCalendar classifies each day of ?year=YYYY&month=M for the
// calendar view. Defaults to the current month.
func GetCycleCalendar(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	days, err := services.GetCycleCalendar(uid, year, time.Month(monthNum))
	if err != nil {
		if errors.Is(err, utils.ErrInsufficientData) {
			c.JSON(http.StatusOK, gin.H{"no_data": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}
