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

type MealController struct {
	Meals *services.MealService
}

func NewMealController(ms *services.MealService) *MealController {
	return &MealController{Meals: ms}
}

func (mc *MealController) LogMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := mc.Meals.LogMeal(uid, input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal payload"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	uid := c.GetUint("userID")

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		meals, err := mc.Meals.ListMealsByDate(uid, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"meals": meals})
		return
	}

	meals, err := mc.Meals.ListMeals(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.Meals.DeleteMeal(uid, uint(mealID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

// DailySummary totals a day's meals against the stored goal. Defaults to
// today.
func (mc *MealController) DailySummary(c *gin.Context) {
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

	summary, err := mc.Meals.DailySummary(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
