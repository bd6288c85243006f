package controllers

import (
	"errors"
	"net/http"

	"github.com/rishabhc286/Vital-x/services"
	"github.com/rishabhc286/Vital-x/utils"

	"github.com/gin-gonic/gin"
)

// RunCalculator derives BMI, BMR, TDEE, goal calories and macros in one
// call. Missing body fields are filled from the stored profile.
func RunCalculator(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CalculatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.RunCalculator(uid, input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func ApplyGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ApplyGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.ApplyDailyGoal(uid, input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func GetGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	goal, err := services.GetDailyGoal(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func ListMacroSplits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"splits": utils.MacroSplitNames()})
}
