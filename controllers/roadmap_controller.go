package controllers

import (
	"errors"
	"net/http"

	"github.com/rishabhc286/Vital-x/services"
	"github.com/rishabhc286/Vital-x/utils"

	"github.com/gin-gonic/gin"
)

func GetRoadmap(c *gin.Context) {
	uid := c.GetUint("userID")

	overview, err := services.GetRoadmap(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func ToggleRoadmapAction(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		StepID      string `json:"step_id" binding:"required"`
		ActionIndex *int   `json:"action_index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ToggleRoadmapAction(uid, input.StepID, *input.ActionIndex); err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown step or action"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "action toggled"})
}
