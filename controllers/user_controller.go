package controllers

import (
	"errors"
	"net/http"

	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/services"
	"github.com/rishabhc286/Vital-x/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := services.GetUserProfile(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpsertHealthProfile(uid, input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "bmi": profile.BMI, "bmi_category": profile.BMICategory})
}

type OnboardingInput struct {
	Profile    services.ProfileInput `json:"profile" binding:"required"`
	MFAEnabled bool                  `json:"mfa_enabled"`
}

func CompleteOnboarding(c *gin.Context) {
	uid := c.GetUint("userID")

	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.CompleteOnboarding(uid, input.Profile, input.MFAEnabled)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "onboarding complete", "bmi": profile.BMI, "bmi_category": profile.BMICategory})
}

func ListAvatars(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"avatars": models.AvatarPresets})
}

func SetAvatar(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		AvatarID string `json:"avatar_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetAvatar(uid, input.AvatarID); err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown avatar"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "avatar updated"})
}

func DeleteAccount(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DeleteAccount(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
