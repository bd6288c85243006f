package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rishabhc286/Vital-x/services"
	"github.com/rishabhc286/Vital-x/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	AI *services.AIService
}

func NewChatController(ai *services.AIService) *ChatController {
	return &ChatController{AI: ai}
}

func (cc *ChatController) SendMessage(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, emergency, err := cc.AI.Chat(uid, input.Message)
	if err != nil {
		if errors.Is(err, services.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "chat limit reached, try again later"})
			return
		}
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply, "emergency": emergency})
}

func (cc *ChatController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	history, err := cc.AI.ChatHistory(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": history})
}

func (cc *ChatController) Clear(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := cc.AI.ClearChatHistory(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "chat history cleared"})
}
