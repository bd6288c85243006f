package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rishabhc286/Vital-x/services"

	"github.com/gin-gonic/gin"
)

type DiagnosisController struct {
	Diagnosis *services.DiagnosisService
}

func NewDiagnosisController(ds *services.DiagnosisService) *DiagnosisController {
	return &DiagnosisController{Diagnosis: ds}
}

func (dc *DiagnosisController) SubmitAssessment(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.AssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := dc.Diagnosis.SubmitAssessment(uid, input)
	if err != nil {
		if errors.Is(err, services.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "assessment limit reached, try again later"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (dc *DiagnosisController) ListAssessments(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	records, err := dc.Diagnosis.ListAssessments(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": records})
}
