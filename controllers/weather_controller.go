package controllers

import (
	"net/http"
	"strconv"

	"github.com/rishabhc286/Vital-x/services"

	"github.com/gin-gonic/gin"
)

type WeatherController struct {
	Weather *services.WeatherService
}

func NewWeatherController(ws *services.WeatherService) *WeatherController {
	return &WeatherController{Weather: ws}
}

// GetEnvironment returns the heat/air-quality report for ?lat=..&lon=..
func (wc *WeatherController) GetEnvironment(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat is required"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon is required"})
		return
	}

	report, err := wc.Weather.GetEnvironmentReport(lat, lon)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
