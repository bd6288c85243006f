package controllers

import (
	"net/http"
	"strconv"

	"github.com/rishabhc286/Vital-x/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(ds *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: ds}
}

func (dc *DashboardController) GetDashboard(c *gin.Context) {
	uid := c.GetUint("userID")

	out, err := dc.Dashboard.GetDashboard(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// SnapshotTimeline records today's lifestyle snapshot for the trend chart.
func (dc *DashboardController) SnapshotTimeline(c *gin.Context) {
	uid := c.GetUint("userID")

	entry, err := dc.Dashboard.RecordTimelineSnapshot(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (dc *DashboardController) GetTimeline(c *gin.Context) {
	uid := c.GetUint("userID")

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	entries, err := dc.Dashboard.ListTimeline(uid, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeline": entries})
}
