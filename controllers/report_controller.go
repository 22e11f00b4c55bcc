package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yukirp/NutriEmp/services"
)

type ReportController struct {
	reports *services.ReportService
	users   *services.UserService
}

func NewReportController(reports *services.ReportService, users *services.UserService) *ReportController {
	return &ReportController{reports: reports, users: users}
}

// Daily serves /api/users/:id/summary?date=YYYY-MM-DD (default: today).
func (rc *ReportController) Daily(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid user ID format"})
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(400, gin.H{"message": "Invalid date format"})
		return
	}

	user, err := rc.users.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch summary"})
		return
	}
	if user == nil {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}

	report, err := rc.reports.Daily(c.Request.Context(), user, date)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch summary"})
		return
	}
	c.JSON(200, report)
}

// Weekly serves /api/users/:id/reports/weekly: the trailing 7 days ending
// today, one labeled entry per day.
func (rc *ReportController) Weekly(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid user ID format"})
		return
	}

	user, err := rc.users.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch report"})
		return
	}
	if user == nil {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}

	week, err := rc.reports.Weekly(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch report"})
		return
	}
	c.JSON(200, week)
}
