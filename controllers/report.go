// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"salonpos-backend/services"
	"salonpos-backend/store"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct {
	Store *store.Store
}

func NewReportController(s *store.Store) *ReportController {
	return &ReportController{Store: s}
}

// GetReportAnalytics returns the month-over-month analytics summary.
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, services.BuildAnalytics(rc.Store, time.Now()))
}
