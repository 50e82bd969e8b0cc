// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"salonpos-backend/services"
	"salonpos-backend/store"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Store *store.Store
}

func NewDashboardController(s *store.Store) *DashboardController {
	return &DashboardController{Store: s}
}

// GetDashboardOverview returns today's summary, computed fresh per request.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	c.JSON(http.StatusOK, services.BuildDashboard(dc.Store, time.Now()))
}
