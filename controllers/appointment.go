// controllers/appointment.go
package controllers

import (
	"net/http"
	"time"

	"salonpos-backend/services"
	"salonpos-backend/store"
	"salonpos-backend/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentController serves the appointments page: a list filtered by
// calendar day and customer name.
type AppointmentController struct {
	Store *store.Store
}

func NewAppointmentController(s *store.Store) *AppointmentController {
	return &AppointmentController{Store: s}
}

// GetAppointments retrieves appointments, optionally narrowed by a
// date=YYYY-MM-DD query and a search term matched against the customer name.
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	term := c.Query("search")
	c.JSON(http.StatusOK, services.FilterAppointments(ac.Store, date, term))
}
