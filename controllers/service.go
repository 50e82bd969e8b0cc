// controllers/service.go
package controllers

import (
	"net/http"

	"salonpos-backend/services"
	"salonpos-backend/store"
	"salonpos-backend/utils"

	"github.com/gin-gonic/gin"
)

// ServiceController serves the services page list with resolved category
// badges.
type ServiceController struct {
	Store *store.Store
}

func NewServiceController(s *store.Store) *ServiceController {
	return &ServiceController{Store: s}
}

// GetServices retrieves services matching the optional search term.
func (sc *ServiceController) GetServices(c *gin.Context) {
	term := c.Query("search")
	c.JSON(http.StatusOK, services.FilterServices(sc.Store, term))
}

// GetService retrieves a specific service by ID.
func (sc *ServiceController) GetService(c *gin.Context) {
	service, ok := sc.Store.ServiceByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, services.ServiceRow{
		Service:      service,
		CategoryName: services.CategoryDisplayName(sc.Store, service.Category),
	})
}

// GetCategories retrieves all categories.
func (sc *ServiceController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Store.Categories())
}
