// controllers/stylist.go
package controllers

import (
	"net/http"

	"salonpos-backend/store"
	"salonpos-backend/utils"

	"github.com/gin-gonic/gin"
)

type StylistController struct {
	Store *store.Store
}

func NewStylistController(s *store.Store) *StylistController {
	return &StylistController{Store: s}
}

// GetStylists retrieves all stylists.
func (sc *StylistController) GetStylists(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Store.Stylists())
}

// GetStylist retrieves a specific stylist by ID.
func (sc *StylistController) GetStylist(c *gin.Context) {
	stylist, ok := sc.Store.StylistByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Stylist not found")
		return
	}
	c.JSON(http.StatusOK, stylist)
}
