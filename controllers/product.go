// controllers/product.go
package controllers

import (
	"net/http"

	"salonpos-backend/services"
	"salonpos-backend/store"
	"salonpos-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Store *store.Store
}

func NewProductController(s *store.Store) *ProductController {
	return &ProductController{Store: s}
}

// GetProducts retrieves products matching the optional search term.
func (pc *ProductController) GetProducts(c *gin.Context) {
	term := c.Query("search")
	c.JSON(http.StatusOK, services.FilterProducts(pc.Store, term))
}

// GetProduct retrieves a specific product by ID.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, ok := pc.Store.ProductByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, services.ProductRow{
		Product:      product,
		CategoryName: services.CategoryDisplayName(pc.Store, product.Category),
	})
}
