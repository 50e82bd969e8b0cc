// controllers/customer.go
package controllers

import (
	"net/http"

	"salonpos-backend/services"
	"salonpos-backend/store"
	"salonpos-backend/utils"

	"github.com/gin-gonic/gin"
)

// CustomerController serves the customers page: searchable list, detail, and
// per-customer visit history.
type CustomerController struct {
	Store *store.Store
}

func NewCustomerController(s *store.Store) *CustomerController {
	return &CustomerController{Store: s}
}

// GetCustomers retrieves customers matching the optional search term.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	term := c.Query("search")
	c.JSON(http.StatusOK, services.FilterCustomers(cc.Store.Customers(), term))
}

// GetCustomer retrieves a specific customer by ID.
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customer, ok := cc.Store.CustomerByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetCustomerAppointments retrieves a customer's appointment history.
func (cc *CustomerController) GetCustomerAppointments(c *gin.Context) {
	customerID := c.Param("id")
	if _, ok := cc.Store.CustomerByID(customerID); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, services.CustomerAppointments(cc.Store, customerID))
}
