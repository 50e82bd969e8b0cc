// controllers/pos.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"salonpos-backend/models"
	"salonpos-backend/services"
	"salonpos-backend/store"
	"salonpos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POSController drives the register: the orderable catalog, the single cart,
// the optional customer on the order, and checkout. The cart is the only
// mutable state the server holds.
type POSController struct {
	Store *store.Store
	Cart  *services.Cart
}

func NewPOSController(s *store.Store) *POSController {
	return &POSController{
		Store: s,
		Cart:  services.NewCart(),
	}
}

// AddCartItemInput defines the expected JSON structure for adding an item
type AddCartItemInput struct {
	ID   string          `json:"id" binding:"required"`
	Type models.ItemType `json:"type" binding:"required,oneof=service product"`
}

// SetQuantityInput defines the expected JSON structure for changing a line
type SetQuantityInput struct {
	ID       string          `json:"id" binding:"required"`
	Type     models.ItemType `json:"type" binding:"required,oneof=service product"`
	Quantity int             `json:"quantity"`
}

// SelectCustomerInput defines the expected JSON structure for attaching a customer
type SelectCustomerInput struct {
	CustomerID string `json:"customerId" binding:"required"`
}

// CheckoutInput defines the expected JSON structure for finalizing the order
type CheckoutInput struct {
	Method string `json:"method" binding:"required,oneof=cash card gift-card"`
}

// GetCatalog retrieves the orderable services and in-stock products matching
// the optional search term.
func (pc *POSController) GetCatalog(c *gin.Context) {
	term := c.Query("search")
	c.JSON(http.StatusOK, services.Catalog(pc.Store, term))
}

// GetCart retrieves the current order with freshly computed totals.
func (pc *POSController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, pc.cartView())
}

// AddCartItem adds one unit of a service or product to the cart.
func (pc *POSController) AddCartItem(c *gin.Context) {
	var input AddCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name, unitPrice, ok := pc.lookupItem(input.ID, input.Type)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("%s not found: %s", itemLabel(input.Type), input.ID))
		return
	}

	pc.Cart.AddItem(input.ID, input.Type, name, unitPrice)
	c.JSON(http.StatusOK, pc.cartView())
}

// SetCartItemQuantity replaces a line's quantity; zero or less removes it.
func (pc *POSController) SetCartItemQuantity(c *gin.Context) {
	var input SetQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	pc.Cart.SetQuantity(input.ID, input.Type, input.Quantity)
	c.JSON(http.StatusOK, pc.cartView())
}

// RemoveCartItem deletes the line matching the path's type and id. Removing
// a line that is not in the cart is a no-op, not an error.
func (pc *POSController) RemoveCartItem(c *gin.Context) {
	itemType := models.ItemType(c.Param("type"))
	if itemType != models.ItemTypeService && itemType != models.ItemTypeProduct {
		utils.RespondWithError(c, http.StatusBadRequest, "Item type must be service or product")
		return
	}

	pc.Cart.RemoveItem(c.Param("id"), itemType)
	c.JSON(http.StatusOK, pc.cartView())
}

// SelectCustomer attaches a customer to the order.
func (pc *POSController) SelectCustomer(c *gin.Context) {
	var input SelectCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, ok := pc.Store.CustomerByID(input.CustomerID); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	pc.Cart.SetCustomer(input.CustomerID)
	c.JSON(http.StatusOK, pc.cartView())
}

// ClearCustomer detaches the customer from the order.
func (pc *POSController) ClearCustomer(c *gin.Context) {
	pc.Cart.SetCustomer("")
	c.JSON(http.StatusOK, pc.cartView())
}

// Checkout finalizes the order: it surfaces a confirmation and clears the
// cart and selected customer. No transaction is recorded, no stock is
// decremented, and no gift card is debited; the register is a demo surface
// over fixed data.
func (pc *POSController) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if pc.Cart.Size() == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Cart is empty")
		return
	}

	totals := pc.Cart.Totals()
	confirmation := gin.H{
		"confirmationId": uuid.New().String(),
		"reference":      "POS-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6),
		"paymentMethod":  input.Method,
		"subtotal":       totals.Subtotal,
		"tax":            totals.Tax,
		"total":          totals.Total,
		"message":        fmt.Sprintf("Payment processed via %s. Total: $%.2f", input.Method, totals.Total),
	}
	if customerID := pc.Cart.CustomerID(); customerID != "" {
		confirmation["customerId"] = customerID
	}

	pc.Cart.Clear()

	c.JSON(http.StatusOK, confirmation)
}

func (pc *POSController) lookupItem(id string, itemType models.ItemType) (name string, unitPrice float64, ok bool) {
	switch itemType {
	case models.ItemTypeService:
		if service, found := pc.Store.ServiceByID(id); found {
			return service.Name, service.Price, true
		}
	case models.ItemTypeProduct:
		if product, found := pc.Store.ProductByID(id); found {
			return product.Name, product.Price, true
		}
	}
	return "", 0, false
}

func (pc *POSController) cartView() gin.H {
	lines := pc.Cart.Lines()
	totals := pc.Cart.Totals()
	view := gin.H{
		"items":     lines,
		"itemCount": len(lines),
		"subtotal":  totals.Subtotal,
		"tax":       totals.Tax,
		"total":     totals.Total,
	}
	if customerID := pc.Cart.CustomerID(); customerID != "" {
		view["customerId"] = customerID
	}
	return view
}

func itemLabel(t models.ItemType) string {
	if t == models.ItemTypeProduct {
		return "Product"
	}
	return "Service"
}
