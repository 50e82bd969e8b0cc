// controllers/transaction.go
package controllers

import (
	"net/http"

	"salonpos-backend/store"

	"github.com/gin-gonic/gin"
)

// TransactionController exposes the payment-side records: past transactions
// and issued gift cards. Both are read-only; sales at the register do not
// append here (see the checkout notes in DESIGN.md).
type TransactionController struct {
	Store *store.Store
}

func NewTransactionController(s *store.Store) *TransactionController {
	return &TransactionController{Store: s}
}

// GetTransactions retrieves all transactions.
func (tc *TransactionController) GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, tc.Store.Transactions())
}

// GetGiftCards retrieves all gift cards.
func (tc *TransactionController) GetGiftCards(c *gin.Context) {
	c.JSON(http.StatusOK, tc.Store.GiftCards())
}
