package services

import (
	"math"
	"testing"

	"salonpos-backend/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCartTotals(t *testing.T) {
	cart := NewCart()
	cart.AddItem("1", models.ItemTypeService, "Haircut & Style", 45.00)
	cart.AddItem("4", models.ItemTypeProduct, "Nail Polish", 14.99)
	cart.SetQuantity("4", models.ItemTypeProduct, 3)

	totals := cart.Totals()
	wantSubtotal := 45.00 + 3*14.99
	if !almostEqual(totals.Subtotal, wantSubtotal) {
		t.Errorf("subtotal = %v, want %v", totals.Subtotal, wantSubtotal)
	}
	if !almostEqual(totals.Tax, wantSubtotal*TaxRate) {
		t.Errorf("tax = %v, want %v", totals.Tax, wantSubtotal*TaxRate)
	}
	if !almostEqual(totals.Total, wantSubtotal*1.08) {
		t.Errorf("total = %v, want %v", totals.Total, wantSubtotal*1.08)
	}
}

func TestCartTotalsEmpty(t *testing.T) {
	totals := NewCart().Totals()
	if totals.Subtotal != 0 || totals.Tax != 0 || totals.Total != 0 {
		t.Errorf("empty cart totals = %+v, want all zero", totals)
	}
}

func TestCartAddItemMergesDuplicateLines(t *testing.T) {
	cart := NewCart()
	cart.AddItem("1", models.ItemTypeService, "Haircut & Style", 45.00)
	cart.AddItem("1", models.ItemTypeService, "Haircut & Style", 45.00)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", lines[0].Quantity)
	}
}

func TestCartSharedIDAcrossTypes(t *testing.T) {
	// A service and a product may share a textual id without colliding.
	cart := NewCart()
	cart.AddItem("1", models.ItemTypeService, "Haircut & Style", 45.00)
	cart.AddItem("1", models.ItemTypeProduct, "Shampoo", 24.99)

	if len(cart.Lines()) != 2 {
		t.Fatalf("got %d lines, want 2", len(cart.Lines()))
	}

	cart.RemoveItem("1", models.ItemTypeProduct)
	lines := cart.Lines()
	if len(lines) != 1 || lines[0].Type != models.ItemTypeService {
		t.Errorf("remove by (id, type) affected the wrong line: %+v", lines)
	}
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem("1", models.ItemTypeService, "Haircut & Style", 45.00)
	cart.SetQuantity("1", models.ItemTypeService, 0)

	if len(cart.Lines()) != 0 {
		t.Fatalf("line still present after SetQuantity 0")
	}
	if totals := cart.Totals(); totals.Total != 0 {
		t.Errorf("removed line still contributes to totals: %+v", totals)
	}
}

func TestCartInsertionOrderPreserved(t *testing.T) {
	cart := NewCart()
	cart.AddItem("2", models.ItemTypeProduct, "Conditioner", 24.99)
	cart.AddItem("1", models.ItemTypeService, "Haircut & Style", 45.00)
	cart.AddItem("8", models.ItemTypeService, "Facial", 80.00)
	// Re-adding an existing item must not move it.
	cart.AddItem("2", models.ItemTypeProduct, "Conditioner", 24.99)

	lines := cart.Lines()
	want := []string{"Conditioner", "Haircut & Style", "Facial"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, name := range want {
		if lines[i].Name != name {
			t.Errorf("line %d = %q, want %q", i, lines[i].Name, name)
		}
	}
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem("1", models.ItemTypeService, "Haircut & Style", 45.00)
	cart.RemoveItem("99", models.ItemTypeService)
	cart.SetQuantity("99", models.ItemTypeProduct, 5)

	if len(cart.Lines()) != 1 {
		t.Errorf("no-op operations changed the cart: %+v", cart.Lines())
	}
}

func TestCartClearDropsLinesAndCustomer(t *testing.T) {
	cart := NewCart()
	cart.AddItem("1", models.ItemTypeService, "Haircut & Style", 45.00)
	cart.SetCustomer("2")

	cart.Clear()

	if cart.Size() != 0 {
		t.Errorf("cart not empty after Clear")
	}
	if cart.CustomerID() != "" {
		t.Errorf("customer still selected after Clear")
	}
}
