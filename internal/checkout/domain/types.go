package domain

// LineItem is a derived view, never persisted on its own: a cart quantity
// joined with a product row read fresh from storage at view time.
type LineItem struct {
	ProductID int64
	Name      string
	UnitPrice int64
	Quantity  int64
	Subtotal  int64
}

// Quote is the reconciled view of a cart: priced line items plus their total.
type Quote struct {
	Items []LineItem
	Total int64
}

// Customer holds the fields the checkout form collects. All three are
// required, non-empty after trimming.
type Customer struct {
	Name    string
	Phone   string
	Address string
}

// Receipt is what a completed checkout hands back to the visitor.
type Receipt struct {
	OrderID int64
	Total   int64
}
