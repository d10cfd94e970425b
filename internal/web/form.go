package web

import (
	"net/url"

	cartdomain "minimart/internal/cart/domain"
)

// cartUpdatesFromForm translates a cart-page submission into per-entry
// updates. Only ids already in the cart are considered; an entry with neither
// a quantity field nor a removal flag gets no update, which Replace treats as
// removal.
func cartUpdatesFromForm(cart cartdomain.Cart, form url.Values) map[string]cartdomain.ItemUpdate {
	updates := make(map[string]cartdomain.ItemUpdate, len(cart))

	for pid := range cart {
		if form.Get("remove_"+pid) != "" {
			updates[pid] = cartdomain.ItemUpdate{Remove: true}
			continue
		}
		if qty, ok := form["qty_"+pid]; ok && len(qty) > 0 {
			updates[pid] = cartdomain.ItemUpdate{Quantity: qty[0]}
		}
	}

	return updates
}
