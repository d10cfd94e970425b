package domain

import (
	"sort"
	"strconv"
)

// Cart maps a product id, rendered as decimal text, to a requested quantity.
// It lives in the visitor's session cookie and is never written to the
// database. Quantities are always positive: removal means deleting the entry.
type Cart map[string]int64

// ItemUpdate describes what a replace-all cart submission wants done with one
// existing entry. Quantity stays a raw string because the form sends text and
// unparseable input drops the entry rather than erroring.
type ItemUpdate struct {
	Remove   bool
	Quantity string
}

// Add increments the quantity for productID, creating the entry if absent.
// An empty id or non-positive quantity leaves the cart untouched.
func (c Cart) Add(productID string, qty int64) {
	if productID == "" || qty <= 0 {
		return
	}
	c[productID] = c[productID] + qty
}

// Replace builds a brand-new cart from the current entries and the submitted
// updates. This is a full replace, not a patch: an entry with no update, a
// removal flag, or a quantity that fails to parse as a positive integer is
// dropped. Updates for ids not already in the cart are ignored.
func (c Cart) Replace(updates map[string]ItemUpdate) Cart {
	next := Cart{}

	for pid := range c {
		upd, ok := updates[pid]
		if !ok || upd.Remove {
			continue
		}

		qty, err := strconv.ParseInt(upd.Quantity, 10, 64)
		if err != nil || qty <= 0 {
			continue
		}

		next[pid] = qty
	}

	return next
}

// ProductIDs returns the distinct numeric product ids in the cart, ascending.
// Keys that do not parse as integers are skipped; they can never match a
// product row anyway.
func (c Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c))
	for pid := range c {
		id, err := strconv.ParseInt(pid, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Quantity returns the requested quantity for a numeric product id, or 0 if
// the id is not in the cart.
func (c Cart) Quantity(productID int64) int64 {
	return c[strconv.FormatInt(productID, 10)]
}

func (c Cart) Empty() bool {
	return len(c) == 0
}
