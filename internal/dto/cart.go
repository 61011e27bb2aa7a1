package dto

import "sort"

type CartKey struct {
	ProductID string
	Size      string
}

type CartLine struct {
	Quantity int
	Price    int64
}

// Cart is the client-held (product, size) -> quantity mapping. The server
// never stores it; it only turns into checkout line items.
type Cart map[CartKey]CartLine

// Items returns the cart's line items in a stable order, skipping lines
// with no quantity.
func (c Cart) Items() []CheckoutItem {
	items := make([]CheckoutItem, 0, len(c))
	for key, line := range c {
		if line.Quantity <= 0 {
			continue
		}
		items = append(items, CheckoutItem{
			ProductID: key.ProductID,
			Size:      key.Size,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ProductID != items[j].ProductID {
			return items[i].ProductID < items[j].ProductID
		}
		return items[i].Size < items[j].Size
	})
	return items
}
