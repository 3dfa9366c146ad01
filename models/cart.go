package models

// CartItem mirrors one upstream cart line. ProductID is a weak reference
// resolved by the upstream API; price fields are denormalized onto the line
// so totals can be derived without another product fetch.
type CartItem struct {
	ID            string  `json:"_id"`
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Size          string  `json:"size"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	DiscountRate  float64 `json:"discountRate"`
	SelectedImage string  `json:"selectedImage,omitempty"`
}

// Cart is a mirror of the upstream cart, never locally authoritative. It is
// replaced wholesale by a refetch after every mutation.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Count returns the sum of line quantities.
func (c Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of discounted line prices times quantities,
// recomputed from raw prices on every call.
func (c Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += DiscountedPrice(item.Price, item.DiscountRate) * item.Quantity
	}
	return total
}
