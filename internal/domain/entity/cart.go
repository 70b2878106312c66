package entity

// ItemRef identifies a cart line. A reward line and the regular line for the
// same product are distinct keys and coexist independently.
type ItemRef struct {
	ProductID string `json:"productId"`
	Reward    bool   `json:"reward"`
}

// RegularRef returns the cart key for a plain catalog purchase of a product.
func RegularRef(productID string) ItemRef {
	return ItemRef{ProductID: productID}
}

// RewardRef returns the cart key for a loyalty reward line of a product.
func RewardRef(productID string) ItemRef {
	return ItemRef{ProductID: productID, Reward: true}
}

// CartItem is one line of the working cart. UnitPrice is zero for reward
// lines; OriginalPrice records the catalog price a reward replaced.
type CartItem struct {
	Ref           ItemRef `json:"ref"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
}

// LineTotal is the price contribution of this line.
func (c *CartItem) LineTotal() float64 {
	return c.UnitPrice * float64(c.Quantity)
}

// Clone returns an independent copy of the line.
func (c *CartItem) Clone() *CartItem {
	clone := *c

	return &clone
}

// CloneItems deep-copies a cart, used for order snapshots and saved carts.
func CloneItems(items []*CartItem) []*CartItem {
	if items == nil {
		return nil
	}

	out := make([]*CartItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}

	return out
}
