package domain

// Line is one (product, quantity) entry in a cart.
type Line struct {
	Product  Sellable
	Quantity int
}

// Cart accumulates purchased lines and a running total. Lines keep insertion
// order; adding a product already in the cart merges into its existing line.
type Cart struct {
	lines      []Line
	index      map[Sellable]int
	totalPrice float64
}

// NewCart constructs an empty Cart.
func NewCart() *Cart {
	return &Cart{index: make(map[Sellable]int)}
}

// AddItem purchases quantity units of item. The item's stock is reduced
// exactly once per successful call; on any failure the cart and the item are
// left unchanged.
func (c *Cart) AddItem(item Sellable, quantity int) error {
	if item == nil {
		return NewInvalidProductError("product", "cannot be nil", nil)
	}
	if quantity <= 0 {
		return NewInvalidProductError("quantity", "must be positive", quantity)
	}
	if err := item.ReduceQuantity(quantity); err != nil {
		return err
	}
	if i, ok := c.index[item]; ok {
		c.lines[i].Quantity += quantity
	} else {
		c.index[item] = len(c.lines)
		c.lines = append(c.lines, Line{Product: item, Quantity: quantity})
	}
	c.totalPrice += item.Price() * float64(quantity)
	return nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// TotalPrice returns the running total: the sum of quantity times unit price
// over all additions.
func (c *Cart) TotalPrice() float64 { return c.totalPrice }

// Items returns a copy of the cart lines in insertion order. Mutating the
// returned slice does not affect the cart.
func (c *Cart) Items() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
