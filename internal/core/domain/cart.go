package domain

import "math"

// ShippingMethod is a delivery option offered at checkout.
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingUrgent   ShippingMethod = "urgent"
)

var shippingCosts = map[ShippingMethod]float64{
	ShippingStandard: 15.90,
	ShippingExpress:  24.90,
	ShippingUrgent:   49.90,
}

// Cost returns the flat shipping fee for the method.
func (m ShippingMethod) Cost() (float64, bool) {
	c, ok := shippingCosts[m]
	return c, ok
}

// CartItem is a line in a cart. Price is a snapshot taken from the catalog
// when the item was added.
type CartItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart holds a buyer's items and favorites.
type Cart struct {
	Items     []CartItem `json:"items"`
	Favorites []int64    `json:"favorites"`
}

// Count is the total number of units in the cart.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity, rounded to cents.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return RoundCents(sum)
}

func (c *Cart) indexOf(productID int64) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add merges quantity into an existing line or appends a new one.
func (c *Cart) Add(item CartItem) {
	if i := c.indexOf(item.ProductID); i >= 0 {
		c.Items[i].Quantity += item.Quantity
		return
	}
	c.Items = append(c.Items, item)
}

// Quantity returns the current quantity of a product in the cart.
func (c *Cart) Quantity(productID int64) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// SetQuantity updates a line; a quantity of zero removes it.
func (c *Cart) SetQuantity(productID int64, qty int) error {
	i := c.indexOf(productID)
	if i < 0 {
		return ErrCartItemNotFound
	}
	if qty <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return nil
	}
	c.Items[i].Quantity = qty
	return nil
}

// Remove drops a line from the cart.
func (c *Cart) Remove(productID int64) error {
	return c.SetQuantity(productID, 0)
}

// ToggleFavorite adds or removes a product id and reports the new state.
func (c *Cart) ToggleFavorite(productID int64) bool {
	for i, id := range c.Favorites {
		if id == productID {
			c.Favorites = append(c.Favorites[:i], c.Favorites[i+1:]...)
			return false
		}
	}
	c.Favorites = append(c.Favorites, productID)
	return true
}

// Quote is the priced summary of a cart for a shipping method.
type Quote struct {
	Subtotal       float64        `json:"subtotal"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	ShippingCost   float64        `json:"shipping_cost"`
	Total          float64        `json:"total"`
}

// QuoteFor prices the cart with the given shipping method.
func (c *Cart) QuoteFor(method ShippingMethod) (Quote, error) {
	cost, ok := method.Cost()
	if !ok {
		return Quote{}, ErrInvalidShippingMethod
	}
	sub := c.Subtotal()
	return Quote{
		Subtotal:       sub,
		ShippingMethod: method,
		ShippingCost:   cost,
		Total:          RoundCents(sub + cost),
	}, nil
}

// RoundCents rounds an amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
