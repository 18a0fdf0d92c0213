package domain

import "time"

// Order is the confirmation produced by a simulated checkout.
type Order struct {
	ID              string         `json:"id" bson:"_id"`
	SubjectID       string         `json:"subject_id" bson:"subject_id"`
	Items           []CartItem     `json:"items" bson:"items"`
	Subtotal        float64        `json:"subtotal" bson:"subtotal"`
	ShippingMethod  ShippingMethod `json:"shipping_method" bson:"shipping_method"`
	ShippingCost    float64        `json:"shipping_cost" bson:"shipping_cost"`
	Total           float64        `json:"total" bson:"total"`
	ShippingAddress string         `json:"shipping_address" bson:"shipping_address"`
	CardLast4       string         `json:"card_last4" bson:"card_last4"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
}
