package dto

import "strings"

// CheckoutRequest entrada del formulario de checkout.
// DeliveryMethod y PaymentMethod vacíos toman "delivery" y "mobile".
// Address y Phone vacíos toman los datos del perfil.
type CheckoutRequest struct {
	DeliveryMethod string `json:"delivery_method" validate:"oneof=delivery pickup"`
	PaymentMethod  string `json:"payment_method" validate:"oneof=mobile card cash"`
	Address        string `json:"address" validate:"required_if=DeliveryMethod delivery"`
	Phone          string `json:"phone" validate:"required"`
	Notes          string `json:"notes" validate:"max=500"`
}

// Normalize recorta espacios y pasa los métodos a minúsculas.
func (r *CheckoutRequest) Normalize() {
	r.DeliveryMethod = strings.ToLower(strings.TrimSpace(r.DeliveryMethod))
	r.PaymentMethod = strings.ToLower(strings.TrimSpace(r.PaymentMethod))
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Notes = strings.TrimSpace(r.Notes)
}
