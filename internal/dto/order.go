package dto

type ShippingAddressRequest struct {
	Alias      string `json:"alias"`
	Details    string `json:"details" binding:"required"`
	Phone      string `json:"phone" binding:"omitempty,min=10,max=15"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type CreateOrderRequest struct {
	ShippingAddress ShippingAddressRequest `json:"shipping_address" binding:"required"`
}
