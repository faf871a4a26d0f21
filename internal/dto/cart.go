package dto

type AddToCartRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Color     string `json:"color"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type ApplyCouponRequest struct {
	Coupon string `json:"coupon" binding:"required"`
}
