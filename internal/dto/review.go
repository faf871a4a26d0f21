package dto

type CreateReviewRequest struct {
	Title  string `json:"title" binding:"omitempty,max=100"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Title  string `json:"title" binding:"omitempty,max=100"`
	Rating int    `json:"rating" binding:"omitempty,min=1,max=5"`
}
