package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Code     string  `json:"code" binding:"omitempty,max=50"`
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Address  *string `json:"address"`
	IsMember bool    `json:"is_member"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Address  *string `json:"address"`
	IsMember *bool   `json:"is_member"`
}

// AdjustPointsRequest represents a manual loyalty point adjustment
type AdjustPointsRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CustomerFilterRequest represents customer filter parameters
type CustomerFilterRequest struct {
	Search      string `form:"search"`
	MembersOnly bool   `form:"members_only"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}
