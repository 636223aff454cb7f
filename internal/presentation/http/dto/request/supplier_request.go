package request

// SupplierRequest represents a supplier create or update request
type SupplierRequest struct {
	Code          string  `json:"code" binding:"omitempty,max=50"`
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	IsActive      *bool   `json:"is_active"`
}
