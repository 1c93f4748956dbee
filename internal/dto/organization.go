package dto

type RegisterOrganizationRequestDTO struct {
	Name        string `json:"name" example:"Green Loop Recyclers" validate:"required,min=3,max=100"`
	Email       string `json:"email" example:"ops@greenloop.example" validate:"required,email"`
	Phone       string `json:"phone" example:"+911234567890" validate:"required"`
	Address     string `json:"address" example:"12 Industrial Estate" validate:"required"`
	Description string `json:"description,omitempty"`
	WasteTypes  string `json:"waste_types" example:"metal,electronics" validate:"required"`
}

type OrganizationResponseDTO struct {
	ID          string `json:"id" example:"9b8e3f21-40cc-4c2a-8d30-1f4a0d6e8b72"`
	Name        string `json:"name" example:"Green Loop Recyclers"`
	Email       string `json:"email" example:"ops@greenloop.example"`
	Phone       string `json:"phone" example:"+911234567890"`
	Address     string `json:"address" example:"12 Industrial Estate"`
	Description string `json:"description,omitempty"`
	WasteTypes  string `json:"waste_types" example:"metal,electronics"`
	CreatedAt   string `json:"created_at" example:"2025-04-10T16:09:57+05:30"`
}
