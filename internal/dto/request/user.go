package request

type UpdateProfileRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}
