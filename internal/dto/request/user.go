package request

// UpdateUserRequest carries a partial update: only non-nil fields are
// applied, omitted fields keep their prior values.
type UpdateUserRequest struct {
	Usuario *string `json:"usuario,omitempty" validate:"omitempty,min=3,max=50"`
	Nome    *string `json:"nome,omitempty" validate:"omitempty,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Senha   *string `json:"senha,omitempty" validate:"omitempty,min=6"`
}
