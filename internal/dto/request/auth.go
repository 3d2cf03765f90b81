package request

type RegisterRequest struct {
	Usuario string `json:"usuario" validate:"required,min=3,max=50"`
	Nome    string `json:"nome" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Senha   string `json:"senha" validate:"required,min=6"`
}

// LoginRequest accepts the login handle or the email in the username field.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
