package response

import "usuarios-admin/internal/data/entity"

// LoginUser is the user summary returned on login. apellido is left out.
type LoginUser struct {
	ID          int64              `json:"id"`
	Email       string             `json:"email"`
	FirstName   string             `json:"nombre"`
	AccountType entity.AccountType `json:"tipo"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

func LoginToResponse(usuario *entity.Usuario, message string) LoginResponse {
	return LoginResponse{
		Message: message,
		User: LoginUser{
			ID:          usuario.ID,
			Email:       usuario.Email,
			FirstName:   usuario.FirstName,
			AccountType: usuario.AccountType,
		},
	}
}
