package response

import (
	"time"

	"usuarios-admin/internal/data/entity"
)

// UsuarioResponse mirrors every stored column, password included.
type UsuarioResponse struct {
	ID          int64              `json:"id"`
	Email       string             `json:"email"`
	Password    string             `json:"password"`
	FirstName   string             `json:"nombre"`
	LastName    string             `json:"apellido"`
	AccountType entity.AccountType `json:"tipo_usuario"`
	CreatedAt   time.Time          `json:"fecha_creacion"`
	UpdatedAt   time.Time          `json:"fecha_actualizacion"`
}

func UsuarioToResponse(usuario *entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:          usuario.ID,
		Email:       usuario.Email,
		Password:    usuario.Password,
		FirstName:   usuario.FirstName,
		LastName:    usuario.LastName,
		AccountType: usuario.AccountType,
		CreatedAt:   usuario.CreatedAt,
		UpdatedAt:   usuario.UpdatedAt,
	}
}

func UsuariosToResponse(usuarios []*entity.Usuario) []UsuarioResponse {
	out := make([]UsuarioResponse, len(usuarios))
	for i, usuario := range usuarios {
		out[i] = UsuarioToResponse(usuario)
	}
	return out
}
