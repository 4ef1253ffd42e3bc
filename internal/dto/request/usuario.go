package request

// UsuarioRequest is the full payload accepted by create and PUT.
type UsuarioRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required,max=255"`
	FirstName   string `json:"nombre" validate:"required,max=100"`
	LastName    string `json:"apellido" validate:"required,max=100"`
	AccountType string `json:"tipo_usuario" validate:"required,oneof=ADMIN USER"`
}

// UsuarioPatchRequest is the PATCH payload. Nil fields keep their stored
// value; the merged record is validated as a UsuarioRequest.
type UsuarioPatchRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FirstName   *string `json:"nombre"`
	LastName    *string `json:"apellido"`
	AccountType *string `json:"tipo_usuario"`
}

// Apply overlays the non-nil fields of p onto base.
func (p UsuarioPatchRequest) Apply(base UsuarioRequest) UsuarioRequest {
	if p.Email != nil {
		base.Email = *p.Email
	}
	if p.Password != nil {
		base.Password = *p.Password
	}
	if p.FirstName != nil {
		base.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		base.LastName = *p.LastName
	}
	if p.AccountType != nil {
		base.AccountType = *p.AccountType
	}
	return base
}
