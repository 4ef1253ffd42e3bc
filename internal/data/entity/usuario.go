package entity

type AccountType string

const (
	AccountTypeAdmin AccountType = "ADMIN"
	AccountTypeUser  AccountType = "USER"
)

// Usuario is a row of the usuarios table.
//
// Password is stored exactly as the client sent it. It is never hashed and
// login compares it as plain text, which is not suitable for production.
type Usuario struct {
	Base
	Email       string      `db:"email"`
	Password    string      `db:"password"`
	FirstName   string      `db:"nombre"`
	LastName    string      `db:"apellido"`
	AccountType AccountType `db:"tipo_usuario"`
}
