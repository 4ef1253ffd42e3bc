package entity

import (
	"time"
)

type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"fecha_creacion"`
	UpdatedAt time.Time `db:"fecha_actualizacion"`
}
