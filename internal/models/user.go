package models

import (
	"github.com/uptrace/bun"
)

const RoleAdmin = "admin"

// User is registered without a password: login matches on (name, email) only,
// the same contract the previous system exposed.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID      int64  `bun:"id,pk,autoincrement" json:"id"`
	Name    string `bun:"name,notnull" json:"name"`
	Surname string `bun:"surname,notnull" json:"surname"`
	Email   string `bun:"email,unique,notnull" json:"email"`
	Age     int    `bun:"age,notnull" json:"age"`
	Role    string `bun:"role,notnull,default:'user'" json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
