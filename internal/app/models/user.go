package models

import "time"

type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Username     string     `json:"username" bson:"username"`
	FullName     string     `json:"fullName" bson:"fullName"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"passwordHash"`
	Role         string     `json:"role" bson:"role"`
	Department   string     `json:"department,omitempty" bson:"department,omitempty"`
	IsActive     bool       `json:"isActive" bson:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	TimeModel    `bson:",inline"`
}
