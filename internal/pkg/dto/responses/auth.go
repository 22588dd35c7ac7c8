package responses

import "time"

type RegisterUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginUser struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserInfo  `json:"user"`
}

type UserInfo struct {
	UserID     string     `json:"userId"`
	Username   string     `json:"username"`
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Department string     `json:"department,omitempty"`
	LastLogin  *time.Time `json:"lastLoginAt,omitempty"`
}
