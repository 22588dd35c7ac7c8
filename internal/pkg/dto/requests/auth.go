package requests

type RegisterUser struct {
	Username   string `json:"username" validate:"required,username"`
	FullName   string `json:"fullName" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,password"`
	Role       string `json:"role" validate:"required,staff_role"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
