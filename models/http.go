package models

// RegisterRequest is the body of POST /auth/register. The email format is
// checked separately, after the uniqueness lookup.
//
// Fields are pointers so that an absent field ("is required") can be told
// apart from an empty one ("cannot be empty").
type RegisterRequest struct {
	Email    *string `json:"email" validate:"required,notempty"`
	Name     *string `json:"name" validate:"required,notempty"`
	Password *string `json:"password" validate:"required,notempty,min=8,max=15"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    *string `json:"email" validate:"required,notempty,email"`
	Password *string `json:"password" validate:"required,notempty"`
}

// UpdateProfileRequest is the body of PATCH /profile. Absent fields are left
// untouched.
type UpdateProfileRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitnil,notempty,email"`
	Name     *string `json:"name,omitempty" validate:"omitnil,notempty"`
	Password *string `json:"password,omitempty" validate:"omitnil,notempty,min=8,max=15"`
}

// TodoRequest is the body of POST /todo and PUT /todo/{id}.
type TodoRequest struct {
	Title       *string    `json:"title" validate:"required,notempty"`
	Description *string    `json:"description"`
	Status      TodoStatus `json:"status" validate:"oneof=PENDING COMPLETED"`
}
