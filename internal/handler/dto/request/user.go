package request

import "decor-rental/internal/usecase/commands"

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

func (r *CreateUserRequest) ToInput() commands.CreateUserInput {
	return commands.CreateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

func (r *UpdateUserRequest) ToInput() commands.UpdateUserInput {
	return commands.UpdateUserInput{
		Name:     r.Name,
		Role:     r.Role,
		Password: r.Password,
	}
}
