package dto

// SignupRequest mirrors the signup form. The form layer is responsible for
// requiring at least one skill, enforced here with validation tags.
type SignupRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills" validate:"required,min=1"`
}

// LoginRequest carries the email for the demo login. The password field is
// accepted for form compatibility but never checked.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
