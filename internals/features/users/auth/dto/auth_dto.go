package dto

/* =========================================================
   REQUEST DTO
========================================================= */

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=120"`
	UserEmail    string `json:"user_email" validate:"required,email,max=160"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=ADMIN STUDENT COMPANY"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	UserRole     string `json:"user_role"`
}
