package dto

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@institute.edu"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}
