// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// RegisterHouseholdRequest represents the request body for household registration.
type RegisterHouseholdRequest struct {
	Name       string `json:"name" binding:"required"`
	Passphrase string `json:"passphrase" binding:"required,min=8"`
}

// LoginHouseholdRequest represents the request body for household login.
type LoginHouseholdRequest struct {
	Name       string `json:"name" binding:"required"`
	Passphrase string `json:"passphrase" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse represents the response for token refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// HouseholdResponse represents a household in API responses.
type HouseholdResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse represents the response for registration and login.
type AuthResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	Household    HouseholdResponse `json:"household"`
}

// ToAuthResponse converts tokens and a household entity to an AuthResponse.
func ToAuthResponse(accessToken, refreshToken string, household *entity.Household) AuthResponse {
	return AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Household: HouseholdResponse{
			ID:        household.ID.String(),
			Name:      household.Name,
			CreatedAt: household.CreatedAt,
		},
	}
}
