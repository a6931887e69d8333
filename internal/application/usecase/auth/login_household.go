// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// LoginHouseholdInput represents the input for household login.
type LoginHouseholdInput struct {
	Name       string
	Passphrase string
}

// LoginHouseholdOutput represents the output of household login.
type LoginHouseholdOutput struct {
	AccessToken  string
	RefreshToken string
	Household    *entity.Household
}

// LoginHouseholdUseCase handles household login logic.
type LoginHouseholdUseCase struct {
	householdRepo     adapter.HouseholdRepository
	passphraseService adapter.PassphraseService
	tokenService      adapter.TokenService
}

// NewLoginHouseholdUseCase creates a new LoginHouseholdUseCase instance.
func NewLoginHouseholdUseCase(
	householdRepo adapter.HouseholdRepository,
	passphraseService adapter.PassphraseService,
	tokenService adapter.TokenService,
) *LoginHouseholdUseCase {
	return &LoginHouseholdUseCase{
		householdRepo:     householdRepo,
		passphraseService: passphraseService,
		tokenService:      tokenService,
	}
}

// Execute performs the household login.
func (uc *LoginHouseholdUseCase) Execute(ctx context.Context, input LoginHouseholdInput) (*LoginHouseholdOutput, error) {
	household, err := uc.householdRepo.FindByName(ctx, input.Name)
	if err != nil {
		// Generic error to prevent household name enumeration
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid household name or passphrase",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passphraseService.VerifyPassphrase(household.PassphraseHash, input.Passphrase); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid household name or passphrase",
			domainerror.ErrInvalidCredentials,
		)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, household.ID, household.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginHouseholdOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Household:    household,
	}, nil
}
