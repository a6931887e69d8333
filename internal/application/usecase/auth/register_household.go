// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// RegisterHouseholdInput represents the input for household registration.
type RegisterHouseholdInput struct {
	Name       string
	Passphrase string
}

// RegisterHouseholdOutput represents the output of household registration.
type RegisterHouseholdOutput struct {
	AccessToken  string
	RefreshToken string
	Household    *entity.Household
}

// RegisterHouseholdUseCase handles household registration logic.
type RegisterHouseholdUseCase struct {
	householdRepo     adapter.HouseholdRepository
	passphraseService adapter.PassphraseService
	tokenService      adapter.TokenService
}

// NewRegisterHouseholdUseCase creates a new RegisterHouseholdUseCase instance.
func NewRegisterHouseholdUseCase(
	householdRepo adapter.HouseholdRepository,
	passphraseService adapter.PassphraseService,
	tokenService adapter.TokenService,
) *RegisterHouseholdUseCase {
	return &RegisterHouseholdUseCase{
		householdRepo:     householdRepo,
		passphraseService: passphraseService,
		tokenService:      tokenService,
	}
}

// Execute performs the household registration.
func (uc *RegisterHouseholdUseCase) Execute(ctx context.Context, input RegisterHouseholdInput) (*RegisterHouseholdOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"household name is required",
			nil,
		)
	}

	if err := uc.passphraseService.ValidatePassphraseStrength(input.Passphrase); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassphrase,
			"passphrase does not meet minimum requirements",
			domainerror.ErrWeakPassphrase,
		)
	}

	exists, err := uc.householdRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check household existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeHouseholdExists,
			"household name already exists",
			domainerror.ErrHouseholdAlreadyExists,
		)
	}

	passphraseHash, err := uc.passphraseService.HashPassphrase(input.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to hash passphrase: %w", err)
	}

	household := entity.NewHousehold(name, passphraseHash)

	if err := uc.householdRepo.Create(ctx, household); err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, household.ID, household.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterHouseholdOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Household:    household,
	}, nil
}
