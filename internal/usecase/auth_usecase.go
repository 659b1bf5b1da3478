package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bereketsol/Reelbite/internal/domain/contract"
	"github.com/bereketsol/Reelbite/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// AuthUsecase handles registration and login for both end users and food
// partners. Password hashes never leave this boundary.
type AuthUsecase struct {
	userRepo    contract.IUserRepository
	partnerRepo contract.IFoodPartnerRepository
	hasher      contract.IHasher
	jwtService  JWTService
	uuidGen     contract.IUUIDGenerator
	validator   usecasecontract.IValidator
	logger      usecasecontract.IAppLogger
}

// NewAuthUsecase creates and returns a new AuthUsecase instance.
func NewAuthUsecase(userRepo contract.IUserRepository, partnerRepo contract.IFoodPartnerRepository, hasher contract.IHasher, jwtService JWTService, uuidGen contract.IUUIDGenerator, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		uuidGen:     uuidGen,
		validator:   validator,
		logger:      logger,
	}
}

// RegisterUser creates an end-user account and issues a session token.
func (u *AuthUsecase) RegisterUser(ctx context.Context, fullName, email, password string) (*entity.User, string, error) {
	if err := u.validator.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("invalid email: %w", err)
	}
	if err := u.validator.ValidatePasswordStrength(password); err != nil {
		return nil, "", err
	}

	if existing, err := u.userRepo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", entity.ErrEmailTaken
	}

	hash, err := u.hasher.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           u.uuidGen.NewUUID(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := u.jwtService.GenerateSessionToken(user.ID, entity.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}
	u.logger.Infof("registered user %s", user.ID)
	return user, token, nil
}

// LoginUser authenticates an end user by email and password.
func (u *AuthUsecase) LoginUser(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if err := u.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}
	token, err := u.jwtService.GenerateSessionToken(user.ID, entity.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return user, token, nil
}

// RegisterPartner creates a food-partner account and issues a session token.
func (u *AuthUsecase) RegisterPartner(ctx context.Context, businessName, contactName, phone, email, password string) (*entity.FoodPartner, string, error) {
	if err := u.validator.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("invalid email: %w", err)
	}
	if err := u.validator.ValidatePasswordStrength(password); err != nil {
		return nil, "", err
	}

	if existing, err := u.partnerRepo.GetPartnerByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", entity.ErrEmailTaken
	}

	hash, err := u.hasher.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	partner := &entity.FoodPartner{
		ID:           u.uuidGen.NewUUID(),
		BusinessName: businessName,
		ContactName:  contactName,
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
	}
	if err := u.partnerRepo.CreatePartner(ctx, partner); err != nil {
		return nil, "", fmt.Errorf("failed to create food partner: %w", err)
	}

	token, err := u.jwtService.GenerateSessionToken(partner.ID, entity.RolePartner)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}
	u.logger.Infof("registered food partner %s", partner.ID)
	return partner, token, nil
}

// LoginPartner authenticates a food partner by email and password.
func (u *AuthUsecase) LoginPartner(ctx context.Context, email, password string) (*entity.FoodPartner, string, error) {
	partner, err := u.partnerRepo.GetPartnerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrPartnerNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up food partner: %w", err)
	}
	if err := u.hasher.ComparePasswordHash(password, partner.PasswordHash); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}
	token, err := u.jwtService.GenerateSessionToken(partner.ID, entity.RolePartner)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return partner, token, nil
}
