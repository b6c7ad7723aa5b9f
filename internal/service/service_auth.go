// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agiletrack/sprint-roi/internal/config"
	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/store"
	"github.com/agiletrack/sprint-roi/internal/utils"
	"github.com/agiletrack/sprint-roi/internal/validators"
	"github.com/agiletrack/sprint-roi/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the JWT
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up accounts.
	userRepository store.UserRepository

	// validator checks registration payloads before any hashing happens.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new account from the given credentials and issues
// its first token.
//
// The plain-text password is bcrypt-hashed before it reaches storage; the
// role defaults to member when the payload leaves it out. A taken username
// surfaces as a field error on "username".
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Err(err).Str("username", creds.Username).Msg("invalid registration payload")
		return models.User{}, models.Token{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	role := creds.Role
	if role == "" {
		role = models.RoleMember
	}

	user := models.User{
		Username:     creds.Username,
		Email:        creds.Email,
		FirstName:    creds.FirstName,
		LastName:     creds.LastName,
		Role:         role,
		PasswordHash: string(hash),
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, models.Token{}, mapUserWriteError(err)
	}

	token, err := a.issueToken(ctx, registered)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registered, token, nil
}

// Login authenticates an existing account and issues a fresh token.
//
// Lookup failures and password mismatches both collapse into
// [ErrWrongCredentials] so the response never reveals which half was wrong.
// Deactivated accounts are rejected the same way.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.Token{}, ErrWrongCredentials
		}
		log.Err(err).Str("username", creds.Username).Msg("user lookup ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	if !user.IsActive {
		return models.User{}, models.Token{}, ErrWrongCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return models.User{}, models.Token{}, ErrWrongCredentials
	}

	token, err := a.issueToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ParseToken verifies the compact token string and returns the parsed token
// with the user ID extracted from the subject claim.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, fmt.Errorf("token validation failed: %w", err)
	}

	return token, nil
}

func (a *authService) issueToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("token generation ended with error")
		return models.Token{}, fmt.Errorf("token generation ended with error: %w", err)
	}

	return token, nil
}
