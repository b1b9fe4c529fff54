package service

import (
	"context"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/aquadrill/borewell-api/pkg/apperror"
	"github.com/aquadrill/borewell-api/pkg/oauth"
	"github.com/aquadrill/borewell-api/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo    repository.UserRepository
	jwtManager  *utils.JWTManager
	googleOAuth *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, googleOAuth *oauth.GoogleOAuthService) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtManager:  jwtManager,
		googleOAuth: googleOAuth,
	}
}

// AuthResult carries the tokens and the authenticated user
type AuthResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// Login authenticates a user with email and password
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		// Google-only account
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RegisterInput represents the register input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a new operator account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResult, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role != entity.RoleAdmin {
		role = entity.RoleStaff
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUnauthorized
	}

	return s.issueTokens(user)
}

// GetProfile returns the authenticated user's profile
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateProfileInput represents the profile update input
type UpdateProfileInput struct {
	UserID          uuid.UUID
	Name            *string
	CurrentPassword *string
	NewPassword     *string
}

// UpdateProfile updates the operator's own account. Changing the
// password requires the current one; Google-only accounts set their
// first password the same way with no current-password check.
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if input.NewPassword != nil {
		if user.PasswordHash != "" {
			if input.CurrentPassword == nil {
				return nil, apperror.NewBadRequestError("Current password is required")
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*input.CurrentPassword)); err != nil {
				return nil, apperror.ErrInvalidCredentials
			}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetGoogleAuthURL returns the Google consent URL
func (s *AuthService) GetGoogleAuthURL(state string) (string, error) {
	if !s.googleOAuth.IsConfigured() {
		return "", apperror.NewBadRequestError(oauth.ErrOAuthNotConfigured.Error())
	}
	return s.googleOAuth.GetAuthURL(state), nil
}

// GoogleCallback completes the OAuth flow: the code is exchanged for
// Google's profile, and the account is matched by Google ID first, then
// by email (linking the Google identity), then created as staff.
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*AuthResult, error) {
	if !s.googleOAuth.IsConfigured() {
		return nil, apperror.NewBadRequestError(oauth.ErrOAuthNotConfigured.Error())
	}

	token, err := s.googleOAuth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	info, err := s.googleOAuth.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if !info.VerifiedEmail {
		return nil, apperror.NewBadRequestError("Google account email is not verified")
	}

	user, err := s.userRepo.GetByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.GoogleID = &info.ID
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
		}
	}

	if user == nil {
		user = &entity.User{
			ID:       uuid.New(),
			Name:     info.Name,
			Email:    info.Email,
			Role:     entity.RoleStaff,
			GoogleID: &info.ID,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*AuthResult, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
