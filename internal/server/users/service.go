package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/server/auth"
	"github.com/dmitrijs2005/authshell/internal/server/config"
	"github.com/dmitrijs2005/authshell/internal/server/models"
	"github.com/dmitrijs2005/authshell/internal/server/refreshtokens"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair is the credential set returned by Login, Register and Refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// RegisterRequest carries the fields accepted by Register.
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ProfilePatch carries the optional fields accepted by UpdateProfile;
// empty fields leave the stored value unchanged.
type ProfilePatch struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	DateOfBirth string
	Avatar      string
}

type Service struct {
	repo                         Repository
	refreshTokenRepo             refreshtokens.Repository
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewService(repo Repository, refreshTokenRepo refreshtokens.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                         repo,
		refreshTokenRepo:             refreshTokenRepo,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new account and signs the user in. The plaintext
// password is stored only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.User, *TokenPair, error) {

	if req.Email == "" || req.Password == "" {
		return nil, nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, nil, common.ErrorAlreadyExists
		}
		return nil, nil, fmt.Errorf("error creating user: %w", err)
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Login verifies the credentials and issues a fresh token pair.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

func (s *Service) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {

	expiresAt := time.Now().Add(s.accessTokenValidityDuration)

	accessToken, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.refreshTokenRepo.Create(ctx, user.ID, refreshToken, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken, ExpiresAt: expiresAt}, nil
}

// Profile returns the account record for userID.
func (s *Service) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile applies the non-empty patch fields to the account record.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*models.User, error) {

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != "" {
		user.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		user.LastName = patch.LastName
	}
	if patch.PhoneNumber != "" {
		user.PhoneNumber = patch.PhoneNumber
	}
	if patch.DateOfBirth != "" {
		user.DateOfBirth = patch.DateOfBirth
	}
	if patch.Avatar != "" {
		user.Avatar = patch.Avatar
	}
	user.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, user)
}

// Refresh consumes a refresh token and issues a new token pair for its
// user. The consumed token is deleted, so each refresh token is usable
// once.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.User, *TokenPair, error) {

	rt, err := s.refreshTokenRepo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if err := s.refreshTokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, nil, common.ErrorInternal
	}

	user, err := s.repo.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Logout revokes every refresh token issued to userID. The access token
// remains valid until it expires; clients drop it locally.
func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.refreshTokenRepo.DeleteByUser(ctx, userID)
}
