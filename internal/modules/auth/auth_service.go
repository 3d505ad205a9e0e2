package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dine-and-deliver/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

// RepositoryInterface defines the persistence needs of the auth module.
type RepositoryInterface interface {
	CreateUser(ctx context.Context, user *models.User, passwordHash string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, string, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
}

// ServiceInterface defines the contract for the auth service.
type ServiceInterface interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (*models.AuthResponse, error)
	GoogleAuthURL(state string) string
}

// Claims is the JWT payload attached to every authenticated request.
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service implements ServiceInterface.
type Service struct {
	repo        RepositoryInterface
	jwtSecret   []byte
	tokenTTL    time.Duration
	googleOAuth *oauth2.Config
}

// NewService creates a new auth service. googleOAuth may be nil when Google
// sign-in is not configured.
func NewService(repo RepositoryInterface, jwtSecret string, googleOAuth *oauth2.Config) *Service {
	return &Service{
		repo:        repo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    72 * time.Hour,
		googleOAuth: googleOAuth,
	}
}

// Register creates an account with a bcrypt-hashed password and returns a
// fresh session token.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Location != nil && !req.Location.Valid() {
		return nil, models.ErrInvalidLocation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service.Register: hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user, err := s.repo.CreateUser(ctx, &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Contact:  req.Contact,
		Role:     role,
		Location: req.Location,
	}, string(hash))
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("service.Register: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("service.Register: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies the password and returns a session token.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, hash, err := s.repo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service.Login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("service.Login: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// GoogleAuthURL returns the consent-screen URL for the OAuth dance.
func (s *Service) GoogleAuthURL(state string) string {
	if s.googleOAuth == nil {
		return ""
	}
	return s.googleOAuth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// LoginWithGoogle exchanges the authorization code, reads the Google
// profile and signs the matching local account in. Accounts are matched by
// email; unknown emails are rejected rather than auto-provisioned, since
// registration needs a contact number and role.
func (s *Service) LoginWithGoogle(ctx context.Context, code string) (*models.AuthResponse, error) {
	if s.googleOAuth == nil {
		return nil, models.ErrInvalidCredentials
	}

	tok, err := s.googleOAuth.Exchange(ctx, code)
	if err != nil {
		return nil, models.ErrInvalidToken
	}

	client := s.googleOAuth.Client(ctx, tok)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("service.LoginWithGoogle: fetch profile: %w", err)
	}
	defer resp.Body.Close()

	var profile struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("service.LoginWithGoogle: decode profile: %w", err)
	}

	user, _, err := s.repo.FindUserByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service.LoginWithGoogle: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("service.LoginWithGoogle: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *Service) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
