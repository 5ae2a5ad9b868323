package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/config"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
	"github.com/Khaliq12345/O-Platy60-server/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Validate(ctx context.Context, token string) (*dto.ValidateTokenResponse, error)
}

type authService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Store("login", err)
	}
	if user == nil {
		return nil, apierror.Auth("login", "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Auth("login", "invalid credentials")
	}
	return s.issueTokens(user)
}

func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Store("signup", err)
	}
	if existing != nil {
		return nil, apierror.Validation("signup", "a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apierror.Store("signup", err)
	}
	user := &model.User{
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apierror.Store("signup", err)
	}
	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, apierror.Auth("refresh_token", "refresh token is invalid or expired")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, apierror.Auth("refresh_token", "malformed token")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apierror.Auth("refresh_token", "malformed token")
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, apierror.Store("refresh_token", err)
	}
	if user == nil {
		return nil, apierror.Auth("refresh_token", "user no longer exists")
	}
	return s.issueTokens(user)
}

func (s *authService) Validate(ctx context.Context, token string) (*dto.ValidateTokenResponse, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return &dto.ValidateTokenResponse{Valid: false}, nil
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return &dto.ValidateTokenResponse{Valid: false}, nil
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return &dto.ValidateTokenResponse{Valid: false}, nil
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, apierror.Store("validate_token", err)
	}
	if user == nil {
		return &dto.ValidateTokenResponse{Valid: false}, nil
	}
	u := mapUser(*user)
	return &dto.ValidateTokenResponse{Valid: true, User: &u}, nil
}

func (s *authService) issueTokens(user *model.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, apierror.Store("issue_tokens", err)
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, apierror.Store("issue_tokens", err)
	}
	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         mapUser(*user),
	}, nil
}

func (s *authService) parseToken(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func (s *authService) generateToken(user *model.User, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     now.Add(duration).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
