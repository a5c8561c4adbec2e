package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hackteam-be/internal/config"
	"hackteam-be/internal/dto"
	"hackteam-be/internal/pkg/logger"
	"hackteam-be/internal/repository/memory"
	"hackteam-be/internal/store/session"
	"hackteam-be/pkg/events"
	pktNats "hackteam-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context) error
}

type authService struct {
	sessions       *session.Store
	tokens         *memory.TokenRepository
	authCfg        config.AuthConfig
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAuthService(sessions *session.Store, tokens *memory.TokenRepository, authCfg config.AuthConfig, eventPublisher *pktNats.Publisher, log logger.ILogger) IAuthService {
	return &authService{
		sessions:       sessions,
		tokens:         tokens,
		authCfg:        authCfg,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	// Hash the password even though the demo login never compares it; the
	// store must not see plaintext.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user, err := s.sessions.Signup(session.SignupInput{
		Name:   req.Name,
		Email:  req.Email,
		Bio:    req.Bio,
		Skills: req.Skills,
	}, &hashStr)
	if err != nil && !errors.Is(err, session.ErrRecordNotPersisted) {
		return nil, err
	}
	if errors.Is(err, session.ErrRecordNotPersisted) {
		// Signup succeeded in memory; the session just won't survive a
		// restart. Log and carry on.
		s.logger.Warn("AuthService", "Signup session not persisted", map[string]interface{}{"error": err.Error()})
	}

	token, err := s.mintToken(user.Id.String())
	if err != nil {
		return nil, err
	}
	s.tokens.Save(token, user.Id)

	s.publishEvent(ctx, events.TypeUserSignedUp, map[string]interface{}{
		"user_id": user.Id,
		"email":   user.Email,
	})

	resp := &dto.AuthResponse{AccessToken: token, User: toUserResponse(user)}
	return resp, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	// Demo mode: any email logs in as the fixed demonstration profile. The
	// password is accepted but never checked.
	user, err := s.sessions.Login(req.Email)
	if err != nil && !errors.Is(err, session.ErrRecordNotPersisted) {
		return nil, err
	}
	if errors.Is(err, session.ErrRecordNotPersisted) {
		s.logger.Warn("AuthService", "Login session not persisted", map[string]interface{}{"error": err.Error()})
	}

	token, err := s.mintToken(user.Id.String())
	if err != nil {
		return nil, err
	}
	s.tokens.Save(token, user.Id)

	s.publishEvent(ctx, events.TypeUserLoggedIn, map[string]interface{}{
		"user_id": user.Id,
		"email":   user.Email,
	})

	resp := &dto.AuthResponse{AccessToken: token, User: toUserResponse(user)}
	return resp, nil
}

func (s *authService) Logout(ctx context.Context) error {
	current := s.sessions.Current()
	if err := s.sessions.Logout(); err != nil {
		return err
	}
	// Single-session app: invalidate every outstanding token.
	s.tokens.Flush()

	payload := map[string]interface{}{}
	if current != nil {
		payload["user_id"] = current.Id
	}
	s.publishEvent(ctx, events.TypeUserLoggedOut, payload)
	return nil
}

func (s *authService) mintToken(userId string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId,
		"exp":     time.Now().Add(time.Hour * time.Duration(s.authCfg.TokenExpiryHour)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.authCfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("AuthService", fmt.Sprintf("Failed to publish %s event", eventType), map[string]interface{}{"error": err.Error()})
	}
}
