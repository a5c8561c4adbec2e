package service

import (
	"context"
	"errors"

	"hackteam-be/internal/dto"
	"hackteam-be/internal/entity"
	"hackteam-be/internal/store/session"
)

type IUserService interface {
	Me(ctx context.Context) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	AddSkill(ctx context.Context, skill string) (*dto.UserResponse, error)
	RemoveSkill(ctx context.Context, skill string) (*dto.UserResponse, error)
}

type userService struct {
	sessions *session.Store
}

func NewUserService(sessions *session.Store) IUserService {
	return &userService{sessions: sessions}
}

func (s *userService) Me(ctx context.Context) (*dto.UserResponse, error) {
	user := s.sessions.Current()
	if user == nil {
		return nil, session.ErrNoActiveSession
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.sessions.UpdateProfile(session.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		Skills:    req.Skills,
	})
	// A failed record write is recoverable; the in-memory profile already
	// changed and the store logged the failure.
	if err != nil && !errors.Is(err, session.ErrRecordNotPersisted) {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) AddSkill(ctx context.Context, skill string) (*dto.UserResponse, error) {
	user, err := s.sessions.AddSkill(skill)
	if err != nil && !errors.Is(err, session.ErrRecordNotPersisted) {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) RemoveSkill(ctx context.Context, skill string) (*dto.UserResponse, error) {
	user, err := s.sessions.RemoveSkill(skill)
	if err != nil && !errors.Is(err, session.ErrRecordNotPersisted) {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:             u.Id,
		Name:           u.Name,
		Email:          u.Email,
		Bio:            u.Bio,
		Skills:         u.Skills,
		AvatarURL:      u.AvatarURL,
		LookingForTeam: u.LookingForTeam,
		CreatedAt:      u.CreatedAt,
	}
}
