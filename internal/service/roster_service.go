package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/repository"
	"go.uber.org/zap"
)

// RosterService manages the student and accompanist name lists.
type RosterService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewRosterService(userRepo *repository.UserRepository, logger *zap.Logger) *RosterService {
	return &RosterService{userRepo: userRepo, logger: logger}
}

func (s *RosterService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *RosterService) ListStudents(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.ListByRole(ctx, model.RoleStudent)
}

func (s *RosterService) ListAccompanists(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.ListByRole(ctx, model.RoleAccompanist)
}

func (s *RosterService) Add(ctx context.Context, name string, role model.UserRole) (*model.User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if role != model.RoleStudent && role != model.RoleAccompanist {
		return nil, fmt.Errorf("role must be student or accompanist")
	}

	user := &model.User{
		ID:   uuid.NewString(),
		Name: name,
		Role: role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Roster entry added",
		zap.String("user_id", user.ID),
		zap.String("role", string(role)),
	)

	return user, nil
}

func (s *RosterService) Rename(ctx context.Context, id, name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if err := s.userRepo.UpdateName(ctx, id, name); err != nil {
		return err
	}

	s.logger.Info("Roster entry renamed", zap.String("user_id", id))

	return nil
}

func (s *RosterService) Remove(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Roster entry removed", zap.String("user_id", id))

	return nil
}
