package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventscout/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	favoriteRepo   domain.FavoriteRepository
	attendanceRepo domain.AttendanceRepository
}

// NewUserService creates a UserService backed by the given repositories.
func NewUserService(userRepo domain.UserRepository, favoriteRepo domain.FavoriteRepository, attendanceRepo domain.AttendanceRepository) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		favoriteRepo:   favoriteRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	favorites, err := s.favoriteRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}
	attendances, err := s.attendanceRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendances: %w", err)
	}
	return &domain.Profile{
		User:            user,
		FavoriteCount:   favorites,
		AttendanceCount: attendances,
	}, nil
}

func (s *userService) Update(ctx context.Context, user *domain.User) error {
	email := strings.TrimSpace(strings.ToLower(user.Email))
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	user.Email = email
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}
