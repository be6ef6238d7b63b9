package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

// habitService implements the HabitService interface
type habitService struct {
	habitRepo habits.HabitRepository
	logger    logger.Logger
}

// NewHabitService creates a new habitService instance
func NewHabitService(habitRepo habits.HabitRepository, logger logger.Logger) (habits.HabitService, error) {
	return &habitService{
		habitRepo: habitRepo,
		logger:    logger,
	}, nil
}

// Create adds a habit unless the user already has one with the same title
func (s *habitService) Create(ctx context.Context, userID, title, description string, frequency habits.Frequency) (*habits.Habit, error) {
	title = strings.TrimSpace(title)

	existing, err := s.habitRepo.GetByTitle(ctx, userID, title)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if existing.IsPresent() {
		return nil, habits.ErrHabitExists
	}

	habit := &habits.Habit{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           title,
		Description:     description,
		Frequency:       frequency,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return habit, nil
}

// List retrieves the habits of a user ordered by title
func (s *habitService) List(ctx context.Context, userID string) ([]*habits.Habit, error) {
	list, err := s.habitRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

// GetByTitle retrieves a habit by case-insensitive title
func (s *habitService) GetByTitle(ctx context.Context, userID, title string) (*habits.Habit, error) {
	found, err := s.habitRepo.GetByTitle(ctx, userID, title)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	habit, ok := found.Get()
	if !ok {
		return nil, habits.ErrHabitNotFound
	}
	return habit, nil
}

// Edit replaces title, description and frequency
func (s *habitService) Edit(ctx context.Context, userID, oldTitle, newTitle, newDescription string, newFrequency habits.Frequency) (*habits.Habit, error) {
	habit, err := s.GetByTitle(ctx, userID, oldTitle)
	if err != nil {
		return nil, err
	}

	newTitle = strings.TrimSpace(newTitle)
	if habits.TitleKey(newTitle) != habits.TitleKey(habit.Title) {
		other, err := s.habitRepo.GetByTitle(ctx, userID, newTitle)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if other.IsPresent() {
			return nil, habits.ErrHabitExists
		}
	}

	updated := *habit
	updated.Title = newTitle
	updated.Description = newDescription
	updated.Frequency = newFrequency

	if err := s.habitRepo.UpdateByID(ctx, &updated); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &updated, nil
}

// Delete removes the habit with all of its records
func (s *habitService) Delete(ctx context.Context, userID, title string) error {
	habit, err := s.GetByTitle(ctx, userID, title)
	if err != nil {
		return err
	}
	if err := s.habitRepo.DeleteByID(ctx, habit.ID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
