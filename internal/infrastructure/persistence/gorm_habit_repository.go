package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/mo"
	"gorm.io/gorm"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/persistence/models"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

type gormHabitRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormHabitRepository creates a new GORM-based HabitRepository implementation
func NewGormHabitRepository(db *gorm.DB, logger logger.Logger) (habits.HabitRepository, error) {
	return &gormHabitRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormHabitRepository) Create(ctx context.Context, habit *habits.Habit) error {
	if err := habit.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HabitModel{}
	model.FromDomain(habit)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create habit %q: %w", habit.Title, habits.ErrHabitExists)
		}
		return fmt.Errorf("failed to create habit: %w", err)
	}

	r.logger.Info("Created habit with id ", habit.ID)
	return nil
}

func (r *gormHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*habits.Habit, error) {
	var modelList []*models.HabitModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("title_key asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch habits: %w", err)
	}

	domainList := make([]*habits.Habit, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormHabitRepository) GetByTitle(ctx context.Context, userID, title string) (mo.Option[*habits.Habit], error) {
	var model models.HabitModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND title_key = ?", userID, habits.TitleKey(title)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return mo.None[*habits.Habit](), nil
		}
		return mo.None[*habits.Habit](), fmt.Errorf("failed to fetch habit: %w", err)
	}
	return mo.Some(model.ToDomain()), nil
}

func (r *gormHabitRepository) UpdateByID(ctx context.Context, habit *habits.Habit) error {
	if err := habit.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HabitModel{}
	model.FromDomain(habit)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to rename habit to %q: %w", habit.Title, habits.ErrHabitExists)
		}
		return fmt.Errorf("failed to update habit: %w", err)
	}

	r.logger.Info("Updated habit with id ", habit.ID)
	return nil
}

func (r *gormHabitRepository) DeleteByID(ctx context.Context, habitID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.HabitRecordModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete habit records: %w", err)
		}
		if err := tx.Where("id = ?", habitID).Delete(&models.HabitModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted habit with id ", habitID)
	return nil
}
