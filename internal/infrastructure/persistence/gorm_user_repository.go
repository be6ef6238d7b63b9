package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/mo"
	"gorm.io/gorm"

	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/persistence/models"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create user %s: %w", model.Email, users.ErrEmailTaken)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.UserModel
	dbQuery := r.db.WithContext(ctx).Model(&models.UserModel{}).Order("email asc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (mo.Option[*users.User], error) {
	return r.first(ctx, "id = ?", userID)
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (mo.Option[*users.User], error) {
	return r.first(ctx, "email = ?", users.NormalizeEmail(email))
}

func (r *gormUserRepository) first(ctx context.Context, cond string, arg string) (mo.Option[*users.User], error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return mo.None[*users.User](), nil
		}
		return mo.None[*users.User](), fmt.Errorf("failed to fetch user: %w", err)
	}
	return mo.Some(model.ToDomain()), nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to update user %s: %w", model.Email, users.ErrEmailTaken)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		habitIDs := tx.Model(&models.HabitModel{}).Select("id").Where("user_id = ?", userID)

		if err := tx.Where("habit_id IN (?)", habitIDs).Delete(&models.HabitRecordModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete habit records: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.HabitModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete habits: %w", err)
		}
		if err := tx.Where("id = ?", userID).Delete(&models.UserModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}
