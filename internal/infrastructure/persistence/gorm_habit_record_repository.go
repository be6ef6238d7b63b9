package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"
	"gorm.io/gorm"

	"github.com/niyatanya/habit-tracker/internal/domain/habits"
	"github.com/niyatanya/habit-tracker/internal/infrastructure/persistence/models"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

type gormHabitRecordRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormHabitRecordRepository creates a new GORM-based HabitRecordRepository implementation
func NewGormHabitRecordRepository(db *gorm.DB, logger logger.Logger) (habits.HabitRecordRepository, error) {
	return &gormHabitRecordRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormHabitRecordRepository) Create(ctx context.Context, record *habits.HabitRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HabitRecordModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create record for %s: %w", habits.FormatDay(record.Date), habits.ErrRecordExists)
		}
		return fmt.Errorf("failed to create habit record: %w", err)
	}

	r.logger.Info("Created habit record with id ", record.ID)
	return nil
}

func (r *gormHabitRecordRepository) ListByHabitID(ctx context.Context, habitID string) ([]*habits.HabitRecord, error) {
	return r.find(r.db.WithContext(ctx).Where("habit_id = ?", habitID))
}

func (r *gormHabitRecordRepository) ListByHabitIDBetween(ctx context.Context, habitID string, from, to time.Time) ([]*habits.HabitRecord, error) {
	return r.find(r.db.WithContext(ctx).
		Where("habit_id = ? AND date >= ? AND date <= ?", habitID, habits.Day(from), habits.Day(to)))
}

func (r *gormHabitRecordRepository) find(query *gorm.DB) ([]*habits.HabitRecord, error) {
	var modelList []*models.HabitRecordModel
	if err := query.Order("date asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch habit records: %w", err)
	}

	domainList := make([]*habits.HabitRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormHabitRecordRepository) GetByDate(ctx context.Context, habitID string, date time.Time) (mo.Option[*habits.HabitRecord], error) {
	var model models.HabitRecordModel
	err := r.db.WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, habits.Day(date)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return mo.None[*habits.HabitRecord](), nil
		}
		return mo.None[*habits.HabitRecord](), fmt.Errorf("failed to fetch habit record: %w", err)
	}
	return mo.Some(model.ToDomain()), nil
}

func (r *gormHabitRecordRepository) UpdateByID(ctx context.Context, record *habits.HabitRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HabitRecordModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update habit record: %w", err)
	}

	r.logger.Info("Updated habit record with id ", record.ID)
	return nil
}

func (r *gormHabitRecordRepository) DeleteByID(ctx context.Context, recordID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", recordID).Delete(&models.HabitRecordModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete habit record: %w", err)
	}

	r.logger.Info("Deleted habit record with id ", recordID)
	return nil
}
