package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/healthshare/backend/internal/domain/emotion"
	"github.com/healthshare/backend/internal/domain/shared"
	"github.com/healthshare/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTextRecordRepository implements emotion.TextRecordRepository using GORM
type GormTextRecordRepository struct {
	db *gorm.DB
}

// NewGormTextRecordRepository creates a new GormTextRecordRepository
func NewGormTextRecordRepository(db *gorm.DB) *GormTextRecordRepository {
	return &GormTextRecordRepository{db: db}
}

// apply translates the domain filter into WHERE clauses. The emotions
// dimension matches rows where any selected emotion has a positive score.
func (r *GormTextRecordRepository) apply(ctx context.Context, filter emotion.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.TextRecordModel{})

	if len(filter.Sources) > 0 {
		query = query.Where("data_source IN ?", filter.Sources)
	}
	if filter.StartAt != nil {
		query = query.Where("created_at >= ?", *filter.StartAt)
	}
	if filter.EndBefore != nil {
		query = query.Where("created_at < ?", *filter.EndBefore)
	}
	if len(filter.Emotions) > 0 {
		clauses := make([]string, 0, len(filter.Emotions))
		args := make([]interface{}, 0, len(filter.Emotions))
		for _, e := range filter.Emotions {
			clauses = append(clauses, e.Column()+" > ?")
			args = append(args, 0.0)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	return query
}

// FindMatching returns all records matching the filter, newest first.
func (r *GormTextRecordRepository) FindMatching(ctx context.Context, filter emotion.Filter) ([]emotion.TextRecord, error) {
	var rows []models.TextRecordModel
	if err := r.apply(ctx, filter).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]emotion.TextRecord, len(rows))
	for i := range rows {
		records[i] = *rows[i].ToDomain()
	}
	return records, nil
}

// CountMatching counts the records matching the filter.
func (r *GormTextRecordRepository) CountMatching(ctx context.Context, filter emotion.Filter) (int64, error) {
	var count int64
	if err := r.apply(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByID finds a record by its ID.
func (r *GormTextRecordRepository) FindByID(ctx context.Context, id int64) (*emotion.TextRecord, error) {
	var model models.TextRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}
