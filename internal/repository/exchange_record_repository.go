package repository

import (
	"Coldbox/internal/models"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ExchangeFilter narrows a listing. The packaging-date range is applied only
// when both ends are set. Search matches a case-insensitive substring of the
// order number or the operator.
type ExchangeFilter struct {
	BoxModelID   string
	PackagedFrom *time.Time
	PackagedTo   *time.Time
	Search       string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// ExchangeRecordRepository has no delete and no general update: records are
// an audit log and only the operator can be corrected.
type ExchangeRecordRepository interface {
	Create(ctx context.Context, record *models.ExchangeRecord) error
	FindByID(ctx context.Context, id uint) (*models.ExchangeRecord, error)
	FindBySubmissionKey(ctx context.Context, key string) (*models.ExchangeRecord, error)
	List(ctx context.Context, filter ExchangeFilter) ([]models.ExchangeRecord, error)
	UpdateOperator(ctx context.Context, id uint, operator *string) error
}

type ExchangeRecordRepositoryImpl struct {
	db *gorm.DB
}

func NewExchangeRecordRepository(db *gorm.DB) ExchangeRecordRepository {
	return &ExchangeRecordRepositoryImpl{db: db}
}

// Create inserts a finalized record. A second insert carrying the same
// submission key fails with ErrDuplicate, which is what keeps the first
// finalization stamp authoritative when a submission is retried.
func (r *ExchangeRecordRepositoryImpl) Create(ctx context.Context, record *models.ExchangeRecord) error {
	return translate(r.db.WithContext(ctx).Create(record).Error)
}

func (r *ExchangeRecordRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.ExchangeRecord, error) {
	var record models.ExchangeRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

func (r *ExchangeRecordRepositoryImpl) FindBySubmissionKey(ctx context.Context, key string) (*models.ExchangeRecord, error) {
	var record models.ExchangeRecord
	err := r.db.WithContext(ctx).Where("submission_key = ?", key).First(&record).Error
	if err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

func (r *ExchangeRecordRepositoryImpl) List(ctx context.Context, filter ExchangeFilter) ([]models.ExchangeRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.ExchangeRecord{})
	if filter.BoxModelID != "" {
		query = query.Where("box_model_id = ?", filter.BoxModelID)
	}
	if filter.PackagedFrom != nil && filter.PackagedTo != nil {
		query = query.Where("packaged_on BETWEEN ? AND ?", *filter.PackagedFrom, *filter.PackagedTo)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := containsPattern(term)
		query = query.Where(
			`(LOWER(order_number) LIKE ? ESCAPE '\' OR LOWER(COALESCE(operator, '')) LIKE ? ESCAPE '\')`,
			pattern, pattern,
		)
	}

	var records []models.ExchangeRecord
	if err := query.Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ExchangeRecordRepositoryImpl) UpdateOperator(ctx context.Context, id uint, operator *string) error {
	result := r.db.WithContext(ctx).
		Model(&models.ExchangeRecord{}).
		Where("id = ?", id).
		Update("operator", operator)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
