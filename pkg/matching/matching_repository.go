package matching

import (
	"context"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"gorm.io/gorm"
)

type (
	MatchingRepository interface {
		CreateMatching(ctx context.Context, matching *entities.Matching) error
		GetMatchings(ctx context.Context) ([]*entities.Matching, error)
		LineItemExists(ctx context.Context, id uint) (bool, error)
		ProductExists(ctx context.Context, id uint) (bool, error)
	}

	matchingRepository struct {
		db *gorm.DB
	}
)

func NewMatchingRepository(db *gorm.DB) MatchingRepository {
	return &matchingRepository{db: db}
}

func (r *matchingRepository) CreateMatching(ctx context.Context, matching *entities.Matching) error {
	return r.db.WithContext(ctx).Create(matching).Error
}

func (r *matchingRepository) GetMatchings(ctx context.Context) ([]*entities.Matching, error) {
	var matchings []*entities.Matching
	if err := r.db.WithContext(ctx).Find(&matchings).Error; err != nil {
		return nil, err
	}
	return matchings, nil
}

func (r *matchingRepository) LineItemExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.LineItem{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *matchingRepository) ProductExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Product{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
