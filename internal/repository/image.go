package repository

import (
	"context"
	"errors"

	"corkboard/internal/models"

	"gorm.io/gorm"
)

// ImageRepository defines persistence operations for image metadata rows.
// The image bytes themselves live on disk; rows only carry the file path.
type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByPostID(ctx context.Context, postID uint) (*models.Image, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Image, error)
	GetByPostIDs(ctx context.Context, postIDs []uint) ([]models.Image, error)
	Delete(ctx context.Context, id uint) error
	DeleteByPostID(ctx context.Context, postID uint) error
	DeleteByPostIDs(ctx context.Context, postIDs []uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository returns a new ImageRepository implementation.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByPostID returns (nil, nil) when the post has no image.
func (r *imageRepository) GetByPostID(ctx context.Context, postID uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &image, nil
}

// GetByUserID returns (nil, nil) when the user has no profile image.
func (r *imageRepository) GetByUserID(ctx context.Context, userID uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &image, nil
}

func (r *imageRepository) GetByPostIDs(ctx context.Context, postIDs []uint) ([]models.Image, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var images []models.Image
	if err := r.db.WithContext(ctx).Where("post_id IN ?", postIDs).Find(&images).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return images, nil
}

func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Image{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *imageRepository) DeleteByPostID(ctx context.Context, postID uint) error {
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.Image{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *imageRepository) DeleteByPostIDs(ctx context.Context, postIDs []uint) error {
	if len(postIDs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("post_id IN ?", postIDs).Delete(&models.Image{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *imageRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Image{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
