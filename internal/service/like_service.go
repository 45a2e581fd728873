package service

import (
	"context"

	"corkboard/internal/models"
	"corkboard/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	db       *gorm.DB
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewLikeService(
	db *gorm.DB,
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *LikeService {
	return &LikeService{db: db, likeRepo: likeRepo, postRepo: postRepo, userRepo: userRepo}
}

// CreateLike records that the user likes the post and bumps the post's
// denormalized counter in the same transaction. Liking a post twice is a
// conflict; the duplicate check is a read-before-write, so two simultaneous
// requests for the same pair can both pass it.
func (s *LikeService) CreateLike(ctx context.Context, postID, userID uint) (*models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	exists, err := s.likeRepo.ExistsByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("Post is already liked")
	}

	like := &models.Like{
		PostID: postID,
		UserID: userID,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likeRepo := repository.NewLikeRepository(tx)
		postRepo := repository.NewPostRepository(tx)

		if err := likeRepo.Create(ctx, like); err != nil {
			return err
		}
		return postRepo.IncrementLikes(ctx, postID)
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}

// Exists reports whether the user has liked the post.
func (s *LikeService) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	return s.likeRepo.ExistsByUserAndPost(ctx, userID, postID)
}

func (s *LikeService) CountByPostID(ctx context.Context, postID uint) (int64, error) {
	return s.likeRepo.CountByPostID(ctx, postID)
}

// DeleteLike removes the user's like and decrements the post counter in one
// transaction. Returns the removed like so the handler can echo it.
func (s *LikeService) DeleteLike(ctx context.Context, postID, userID uint) (*models.Like, error) {
	like, err := s.likeRepo.GetByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, models.NewNotFoundError("Like", postID)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likeRepo := repository.NewLikeRepository(tx)
		postRepo := repository.NewPostRepository(tx)

		if err := likeRepo.Delete(ctx, like.ID); err != nil {
			return err
		}
		return postRepo.DecrementLikes(ctx, like.PostID)
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}
