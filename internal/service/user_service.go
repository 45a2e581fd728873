// Package service contains business logic between handlers and repositories.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"corkboard/internal/middleware"
	"corkboard/internal/models"
	"corkboard/internal/repository"
	"corkboard/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	postRepo  repository.PostRepository
	likeRepo  repository.LikeRepository
	imageRepo repository.ImageRepository
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileInput struct {
	CallerID uint
	UserID   uint
	Email    *string
	Password *string
	Nickname *string
}

func NewUserService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	imageRepo repository.ImageRepository,
) *UserService {
	return &UserService{
		db:        db,
		userRepo:  userRepo,
		postRepo:  postRepo,
		likeRepo:  likeRepo,
		imageRepo: imageRepo,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(in.Email)
	nickname := strings.TrimSpace(in.Nickname)

	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := validation.ValidateNickname(nickname); err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Email is already registered")
	}
	if existing, err := s.userRepo.GetByNickname(ctx, nickname); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Nickname is already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
		Nickname: nickname,
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, in LoginInput) (*models.User, error) {
	email := strings.TrimSpace(in.Email)
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile applies a partial update. Only the account owner may change
// their own profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user.ID != in.CallerID {
		return nil, models.NewPermissionDeniedError("You can only update your own profile")
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if err := validation.ValidateEmail(email); err != nil {
			return nil, err
		}
		if email != user.Email {
			if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
				return nil, err
			} else if existing != nil {
				return nil, models.NewConflictError("Email is already registered")
			}
			user.Email = email
		}
	}
	if in.Nickname != nil {
		nickname := strings.TrimSpace(*in.Nickname)
		if err := validation.ValidateNickname(nickname); err != nil {
			return nil, err
		}
		if nickname != user.Nickname {
			if existing, err := s.userRepo.GetByNickname(ctx, nickname); err != nil {
				return nil, err
			} else if existing != nil {
				return nil, models.NewConflictError("Nickname is already taken")
			}
			user.Nickname = nickname
		}
	}
	if in.Password != nil {
		if err := validation.ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account and everything that hangs off it in one
// transaction. Likes the user placed on other authors' posts decrement those
// posts' counters before the rows go. Image files on disk are unlinked only
// after the transaction commits.
func (s *UserService) DeleteUser(ctx context.Context, callerID, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if callerID != userID {
		return nil, models.NewPermissionDeniedError("You can only delete your own account")
	}

	var orphanedFiles []string

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		postRepo := repository.NewPostRepository(tx)
		commentRepo := repository.NewCommentRepository(tx)
		likeRepo := repository.NewLikeRepository(tx)
		imageRepo := repository.NewImageRepository(tx)

		likedPostIDs, err := likeRepo.GetPostIDsByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if err := likeRepo.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		for _, postID := range likedPostIDs {
			if err := postRepo.DecrementLikes(ctx, postID); err != nil {
				return err
			}
		}

		if err := commentRepo.DeleteByAuthorID(ctx, userID); err != nil {
			return err
		}

		ownPostIDs, err := postRepo.GetIDsByAuthorID(ctx, userID)
		if err != nil {
			return err
		}
		if err := likeRepo.DeleteByPostIDs(ctx, ownPostIDs); err != nil {
			return err
		}
		if err := commentRepo.DeleteByPostIDs(ctx, ownPostIDs); err != nil {
			return err
		}

		postImages, err := imageRepo.GetByPostIDs(ctx, ownPostIDs)
		if err != nil {
			return err
		}
		for _, img := range postImages {
			orphanedFiles = append(orphanedFiles, img.FilePath)
		}
		if err := imageRepo.DeleteByPostIDs(ctx, ownPostIDs); err != nil {
			return err
		}
		if err := postRepo.DeleteByIDs(ctx, ownPostIDs); err != nil {
			return err
		}

		profileImage, err := imageRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if profileImage != nil {
			orphanedFiles = append(orphanedFiles, profileImage.FilePath)
			if err := imageRepo.DeleteByUserID(ctx, userID); err != nil {
				return err
			}
		}

		return userRepo.Delete(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	middleware.CascadeDeletes.WithLabelValues("user").Inc()
	removeFiles(ctx, orphanedFiles)
	return user, nil
}

// removeFiles unlinks image files left behind by a committed delete. Failures
// are logged, not returned; the database rows are already gone.
func removeFiles(ctx context.Context, paths []string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			middleware.Logger.WarnContext(ctx, "failed to remove image file",
				slog.String("path", path),
				slog.String("error", fmt.Sprintf("%v", err)),
			)
		}
	}
}
