package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"corkboard/internal/config"
	"corkboard/internal/models"
	"corkboard/internal/repository"

	"gorm.io/gorm"
)

const (
	DefaultUploadDir     = "uploads/images"
	DefaultMaxUploadSize = 10 * 1024 * 1024
	maxStoredNameLen     = 50
)

type ImageService struct {
	db            *gorm.DB
	imageRepo     repository.ImageRepository
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	uploadDir     string
	maxUploadSize int64
}

type UploadImageInput struct {
	// OwnerID is the post id or user id the image attaches to, depending on
	// which Replace method is called.
	OwnerID  uint
	Filename string
	Content  []byte
}

func NewImageService(
	db *gorm.DB,
	imageRepo repository.ImageRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) *ImageService {
	uploadDir := DefaultUploadDir
	maxUploadSize := int64(DefaultMaxUploadSize)
	if cfg != nil {
		if cfg.UploadDir != "" {
			uploadDir = cfg.UploadDir
		}
		if cfg.MaxUploadSize > 0 {
			maxUploadSize = cfg.MaxUploadSize
		}
	}
	return &ImageService{
		db:            db,
		imageRepo:     imageRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		uploadDir:     uploadDir,
		maxUploadSize: maxUploadSize,
	}
}

// ReplacePostImage attaches the uploaded file to the post, replacing any
// image already there; a post carries at most one image.
func (s *ImageService) ReplacePostImage(ctx context.Context, in UploadImageInput) (*models.Image, error) {
	post, err := s.postRepo.GetByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	filePath, fileName, err := s.storeFile(in.Filename, in.Content)
	if err != nil {
		return nil, err
	}

	postID := post.ID
	image := &models.Image{
		FileName: fileName,
		FilePath: filePath,
		PostID:   &postID,
	}

	oldPath, err := s.replaceRow(ctx, image, func(repo repository.ImageRepository) (*models.Image, error) {
		return repo.GetByPostID(ctx, postID)
	}, func(repo repository.ImageRepository) error {
		return repo.DeleteByPostID(ctx, postID)
	})
	if err != nil {
		os.Remove(filePath)
		return nil, err
	}

	if oldPath != "" {
		removeFiles(ctx, []string{oldPath})
	}
	return image, nil
}

// ReplaceProfileImage attaches the uploaded file to the user's account,
// replacing any existing profile image.
func (s *ImageService) ReplaceProfileImage(ctx context.Context, in UploadImageInput) (*models.Image, error) {
	user, err := s.userRepo.GetByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	filePath, fileName, err := s.storeFile(in.Filename, in.Content)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	image := &models.Image{
		FileName: fileName,
		FilePath: filePath,
		UserID:   &userID,
	}

	oldPath, err := s.replaceRow(ctx, image, func(repo repository.ImageRepository) (*models.Image, error) {
		return repo.GetByUserID(ctx, userID)
	}, func(repo repository.ImageRepository) error {
		return repo.DeleteByUserID(ctx, userID)
	})
	if err != nil {
		os.Remove(filePath)
		return nil, err
	}

	if oldPath != "" {
		removeFiles(ctx, []string{oldPath})
	}
	return image, nil
}

// replaceRow swaps the owner's image row inside one transaction and returns
// the replaced file's path, if there was one.
func (s *ImageService) replaceRow(
	ctx context.Context,
	image *models.Image,
	getExisting func(repository.ImageRepository) (*models.Image, error),
	deleteExisting func(repository.ImageRepository) error,
) (string, error) {
	var oldPath string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewImageRepository(tx)

		existing, err := getExisting(repo)
		if err != nil {
			return err
		}
		if existing != nil {
			oldPath = existing.FilePath
			if err := deleteExisting(repo); err != nil {
				return err
			}
		}
		return repo.Create(ctx, image)
	})
	if err != nil {
		return "", err
	}
	return oldPath, nil
}

// GetPostImage returns the bytes of the post's image, or (nil, nil) when the
// post has none.
func (s *ImageService) GetPostImage(ctx context.Context, postID uint) ([]byte, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	image, err := s.imageRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.readImage(image)
}

// GetProfileImage returns the bytes of the user's profile image, or
// (nil, nil) when the user has none.
func (s *ImageService) GetProfileImage(ctx context.Context, userID uint) ([]byte, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	image, err := s.imageRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.readImage(image)
}

func (s *ImageService) readImage(image *models.Image) ([]byte, error) {
	if image == nil {
		return nil, nil
	}
	data, err := os.ReadFile(image.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.NewNotFoundError("Image file", image.ID)
		}
		return nil, models.NewInternalError(err)
	}
	return data, nil
}

// storeFile writes the upload to the upload directory under a
// "<unix-millis>_<name>" filename, with the original name truncated to 50
// characters. Returns the full path and the stored filename.
func (s *ImageService) storeFile(filename string, content []byte) (string, string, error) {
	if len(content) == 0 {
		return "", "", models.NewValidationError("Image file is required")
	}
	if int64(len(content)) > s.maxUploadSize {
		return "", "", models.NewValidationError(
			fmt.Sprintf("Image exceeds the maximum upload size of %d bytes", s.maxUploadSize))
	}

	name := sanitizeFilename(filename)
	if len(name) > maxStoredNameLen {
		name = name[:maxStoredNameLen]
	}
	stored := strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + name

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", "", models.NewInternalError(err)
	}

	path := filepath.Join(s.uploadDir, stored)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", "", models.NewInternalError(err)
	}
	return path, stored, nil
}

// sanitizeFilename strips any directory components and path separators from
// a client-supplied filename.
func sanitizeFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload"
	}
	return name
}
