package service

import (
	"context"
	"encoding/base64"
	"os"
	"strings"
	"unicode/utf8"

	"corkboard/internal/middleware"
	"corkboard/internal/models"
	"corkboard/internal/repository"

	"gorm.io/gorm"
)

type PostService struct {
	db       *gorm.DB
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	// ID must be nil; clients cannot pick their own post ids.
	ID       *uint
	Title    string
	Content  string
	AuthorID uint
	Views    *uint
}

// PostPatch carries the nullable fields of a post update; only non-nil
// fields overwrite. The ID, when present, must match the path id.
type PostPatch struct {
	ID      *uint   `json:"id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Likes   *uint   `json:"likes"`
	Views   *uint   `json:"views"`
}

type UpdatePostInput struct {
	CallerID uint
	PostID   uint
	Patch    PostPatch
}

type ListPostsInput struct {
	Limit  int
	Offset int
}

func NewPostService(db *gorm.DB, postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{db: db, postRepo: postRepo, userRepo: userRepo}
}

const maxPostTitleLen = 100

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.ID != nil {
		return nil, models.NewValidationError("id cannot be supplied when creating a post")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if utf8.RuneCountInString(title) > maxPostTitleLen {
		return nil, models.NewValidationError("Title too long (max 100 characters)")
	}
	if in.AuthorID == 0 {
		return nil, models.NewValidationError("author_id is required")
	}

	author, err := s.userRepo.GetByID(ctx, in.AuthorID)
	if err != nil {
		return nil, asValidation(err, "author_id does not reference an existing user")
	}

	post := &models.Post{
		Title:    title,
		Content:  in.Content,
		AuthorID: author.ID,
	}
	if in.Views != nil {
		post.Views = *in.Views
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByIDFull(ctx, id)
}

// ListPosts returns the newest posts first. Each author's profile image is
// inlined as base64 so list clients need no second round trip; a missing or
// unreadable file yields an empty string rather than an error.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]models.Post, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		author := posts[i].Author
		if author == nil || author.ProfileImage == nil {
			continue
		}
		author.ProfileImageData = encodeImageFile(author.ProfileImage.FilePath)
	}
	return posts, nil
}

// encodeImageFile reads an image file and returns it base64-encoded, or ""
// when the file cannot be read.
func encodeImageFile(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.CallerID {
		return nil, models.NewPermissionDeniedError("You can only update your own posts")
	}
	return s.applyPatch(ctx, post, in.PostID, in.Patch)
}

// UpdateViews applies the same patch mechanics without an ownership gate.
// The view counter is an absolute set, not an increment; the client sends
// the count it computed.
func (s *PostService) UpdateViews(ctx context.Context, postID uint, patch PostPatch) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.applyPatch(ctx, post, postID, patch)
}

func (s *PostService) applyPatch(ctx context.Context, post *models.Post, pathID uint, patch PostPatch) (*models.Post, error) {
	if patch.ID != nil && *patch.ID != pathID {
		return nil, models.NewValidationError("Body id does not match path id")
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		if utf8.RuneCountInString(title) > maxPostTitleLen {
			return nil, models.NewValidationError("Title too long (max 100 characters)")
		}
		post.Title = title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Likes != nil {
		post.Likes = *patch.Likes
	}
	if patch.Views != nil {
		post.Views = *patch.Views
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and its dependents in one transaction:
// comments first, then likes, then the image row, then the post itself.
// The image file is unlinked after commit.
func (s *PostService) DeletePost(ctx context.Context, callerID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, models.NewPermissionDeniedError("You can only delete your own posts")
	}

	var orphanedFiles []string

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		postRepo := repository.NewPostRepository(tx)
		commentRepo := repository.NewCommentRepository(tx)
		likeRepo := repository.NewLikeRepository(tx)
		imageRepo := repository.NewImageRepository(tx)

		if err := commentRepo.DeleteByPostID(ctx, postID); err != nil {
			return err
		}
		if err := likeRepo.DeleteByPostID(ctx, postID); err != nil {
			return err
		}

		image, err := imageRepo.GetByPostID(ctx, postID)
		if err != nil {
			return err
		}
		if image != nil {
			orphanedFiles = append(orphanedFiles, image.FilePath)
			if err := imageRepo.DeleteByPostID(ctx, postID); err != nil {
				return err
			}
		}

		return postRepo.Delete(ctx, postID)
	})
	if err != nil {
		return nil, err
	}

	middleware.CascadeDeletes.WithLabelValues("post").Inc()
	removeFiles(ctx, orphanedFiles)
	return post, nil
}
