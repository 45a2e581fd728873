package service

import (
	"context"
	"errors"
	"strings"

	"corkboard/internal/models"
	"corkboard/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	// ID must be nil; clients cannot pick their own comment ids.
	ID         *uint
	PathPostID uint
	// PostID is the post id carried in the request body, if any. It must
	// match PathPostID when set.
	PostID   *uint
	AuthorID uint
	Body     string
}

type UpdateCommentInput struct {
	CallerID  uint
	CommentID uint
	Body      *string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment validates the payload against the addressed post. A post or
// author that does not resolve is a payload problem, not a missing resource,
// so both report as validation failures.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.ID != nil {
		return nil, models.NewValidationError("id cannot be supplied when creating a comment")
	}
	if in.PostID != nil && *in.PostID != in.PathPostID {
		return nil, models.NewValidationError("Body post_id does not match path post id")
	}
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, models.NewValidationError("Comment body is required")
	}
	if in.AuthorID == 0 {
		return nil, models.NewValidationError("author_id is required")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PathPostID); err != nil {
		return nil, asValidation(err, "post id does not reference an existing post")
	}
	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, asValidation(err, "author_id does not reference an existing user")
	}

	comment := &models.Comment{
		Body:     body,
		PostID:   in.PathPostID,
		AuthorID: in.AuthorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// asValidation downgrades a not-found error to a validation error with the
// given message; other errors pass through.
func asValidation(err error, message string) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
		return models.NewValidationError(message)
	}
	return err
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// ListComments returns a post's comments oldest first. The post itself is
// not looked up, so listing against a deleted post id yields an empty slice.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != in.CallerID {
		return nil, models.NewPermissionDeniedError("You can only update your own comments")
	}

	if in.Body != nil {
		body := strings.TrimSpace(*in.Body)
		if body == "" {
			return nil, models.NewValidationError("Comment body cannot be blank")
		}
		comment.Body = body
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes the comment and returns its final state so the
// handler can echo a snapshot back to the client.
func (s *CommentService) DeleteComment(ctx context.Context, callerID, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != callerID {
		return nil, models.NewPermissionDeniedError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}
	return comment, nil
}
