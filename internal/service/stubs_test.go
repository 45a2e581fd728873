package service

import (
	"context"

	"corkboard/internal/models"
)

// Function-field stubs for the repository interfaces. Tests override only
// the fields they care about.

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByNicknameFn func(context.Context, string) (*models.User, error)
	listFn          func(context.Context, int, int) ([]models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	return s.getByNicknameFn(ctx, nickname)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByNicknameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

type postRepoStub struct {
	createFn           func(context.Context, *models.Post) error
	getByIDFn          func(context.Context, uint) (*models.Post, error)
	getByIDFullFn      func(context.Context, uint) (*models.Post, error)
	listFn             func(context.Context, int, int) ([]models.Post, error)
	getIDsByAuthorIDFn func(context.Context, uint) ([]uint, error)
	updateFn           func(context.Context, *models.Post) error
	deleteFn           func(context.Context, uint) error
	deleteByIDsFn      func(context.Context, []uint) error
	incrementLikesFn   func(context.Context, uint) error
	decrementLikesFn   func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByIDFull(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFullFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) GetIDsByAuthorID(ctx context.Context, authorID uint) ([]uint, error) {
	return s.getIDsByAuthorIDFn(ctx, authorID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) DeleteByIDs(ctx context.Context, ids []uint) error {
	return s.deleteByIDsFn(ctx, ids)
}
func (s *postRepoStub) IncrementLikes(ctx context.Context, id uint) error {
	return s.incrementLikesFn(ctx, id)
}
func (s *postRepoStub) DecrementLikes(ctx context.Context, id uint) error {
	return s.decrementLikesFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		getByIDFullFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		listFn:             func(_ context.Context, _, _ int) ([]models.Post, error) { return nil, nil },
		getIDsByAuthorIDFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		updateFn:           func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
		deleteByIDsFn:      func(_ context.Context, _ []uint) error { return nil },
		incrementLikesFn:   func(_ context.Context, _ uint) error { return nil },
		decrementLikesFn:   func(_ context.Context, _ uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn           func(context.Context, *models.Comment) error
	getByIDFn          func(context.Context, uint) (*models.Comment, error)
	listByPostFn       func(context.Context, uint) ([]models.Comment, error)
	updateFn           func(context.Context, *models.Comment) error
	deleteFn           func(context.Context, uint) error
	deleteByPostIDFn   func(context.Context, uint) error
	deleteByPostIDsFn  func(context.Context, []uint) error
	deleteByAuthorIDFn func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) DeleteByPostID(ctx context.Context, postID uint) error {
	return s.deleteByPostIDFn(ctx, postID)
}
func (s *commentRepoStub) DeleteByPostIDs(ctx context.Context, postIDs []uint) error {
	return s.deleteByPostIDsFn(ctx, postIDs)
}
func (s *commentRepoStub) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	return s.deleteByAuthorIDFn(ctx, authorID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPostFn:       func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		updateFn:           func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
		deleteByPostIDFn:   func(_ context.Context, _ uint) error { return nil },
		deleteByPostIDsFn:  func(_ context.Context, _ []uint) error { return nil },
		deleteByAuthorIDFn: func(_ context.Context, _ uint) error { return nil },
	}
}

type likeRepoStub struct {
	createFn              func(context.Context, *models.Like) error
	getByUserAndPostFn    func(context.Context, uint, uint) (*models.Like, error)
	existsByUserAndPostFn func(context.Context, uint, uint) (bool, error)
	countByPostIDFn       func(context.Context, uint) (int64, error)
	getPostIDsByUserIDFn  func(context.Context, uint) ([]uint, error)
	deleteFn              func(context.Context, uint) error
	deleteByPostIDFn      func(context.Context, uint) error
	deleteByPostIDsFn     func(context.Context, []uint) error
	deleteByUserIDFn      func(context.Context, uint) error
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	return s.getByUserAndPostFn(ctx, userID, postID)
}
func (s *likeRepoStub) ExistsByUserAndPost(ctx context.Context, userID, postID uint) (bool, error) {
	return s.existsByUserAndPostFn(ctx, userID, postID)
}
func (s *likeRepoStub) CountByPostID(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostIDFn(ctx, postID)
}
func (s *likeRepoStub) GetPostIDsByUserID(ctx context.Context, userID uint) ([]uint, error) {
	return s.getPostIDsByUserIDFn(ctx, userID)
}
func (s *likeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *likeRepoStub) DeleteByPostID(ctx context.Context, postID uint) error {
	return s.deleteByPostIDFn(ctx, postID)
}
func (s *likeRepoStub) DeleteByPostIDs(ctx context.Context, postIDs []uint) error {
	return s.deleteByPostIDsFn(ctx, postIDs)
}
func (s *likeRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn:              func(_ context.Context, _ *models.Like) error { return nil },
		getByUserAndPostFn:    func(_ context.Context, _, _ uint) (*models.Like, error) { return nil, nil },
		existsByUserAndPostFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countByPostIDFn:       func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		getPostIDsByUserIDFn:  func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		deleteFn:              func(_ context.Context, _ uint) error { return nil },
		deleteByPostIDFn:      func(_ context.Context, _ uint) error { return nil },
		deleteByPostIDsFn:     func(_ context.Context, _ []uint) error { return nil },
		deleteByUserIDFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

type imageRepoStub struct {
	createFn          func(context.Context, *models.Image) error
	getByPostIDFn     func(context.Context, uint) (*models.Image, error)
	getByUserIDFn     func(context.Context, uint) (*models.Image, error)
	getByPostIDsFn    func(context.Context, []uint) ([]models.Image, error)
	deleteFn          func(context.Context, uint) error
	deleteByPostIDFn  func(context.Context, uint) error
	deleteByPostIDsFn func(context.Context, []uint) error
	deleteByUserIDFn  func(context.Context, uint) error
}

func (s *imageRepoStub) Create(ctx context.Context, image *models.Image) error {
	return s.createFn(ctx, image)
}
func (s *imageRepoStub) GetByPostID(ctx context.Context, postID uint) (*models.Image, error) {
	return s.getByPostIDFn(ctx, postID)
}
func (s *imageRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Image, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *imageRepoStub) GetByPostIDs(ctx context.Context, postIDs []uint) ([]models.Image, error) {
	return s.getByPostIDsFn(ctx, postIDs)
}
func (s *imageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *imageRepoStub) DeleteByPostID(ctx context.Context, postID uint) error {
	return s.deleteByPostIDFn(ctx, postID)
}
func (s *imageRepoStub) DeleteByPostIDs(ctx context.Context, postIDs []uint) error {
	return s.deleteByPostIDsFn(ctx, postIDs)
}
func (s *imageRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}

func noopImageRepo() *imageRepoStub {
	return &imageRepoStub{
		createFn:          func(_ context.Context, _ *models.Image) error { return nil },
		getByPostIDFn:     func(_ context.Context, _ uint) (*models.Image, error) { return nil, nil },
		getByUserIDFn:     func(_ context.Context, _ uint) (*models.Image, error) { return nil, nil },
		getByPostIDsFn:    func(_ context.Context, _ []uint) ([]models.Image, error) { return nil, nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
		deleteByPostIDFn:  func(_ context.Context, _ uint) error { return nil },
		deleteByPostIDsFn: func(_ context.Context, _ []uint) error { return nil },
		deleteByUserIDFn:  func(_ context.Context, _ uint) error { return nil },
	}
}
