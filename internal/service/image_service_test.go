package service

import (
	"context"
	"os"
	"regexp"
	"strings"
	"testing"

	"corkboard/internal/config"
	"corkboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageFixture(t *testing.T) (*fixture, *ImageService) {
	t.Helper()
	f := newFixture(t)
	svc := NewImageService(f.db, f.imageRepo, f.postRepo, f.userRepo, &config.Config{
		UploadDir:     t.TempDir(),
		MaxUploadSize: 1024,
	})
	return f, svc
}

func TestImageService_ReplacePostImage(t *testing.T) {
	f, svc := newImageFixture(t)
	ctx := context.Background()

	alice := f.mustCreateUser(t, "alice@example.com", "alice")
	post := f.mustCreatePost(t, alice.ID, "with image")

	_, err := svc.ReplacePostImage(ctx, UploadImageInput{OwnerID: 999, Filename: "a.jpg", Content: []byte("x")})
	assertAppErrorCode(t, err, models.CodeNotFound)

	first, err := svc.ReplacePostImage(ctx, UploadImageInput{
		OwnerID:  post.ID,
		Filename: "first.jpg",
		Content:  []byte("first-bytes"),
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+_first\.jpg$`), first.FileName)
	assert.FileExists(t, first.FilePath)

	second, err := svc.ReplacePostImage(ctx, UploadImageInput{
		OwnerID:  post.ID,
		Filename: "second.jpg",
		Content:  []byte("second-bytes"),
	})
	require.NoError(t, err)

	// a post holds at most one image; the old row and file are gone
	assert.Equal(t, int64(1), f.countRows(t, &models.Image{}, "post_id = ?", post.ID))
	assert.NoFileExists(t, first.FilePath)
	assert.FileExists(t, second.FilePath)

	data, err := svc.GetPostImage(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("second-bytes"), data)
}

func TestImageService_ReplaceProfileImage(t *testing.T) {
	f, svc := newImageFixture(t)
	ctx := context.Background()

	alice := f.mustCreateUser(t, "alice@example.com", "alice")

	image, err := svc.ReplaceProfileImage(ctx, UploadImageInput{
		OwnerID:  alice.ID,
		Filename: "avatar.png",
		Content:  []byte("avatar-bytes"),
	})
	require.NoError(t, err)
	require.NotNil(t, image.UserID)
	assert.Equal(t, alice.ID, *image.UserID)

	data, err := svc.GetProfileImage(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("avatar-bytes"), data)

	_, err = svc.ReplaceProfileImage(ctx, UploadImageInput{OwnerID: 999, Filename: "a.png", Content: []byte("x")})
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestImageService_GetPostImage_NoImageIsNil(t *testing.T) {
	f, svc := newImageFixture(t)
	ctx := context.Background()

	alice := f.mustCreateUser(t, "alice@example.com", "alice")
	post := f.mustCreatePost(t, alice.ID, "bare post")

	data, err := svc.GetPostImage(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, data)

	_, err = svc.GetPostImage(ctx, 999)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestImageService_GetPostImage_MissingFile(t *testing.T) {
	f, svc := newImageFixture(t)
	ctx := context.Background()

	alice := f.mustCreateUser(t, "alice@example.com", "alice")
	post := f.mustCreatePost(t, alice.ID, "with image")

	image, err := svc.ReplacePostImage(ctx, UploadImageInput{
		OwnerID:  post.ID,
		Filename: "gone.jpg",
		Content:  []byte("bytes"),
	})
	require.NoError(t, err)
	require.NoError(t, os.Remove(image.FilePath))

	_, err = svc.GetPostImage(ctx, post.ID)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestImageService_UploadValidation(t *testing.T) {
	f, svc := newImageFixture(t)
	ctx := context.Background()

	alice := f.mustCreateUser(t, "alice@example.com", "alice")
	post := f.mustCreatePost(t, alice.ID, "a post")

	_, err := svc.ReplacePostImage(ctx, UploadImageInput{OwnerID: post.ID, Filename: "a.jpg"})
	assertAppErrorCode(t, err, models.CodeValidation)

	oversized := make([]byte, 2048)
	_, err = svc.ReplacePostImage(ctx, UploadImageInput{OwnerID: post.ID, Filename: "a.jpg", Content: oversized})
	assertAppErrorCode(t, err, models.CodeValidation)

	// failed uploads leave no row behind
	assert.Equal(t, int64(0), f.countRows(t, &models.Image{}, "post_id = ?", post.ID))
}

func TestImageService_LongFilenamesAreTruncated(t *testing.T) {
	f, svc := newImageFixture(t)
	ctx := context.Background()

	alice := f.mustCreateUser(t, "alice@example.com", "alice")
	post := f.mustCreatePost(t, alice.ID, "a post")

	longName := strings.Repeat("n", 80) + ".jpg"
	image, err := svc.ReplacePostImage(ctx, UploadImageInput{
		OwnerID:  post.ID,
		Filename: longName,
		Content:  []byte("bytes"),
	})
	require.NoError(t, err)

	parts := strings.SplitN(image.FileName, "_", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[1], 50)
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\pic.png`, "pic.png"},
		{"", "upload"},
		{".", "upload"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}
