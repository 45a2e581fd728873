package server

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"corkboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadImage posts a multipart form with the given file contents.
func uploadImage(t *testing.T, path, filename string, content []byte) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(fiber.MethodPost, path, &buf)
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	resp, err := testApp.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestPostImageRoundTrip(t *testing.T) {
	author := registerUser(t)
	post := createPost(t, author.ID, "illustrated post")
	path := fmt.Sprintf("/api/images/post/%d", post.ID)

	// no image yet
	resp, _ := doJSON(t, fiber.MethodGet, path, nil, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw := uploadImage(t, path, "photo.jpg", []byte("jpeg-bytes"))
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", raw)

	var image models.Image
	decodeJSON(t, raw, &image)
	require.NotNil(t, image.PostID)
	assert.Equal(t, post.ID, *image.PostID)

	resp, raw = doJSON(t, fiber.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, []byte("jpeg-bytes"), raw)

	// a second upload replaces the first
	resp, _ = uploadImage(t, path, "replacement.jpg", []byte("new-bytes"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, fiber.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []byte("new-bytes"), raw)
}

func TestProfileImageRoundTrip(t *testing.T) {
	user := registerUser(t)
	path := fmt.Sprintf("/api/images/user/%d", user.ID)

	resp, _ := doJSON(t, fiber.MethodGet, path, nil, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw := uploadImage(t, path, "avatar.png", []byte("avatar-bytes"))
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", raw)

	resp, raw = doJSON(t, fiber.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, []byte("avatar-bytes"), raw)
}

func TestUploadImage_Errors(t *testing.T) {
	author := registerUser(t)
	post := createPost(t, author.ID, "a post")

	t.Run("unknown post", func(t *testing.T) {
		resp, _ := uploadImage(t, "/api/images/post/999999", "a.jpg", []byte("x"))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("missing file field", func(t *testing.T) {
		resp, _ := doJSON(t, fiber.MethodPost,
			fmt.Sprintf("/api/images/post/%d", post.ID), map[string]string{}, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty file", func(t *testing.T) {
		resp, _ := uploadImage(t,
			fmt.Sprintf("/api/images/post/%d", post.ID), "a.jpg", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
