package audios

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mediaportal/internal/dto"
	"mediaportal/internal/models"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) UploadAudio(ctx context.Context, upload models.FileUpload, title string, description string, duration *float64, owner *models.User) (*models.Audio, error) {
	args := m.Called(ctx, upload, title, description, duration, owner)
	return args.Get(0).(*models.Audio), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withUser(req *http.Request, user *models.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), models.UserContextKey, user))
}

func multipartBody(t *testing.T, fields map[string]string, fileName string, mime string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}

	if fileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		header.Set("Content-Type", mime)
		part, err := writer.CreatePart(header)
		assert.NoError(t, err)
		_, err = part.Write(content)
		assert.NoError(t, err)
	}

	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpload_Success_WithDuration(t *testing.T) {
	t.Parallel()

	uploader := new(mockUploader)
	user := &models.User{ID: "u1", Role: models.RoleUser}

	duration := 215.4
	audio := &models.Audio{
		ID:       "a1",
		Title:    "Track",
		FileName: "track.mp3",
		FilePath: "audios/abc.mp3",
		Duration: &duration,
		Mime:     models.MimeMPEG,
	}
	uploader.On("UploadAudio", mock.Anything, mock.AnythingOfType("models.FileUpload"), "Track", "", &duration, user).Return(audio, nil)

	body, contentType := multipartBody(t, map[string]string{"title": "Track", "duration": "215.4"}, "track.mp3", models.MimeMPEG, []byte("mp3-bytes"))
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/audios", body), user)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	Upload(req.Context(), discardLogger(), w, req, uploader)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var parsed dto.AudioResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "a1", parsed.ID)
	assert.Equal(t, "/files/audios/abc.mp3", parsed.FileURL)
	assert.Equal(t, 215.4, *parsed.Duration)
	uploader.AssertExpectations(t)
}

func TestUpload_Success_NoDuration(t *testing.T) {
	t.Parallel()

	uploader := new(mockUploader)
	user := &models.User{ID: "u1"}

	audio := &models.Audio{ID: "a1", Title: "Track", FilePath: "audios/abc.mp3"}
	uploader.On("UploadAudio", mock.Anything, mock.Anything, "Track", "", (*float64)(nil), user).Return(audio, nil)

	body, contentType := multipartBody(t, map[string]string{"title": "Track"}, "track.mp3", models.MimeMPEG, []byte("x"))
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/audios", body), user)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	Upload(req.Context(), discardLogger(), w, req, uploader)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
	uploader.AssertExpectations(t)
}

func TestUpload_InvalidDuration(t *testing.T) {
	t.Parallel()

	uploader := new(mockUploader)
	user := &models.User{ID: "u1"}

	body, contentType := multipartBody(t, map[string]string{"title": "Track", "duration": "abc"}, "track.mp3", models.MimeMPEG, []byte("x"))
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/audios", body), user)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	Upload(req.Context(), discardLogger(), w, req, uploader)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	uploader.AssertNotCalled(t, "UploadAudio", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpload_NegativeDuration(t *testing.T) {
	t.Parallel()

	uploader := new(mockUploader)
	user := &models.User{ID: "u1"}

	body, contentType := multipartBody(t, map[string]string{"title": "Track", "duration": "-5"}, "track.mp3", models.MimeMPEG, []byte("x"))
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/audios", body), user)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	Upload(req.Context(), discardLogger(), w, req, uploader)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpload_NonFiniteDuration(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"NaN", "+Inf", "-Inf", "Inf"} {
		uploader := new(mockUploader)
		user := &models.User{ID: "u1"}

		body, contentType := multipartBody(t, map[string]string{"title": "Track", "duration": raw}, "track.mp3", models.MimeMPEG, []byte("x"))
		req := withUser(httptest.NewRequest(http.MethodPost, "/api/audios", body), user)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		Upload(req.Context(), discardLogger(), w, req, uploader)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode, "duration=%s", raw)
		uploader.AssertNotCalled(t, "UploadAudio", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestUpload_NoContextUser(t *testing.T) {
	t.Parallel()

	uploader := new(mockUploader)

	body, contentType := multipartBody(t, map[string]string{"title": "Track"}, "track.mp3", models.MimeMPEG, []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/audios", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	Upload(req.Context(), discardLogger(), w, req, uploader)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestUpload_MissingTitle(t *testing.T) {
	t.Parallel()

	uploader := new(mockUploader)
	user := &models.User{ID: "u1"}

	body, contentType := multipartBody(t, map[string]string{}, "track.mp3", models.MimeMPEG, []byte("x"))
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/audios", body), user)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	Upload(req.Context(), discardLogger(), w, req, uploader)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpload_MissingFile(t *testing.T) {
	t.Parallel()

	uploader := new(mockUploader)
	user := &models.User{ID: "u1"}

	body, contentType := multipartBody(t, map[string]string{"title": "Track"}, "", "", nil)
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/audios", body), user)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	Upload(req.Context(), discardLogger(), w, req, uploader)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpload_DisallowedType(t *testing.T) {
	t.Parallel()

	uploader := new(mockUploader)
	user := &models.User{ID: "u1"}

	uploader.On("UploadAudio", mock.Anything, mock.Anything, "Track", "", (*float64)(nil), user).Return((*models.Audio)(nil), models.ErrDisallowedFileType)

	body, contentType := multipartBody(t, map[string]string{"title": "Track"}, "track.wav", "audio/wav", []byte("x"))
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/audios", body), user)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	Upload(req.Context(), discardLogger(), w, req, uploader)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpload_TooLarge(t *testing.T) {
	t.Parallel()

	uploader := new(mockUploader)
	user := &models.User{ID: "u1"}

	uploader.On("UploadAudio", mock.Anything, mock.Anything, "Track", "", (*float64)(nil), user).Return((*models.Audio)(nil), models.ErrFileTooLarge)

	body, contentType := multipartBody(t, map[string]string{"title": "Track"}, "track.mp3", models.MimeMPEG, []byte("x"))
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/audios", body), user)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	Upload(req.Context(), discardLogger(), w, req, uploader)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
