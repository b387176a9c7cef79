package audioservice

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mediaportal/internal/models"
	"mediaportal/internal/repositories/storage"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAudioRepository struct {
	mock.Mock
}

func (m *MockAudioRepository) CreateAudio(ctx context.Context, audio *models.Audio) error {
	args := m.Called(ctx, audio)
	return args.Error(0)
}

func (m *MockAudioRepository) AudioByID(ctx context.Context, id string) (*models.Audio, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Audio), args.Error(1)
}

func (m *MockAudioRepository) ListAudios(ctx context.Context) ([]*models.Audio, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Audio), args.Error(1)
}

func (m *MockAudioRepository) UpdateAudio(ctx context.Context, id string, patch models.AudioPatch) (*models.Audio, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(*models.Audio), args.Error(1)
}

func (m *MockAudioRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(subdir string, origName string, reader io.Reader) (*storage.StoredFile, error) {
	args := m.Called(subdir, origName, reader)
	return args.Get(0).(*storage.StoredFile), args.Error(1)
}

func (m *MockFileStorage) Delete(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCache) Del(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func newTestService() (*AudioService, *MockAudioRepository, *MockCache, *MockFileStorage) {
	mockRepo := new(MockAudioRepository)
	mockCache := new(MockCache)
	mockStorage := new(MockFileStorage)
	return New(slog.Default(), mockRepo, mockCache, mockStorage), mockRepo, mockCache, mockStorage
}

func mp3Upload(mime string, size int64) models.FileUpload {
	return models.FileUpload{
		FileName: "track.mp3",
		Mime:     mime,
		Size:     size,
		Content:  bytes.NewReader([]byte("data")),
	}
}

func TestUploadAudio_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, mockStorage := newTestService()

	owner := &models.User{ID: "u1", Role: models.RoleUser}
	duration := 215.4
	upload := mp3Upload(models.MimeMPEG, 2048)

	stored := &storage.StoredFile{Name: "abc.mp3", Path: "audios/abc.mp3", Size: 2048}

	mockStorage.On("Save", "audios", "track.mp3", mock.Anything).Return(stored, nil)
	mockRepo.On("CreateAudio", ctx, mock.Anything).Return(nil)
	mockCache.On("Del", ctx, []string{"audios:all"}).Return(nil)

	audio, err := service.UploadAudio(ctx, upload, "Track", "first take", &duration, owner)

	assert.NoError(t, err)
	assert.NotEmpty(t, audio.ID)
	assert.Equal(t, "audios/abc.mp3", audio.FilePath)
	assert.Equal(t, &duration, audio.Duration)
	assert.Equal(t, "u1", audio.UploadedBy)
	mockStorage.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestUploadAudio_LegacyMimeAccepted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, mockStorage := newTestService()

	owner := &models.User{ID: "u1"}
	upload := mp3Upload(models.MimeMP3, 2048)

	stored := &storage.StoredFile{Name: "abc.mp3", Path: "audios/abc.mp3", Size: 2048}

	mockStorage.On("Save", "audios", "track.mp3", mock.Anything).Return(stored, nil)
	mockRepo.On("CreateAudio", ctx, mock.Anything).Return(nil)
	mockCache.On("Del", ctx, []string{"audios:all"}).Return(nil)

	audio, err := service.UploadAudio(ctx, upload, "Track", "", nil, owner)

	assert.NoError(t, err)
	assert.Nil(t, audio.Duration)
}

func TestUploadAudio_DisallowedMime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, _, mockStorage := newTestService()

	owner := &models.User{ID: "u1"}
	upload := mp3Upload("audio/wav", 2048)

	audio, err := service.UploadAudio(ctx, upload, "Track", "", nil, owner)

	assert.Nil(t, audio)
	assert.ErrorIs(t, err, models.ErrDisallowedFileType)
	mockStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "CreateAudio", mock.Anything, mock.Anything)
}

func TestUploadAudio_TooLarge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, _, mockStorage := newTestService()

	owner := &models.User{ID: "u1"}
	upload := mp3Upload(models.MimeMPEG, models.MaxAudioSize+1)

	audio, err := service.UploadAudio(ctx, upload, "Track", "", nil, owner)

	assert.Nil(t, audio)
	assert.ErrorIs(t, err, models.ErrFileTooLarge)
	mockStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadAudio_MimeCheckedBeforeSize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, _, _ := newTestService()

	owner := &models.User{ID: "u1"}
	upload := mp3Upload("audio/wav", models.MaxAudioSize+1)

	audio, err := service.UploadAudio(ctx, upload, "Track", "", nil, owner)

	assert.Nil(t, audio)
	assert.ErrorIs(t, err, models.ErrDisallowedFileType)
}

func TestUploadAudio_CreateMetadataError_FileDeleted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, _, mockStorage := newTestService()

	owner := &models.User{ID: "u1"}
	upload := mp3Upload(models.MimeMPEG, 10)

	stored := &storage.StoredFile{Name: "x.mp3", Path: "audios/x.mp3", Size: 10}

	mockStorage.On("Save", "audios", "track.mp3", mock.Anything).Return(stored, nil)
	mockRepo.On("CreateAudio", ctx, mock.Anything).Return(errors.New("db error"))
	mockStorage.On("Delete", "audios/x.mp3").Return(nil)

	audio, err := service.UploadAudio(ctx, upload, "Track", "", nil, owner)

	assert.Nil(t, audio)
	assert.ErrorIs(t, err, models.ErrInternal)
	mockStorage.AssertExpectations(t)
}

func TestAudioByID_FromCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, mockCache, _ := newTestService()

	audio := &models.Audio{ID: "a1", Title: "cached"}
	audioJSON, _ := audioToJSON(audio)

	mockCache.On("Get", ctx, "audios:a1").Return(audioJSON, nil)

	res, err := service.AudioByID(ctx, "a1")

	assert.NoError(t, err)
	assert.Equal(t, "a1", res.ID)
	mockCache.AssertExpectations(t)
}

func TestAudioByID_CacheMiss_DBSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, _ := newTestService()

	audio := &models.Audio{ID: "a1", Title: "fresh"}

	mockCache.On("Get", ctx, "audios:a1").Return("", errors.New("miss"))
	mockRepo.On("AudioByID", ctx, "a1").Return(audio, nil)
	mockCache.On("Set", ctx, "audios:a1", mock.Anything).Return(nil)

	res, err := service.AudioByID(ctx, "a1")

	assert.NoError(t, err)
	assert.Equal(t, "a1", res.ID)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAudioByID_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, _ := newTestService()

	mockCache.On("Get", ctx, "audios:a404").Return("", errors.New("miss"))
	mockRepo.On("AudioByID", ctx, "a404").Return((*models.Audio)(nil), models.ErrAudioNotFound)

	res, err := service.AudioByID(ctx, "a404")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, models.ErrAudioNotFound)
}

func TestListAudios_CacheHit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, mockCache, _ := newTestService()

	audios := []*models.Audio{{ID: "a1"}, {ID: "a2"}}
	audiosJSON, _ := audiosToJSON(audios)

	mockCache.On("Get", ctx, "audios:all").Return(audiosJSON, nil)

	res, err := service.ListAudios(ctx)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestListAudios_CacheMiss_RepoSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, _ := newTestService()

	audios := []*models.Audio{{ID: "a1"}}

	mockCache.On("Get", ctx, "audios:all").Return("", errors.New("miss"))
	mockRepo.On("ListAudios", ctx).Return(audios, nil)
	mockCache.On("Set", ctx, "audios:all", mock.Anything).Return(nil)

	res, err := service.ListAudios(ctx)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	mockRepo.AssertExpectations(t)
}

func TestListAudios_RepoError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, _ := newTestService()

	mockCache.On("Get", ctx, "audios:all").Return("", errors.New("miss"))
	mockRepo.On("ListAudios", ctx).Return(([]*models.Audio)(nil), errors.New("db fail"))

	res, err := service.ListAudios(ctx)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, models.ErrInternal)
}

func TestUpdateAudio_Success_Owner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, _ := newTestService()

	audio := &models.Audio{ID: "a1", Title: "old", UploadedBy: "u1"}
	actor := &models.User{ID: "u1", Role: models.RoleUser}

	duration := 120.0
	patch := models.AudioPatch{Duration: &duration}
	updated := &models.Audio{ID: "a1", Title: "old", Duration: &duration, UploadedBy: "u1"}

	mockCache.On("Get", ctx, "audios:a1").Return("", errors.New("miss"))
	mockRepo.On("AudioByID", ctx, "a1").Return(audio, nil)
	mockCache.On("Set", ctx, "audios:a1", mock.Anything).Return(nil)
	mockRepo.On("UpdateAudio", ctx, "a1", patch).Return(updated, nil)
	mockCache.On("Del", ctx, []string{"audios:a1", "audios:all"}).Return(nil)

	res, err := service.UpdateAudio(ctx, "a1", patch, actor)

	assert.NoError(t, err)
	assert.Equal(t, &duration, res.Duration)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestUpdateAudio_Forbidden(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, _ := newTestService()

	audio := &models.Audio{ID: "a1", UploadedBy: "owner"}
	actor := &models.User{ID: "intruder", Role: models.RoleUser}

	mockCache.On("Get", ctx, "audios:a1").Return("", errors.New("miss"))
	mockRepo.On("AudioByID", ctx, "a1").Return(audio, nil)
	mockCache.On("Set", ctx, "audios:a1", mock.Anything).Return(nil)

	res, err := service.UpdateAudio(ctx, "a1", models.AudioPatch{}, actor)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, models.ErrForbidden)
	mockRepo.AssertNotCalled(t, "UpdateAudio", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAudio_Admin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, _ := newTestService()

	audio := &models.Audio{ID: "a1", UploadedBy: "someone_else"}
	admin := &models.User{ID: "adm", Role: models.RoleAdmin}

	patch := models.AudioPatch{}
	updated := &models.Audio{ID: "a1", UploadedBy: "someone_else"}

	mockCache.On("Get", ctx, "audios:a1").Return("", errors.New("miss"))
	mockRepo.On("AudioByID", ctx, "a1").Return(audio, nil)
	mockCache.On("Set", ctx, "audios:a1", mock.Anything).Return(nil)
	mockRepo.On("UpdateAudio", ctx, "a1", patch).Return(updated, nil)
	mockCache.On("Del", ctx, []string{"audios:a1", "audios:all"}).Return(nil)

	res, err := service.UpdateAudio(ctx, "a1", patch, admin)

	assert.NoError(t, err)
	assert.NotNil(t, res)
}

func TestDeleteAudio_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, mockStorage := newTestService()

	audio := &models.Audio{ID: "a1", UploadedBy: "u1", FilePath: "audios/a1.mp3"}
	actor := &models.User{ID: "u1", Role: models.RoleUser}

	mockCache.On("Get", ctx, "audios:a1").Return("", errors.New("miss"))
	mockRepo.On("AudioByID", ctx, "a1").Return(audio, nil)
	mockCache.On("Set", ctx, "audios:a1", mock.Anything).Return(nil)
	mockRepo.On("Delete", ctx, "a1").Return(nil)
	mockCache.On("Del", ctx, []string{"audios:a1", "audios:all"}).Return(nil)
	mockStorage.On("Delete", "audios/a1.mp3").Return(nil)

	err := service.DeleteAudio(ctx, "a1", actor)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
}

func TestDeleteAudio_Forbidden(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, mockStorage := newTestService()

	audio := &models.Audio{ID: "a1", UploadedBy: "owner"}
	actor := &models.User{ID: "someone_else", Role: models.RoleUser}

	mockCache.On("Get", ctx, "audios:a1").Return("", errors.New("miss"))
	mockRepo.On("AudioByID", ctx, "a1").Return(audio, nil)
	mockCache.On("Set", ctx, "audios:a1", mock.Anything).Return(nil)

	err := service.DeleteAudio(ctx, "a1", actor)

	assert.ErrorIs(t, err, models.ErrForbidden)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockStorage.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteAudio_FileDeleteFails_RecordStillGone(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, mockStorage := newTestService()

	audio := &models.Audio{ID: "a1", UploadedBy: "u1", FilePath: "audios/a1.mp3"}
	actor := &models.User{ID: "u1", Role: models.RoleUser}

	mockCache.On("Get", ctx, "audios:a1").Return("", errors.New("miss"))
	mockRepo.On("AudioByID", ctx, "a1").Return(audio, nil)
	mockCache.On("Set", ctx, "audios:a1", mock.Anything).Return(nil)
	mockRepo.On("Delete", ctx, "a1").Return(nil)
	mockCache.On("Del", ctx, []string{"audios:a1", "audios:all"}).Return(nil)
	mockStorage.On("Delete", "audios/a1.mp3").Return(errors.New("disk fail"))

	err := service.DeleteAudio(ctx, "a1", actor)

	assert.NoError(t, err)
}

func TestDeleteAudio_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mockRepo, mockCache, _ := newTestService()

	mockCache.On("Get", ctx, "audios:a404").Return("", errors.New("miss"))
	mockRepo.On("AudioByID", ctx, "a404").Return((*models.Audio)(nil), models.ErrAudioNotFound)

	err := service.DeleteAudio(ctx, "a404", &models.User{ID: "u1"})

	assert.ErrorIs(t, err, models.ErrAudioNotFound)
}
