package records

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"desaadmin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context) ([]domain.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.News), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.News), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, rec *domain.News) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *mockRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, fh)
	return args.String(0), args.Error(1)
}

func TestCreateWithoutImage(t *testing.T) {
	repo := new(mockRepo)
	up := new(mockUploader)
	svc := NewService[domain.News](repo, up)

	rec := &domain.News{Title: "Posyandu"}
	repo.On("Create", mock.Anything, rec).Return(nil)

	err := svc.Create(context.Background(), rec, nil, func(string) {
		t.Fatal("setImageURL must not run without a file")
	})
	require.NoError(t, err)

	up.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCreateUploadsBeforeInsert(t *testing.T) {
	repo := new(mockRepo)
	up := new(mockUploader)
	svc := NewService[domain.News](repo, up)

	fh := &multipart.FileHeader{Filename: "foto.png", Size: 12}
	up.On("Upload", mock.Anything, fh).Return("https://images.local/news/1-foto.png", nil)

	rec := &domain.News{Title: "Posyandu"}
	repo.On("Create", mock.Anything, rec).Run(func(args mock.Arguments) {
		// The URL must already be on the record when the insert runs.
		assert.Equal(t, "https://images.local/news/1-foto.png", args.Get(1).(*domain.News).ImageURL)
	}).Return(nil)

	err := svc.Create(context.Background(), rec, fh, func(url string) { rec.ImageURL = url })
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateAbortsOnUploadFailure(t *testing.T) {
	repo := new(mockRepo)
	up := new(mockUploader)
	svc := NewService[domain.News](repo, up)

	fh := &multipart.FileHeader{Filename: "foto.png", Size: 12}
	up.On("Upload", mock.Anything, fh).Return("", errors.New("bucket unreachable"))

	err := svc.Create(context.Background(), &domain.News{}, fh, func(string) {})
	assert.ErrorIs(t, err, ErrUpload)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateWithFileButNoUploader(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService[domain.News](repo, nil)

	fh := &multipart.FileHeader{Filename: "foto.png", Size: 12}
	err := svc.Create(context.Background(), &domain.News{}, fh, func(string) {})
	assert.ErrorIs(t, err, ErrUploadsDisabled)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateReplacesImageField(t *testing.T) {
	repo := new(mockRepo)
	up := new(mockUploader)
	svc := NewService[domain.News](repo, up)

	fh := &multipart.FileHeader{Filename: "baru.png", Size: 12}
	up.On("Upload", mock.Anything, fh).Return("https://images.local/news/2-baru.png", nil)

	fields := map[string]any{"title": "Revisi", "image_url": "https://images.local/news/1-lama.png"}
	repo.On("UpdateFields", mock.Anything, int64(5), mock.Anything).Return(nil)

	require.NoError(t, svc.Update(context.Background(), 5, fields, fh, "image_url"))

	assert.Equal(t, "https://images.local/news/2-baru.png", fields["image_url"])
	repo.AssertExpectations(t)
}

func TestUpdateKeepsSubmittedURLWithoutFile(t *testing.T) {
	repo := new(mockRepo)
	up := new(mockUploader)
	svc := NewService[domain.News](repo, up)

	fields := map[string]any{"image_url": "https://images.local/news/1-lama.png"}
	repo.On("UpdateFields", mock.Anything, int64(5), fields).Return(nil)

	require.NoError(t, svc.Update(context.Background(), 5, fields, nil, "image_url"))

	assert.Equal(t, "https://images.local/news/1-lama.png", fields["image_url"])
	up.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}
