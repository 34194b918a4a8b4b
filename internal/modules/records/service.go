// Package records implements the CRUD-with-image pipeline every record type
// shares: optional upload to object storage, then the store mutation, with
// the upload as a strict prerequisite. The five entity modules differ only
// in their models, request DTOs and immutable-field policies.
package records

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
)

var (
	// ErrUpload wraps any image upload failure. The record mutation never
	// runs when the upload fails, so no partial record is written.
	ErrUpload = errors.New("image upload failed")

	// ErrUploadsDisabled is returned when a file arrives but no object
	// store is configured.
	ErrUploadsDisabled = errors.New("image uploads are not configured")
)

// Repository is the store surface the pipeline needs. Satisfied by
// repository.Records[T].
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec *T) error
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// ImageUploader pushes one file to the object store and returns its public
// URL. Satisfied by storage.Uploader.
type ImageUploader interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

// Service runs the shared mutation pipeline for one record type.
type Service[T any] struct {
	repo     Repository[T]
	uploader ImageUploader // nil when the entity has no image field
}

func NewService[T any](repo Repository[T], uploader ImageUploader) *Service[T] {
	return &Service[T]{repo: repo, uploader: uploader}
}

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *Service[T]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a record. When image is non-nil the file is uploaded first
// and setImageURL receives the resolved public URL before the insert; an
// upload failure aborts the whole create.
func (s *Service[T]) Create(ctx context.Context, rec *T, image *multipart.FileHeader, setImageURL func(string)) error {
	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			return err
		}
		setImageURL(url)
	}
	return s.repo.Create(ctx, rec)
}

// Update rewrites exactly the given columns of one record. When image is
// non-nil the uploaded file's URL replaces fields[imageField]; without a
// file the submitted value (typically the pre-existing URL) stays as is.
func (s *Service[T]) Update(ctx context.Context, id int64, fields map[string]any, image *multipart.FileHeader, imageField string) error {
	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			return err
		}
		fields[imageField] = url
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service[T]) uploadImage(ctx context.Context, image *multipart.FileHeader) (string, error) {
	if s.uploader == nil {
		return "", ErrUploadsDisabled
	}
	url, err := s.uploader.Upload(ctx, image)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return url, nil
}
