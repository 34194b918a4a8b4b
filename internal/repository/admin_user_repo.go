package repository

import (
	"context"

	"desaadmin/internal/domain"

	"gorm.io/gorm"
)

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *AdminUserRepository) GetByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *AdminUserRepository) Create(ctx context.Context, user *domain.AdminUser) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}
