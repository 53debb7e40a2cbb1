package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"darum/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(conn *gorm.DB) *UserRepository {
	return &UserRepository{db: conn}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if r.db == nil {
		return domain.User{}, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return userFromModel(model), nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if r.db == nil {
		return domain.User{}, errDBUnavailable
	}
	if user.Email == "" {
		return domain.User{}, errors.New("email is required")
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).Where("email = ?", user.Email).Count(&count).Error
	if err != nil {
		return domain.User{}, err
	}
	if count > 0 {
		return domain.User{}, domain.ErrDuplicateEmail
	}

	id, err := newUUID()
	if err != nil {
		return domain.User{}, err
	}
	model := UserModel{
		ID:           id,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Enabled:      user.Enabled,
		Locked:       user.Locked,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrDuplicateEmail
		}
		return domain.User{}, err
	}
	return userFromModel(model), nil
}

func userFromModel(model UserModel) domain.User {
	return domain.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         domain.Role(model.Role),
		Enabled:      model.Enabled,
		Locked:       model.Locked,
		CreatedAt:    model.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}
