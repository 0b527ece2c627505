package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"subcommerce/internal/domain/user"
	"subcommerce/internal/infrastructure/persistence/mappers"
	"subcommerce/internal/infrastructure/persistence/models"
	"subcommerce/internal/shared/db"
	apperrors "subcommerce/internal/shared/errors"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return user.ErrEmailAlreadyTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"role":          model.Role,
			"last_login_at": model.LastLoginAt,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("email = ?", user.NormalizeEmail(email)))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("email = ?", user.NormalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) first(query *gorm.DB) (*user.User, error) {
	var model models.UserModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToDomain(&model), nil
}
