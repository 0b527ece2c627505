package mappers

import (
	"subcommerce/internal/domain/user"
	"subcommerce/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		LastLoginAt:  u.LastLoginAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func UserToDomain(m *models.UserModel) *user.User {
	if m == nil {
		return nil
	}
	return user.ReconstructUser(user.ReconstructParams{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         user.Role(m.Role),
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	})
}
