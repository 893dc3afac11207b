package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adminflow/admin_backend/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUserIfNotExists seeds a user row unless one with the same username
// already exists. Returns true when the row was created.
func (r *GormRepo) CreateUserIfNotExists(ctx context.Context, u *models.User) (bool, error) {
	tx := r.DB.WithContext(ctx).Where("username = ?", u.Username).FirstOrCreate(u)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *GormRepo) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash).Error
}
