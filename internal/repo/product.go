package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adminflow/admin_backend/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) UpdateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Save(prod).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
