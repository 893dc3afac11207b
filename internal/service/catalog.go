package service

import (
	"context"
	"mime/multipart"
	"strconv"

	"github.com/adminflow/admin_backend/internal/logging"
	"github.com/adminflow/admin_backend/internal/models"
	"github.com/adminflow/admin_backend/internal/repo"
	"github.com/adminflow/admin_backend/internal/transport"
	"github.com/adminflow/admin_backend/internal/upload"
)

type CatalogService struct {
	Repo    *repo.GormRepo
	Uploads *upload.Store
}

// parseForm validates field presence and parses the numeric fields. Serves
// must be an integer and price a non-negative decimal.
func parseForm(form transport.ProductForm) (name string, serves int, description string, price float64, err error) {
	if form.Name == "" || form.Serves == "" || form.Description == "" || form.Price == "" {
		return "", 0, "", 0, ErrValidation
	}
	serves, err = strconv.Atoi(form.Serves)
	if err != nil {
		return "", 0, "", 0, ErrValidation
	}
	price, err = strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		return "", 0, "", 0, ErrValidation
	}
	return form.Name, serves, form.Description, price, nil
}

func (s *CatalogService) AddProduct(ctx context.Context, form transport.ProductForm, file *multipart.FileHeader) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.add_product")

	name, serves, description, price, err := parseForm(form)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrValidation
	}

	image, err := s.Uploads.Save(file)
	if err != nil {
		l.Error("add_product_failed", "reason", "cannot save image", "error", err)
		return nil, err
	}

	prod := &models.Product{
		Name:        name,
		Serves:      serves,
		Description: description,
		Price:       price,
		Image:       image,
	}
	if _, err := s.Repo.CreateProduct(ctx, prod); err != nil {
		l.Error("add_product_failed", "reason", "store error", "error", err)
		return nil, err
	}

	l.Info("add_product_success", "product_id", prod.ID, "image", prod.Image)
	return prod, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

// EditProduct overwrites every field from the form; the image reference is
// replaced only when a new file is supplied.
func (s *CatalogService) EditProduct(ctx context.Context, id uint, form transport.ProductForm, file *multipart.FileHeader) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.edit_product", "product_id", id)

	name, serves, description, price, err := parseForm(form)
	if err != nil {
		return nil, err
	}

	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	prod.Name = name
	prod.Serves = serves
	prod.Description = description
	prod.Price = price

	if file != nil {
		image, err := s.Uploads.Save(file)
		if err != nil {
			l.Error("edit_product_failed", "reason", "cannot save image", "error", err)
			return nil, err
		}
		prod.Image = image
	}

	if err := s.Repo.UpdateProduct(ctx, prod); err != nil {
		l.Error("edit_product_failed", "reason", "store error", "error", err)
		return nil, err
	}

	l.Info("edit_product_success")
	return prod, nil
}

// DeleteProduct removes the store row only; the referenced image file stays
// on disk.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.Repo.DeleteProduct(ctx, id)
}
