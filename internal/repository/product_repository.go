package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

type ProductRepository struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewProductRepository(client *apiclient.Client, logger logger.Logger) domain.ProductRepository {
	return &ProductRepository{
		client: client,
		logger: logger,
	}
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	if err := r.client.Do(ctx, http.MethodGet, "/products?skip=0&limit=100", nil, &products); err != nil {
		r.logger.Error("Ürünler listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("ürünler yüklenemedi: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ürün yüklenemedi: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, payload domain.ProductCreatePayload) (*domain.Product, error) {
	var product domain.Product
	if err := r.client.Do(ctx, http.MethodPost, "/products", payload, &product); err != nil {
		r.logger.Error("Ürün oluşturulamadı", map[string]interface{}{"sku": payload.SKU, "error": err.Error()})
		return nil, fmt.Errorf("ürün oluşturulamadı: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, payload domain.ProductUpdatePayload) (*domain.Product, error) {
	var product domain.Product
	if err := r.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d", id), payload, &product); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ürün güncellenemedi: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) SetImage(ctx context.Context, id int64, imageURL string) (*domain.Product, error) {
	patch := domain.ProductImagePatch{ImageURL: imageURL}

	var product domain.Product
	if err := r.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d", id), patch, &product); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ürün görseli güncellenemedi: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("ürün silinemedi: %w", err)
	}
	return nil
}

func (r *ProductRepository) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var result struct {
		URL string `json:"url"`
	}
	if err := r.client.Upload(ctx, "/products/upload-image", filename, file, &result); err != nil {
		r.logger.Error("Görsel yüklenemedi", map[string]interface{}{"filename": filename, "error": err.Error()})
		return "", fmt.Errorf("görsel yüklenemedi: %w", err)
	}
	return result.URL, nil
}
