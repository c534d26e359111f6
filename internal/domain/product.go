package domain

import (
	"context"
	"io"
	"math"
	"strings"
	"time"
)

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	SortOrder   int       `json:"sort_order"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductDraft struct {
	Name        string
	SKU         string
	Price       float64
	Stock       int
	SortOrder   int
	ImageURL    string
	Description string
	IsActive    bool
}

func (d *ProductDraft) Validate() error {
	var invalid []string
	if strings.TrimSpace(d.Name) == "" {
		invalid = append(invalid, "name")
	}
	if strings.TrimSpace(d.SKU) == "" {
		invalid = append(invalid, "sku")
	}
	if math.IsNaN(d.Price) {
		invalid = append(invalid, "price")
	}
	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}
	return nil
}

// CreatePayload sends explicit nulls for the optional fields, matching what
// the backend expects for a brand-new record.
func (d *ProductDraft) CreatePayload() ProductCreatePayload {
	return ProductCreatePayload{
		Name:        strings.TrimSpace(d.Name),
		SKU:         strings.TrimSpace(d.SKU),
		Price:       d.Price,
		Stock:       d.Stock,
		SortOrder:   d.SortOrder,
		ImageURL:    optionalString(d.ImageURL),
		Description: optionalString(d.Description),
		IsActive:    d.IsActive,
	}
}

// UpdatePayload omits image_url entirely when the draft has none, so an edit
// without a new image never wipes the stored one.
func (d *ProductDraft) UpdatePayload() ProductUpdatePayload {
	return ProductUpdatePayload{
		Name:        strings.TrimSpace(d.Name),
		SKU:         strings.TrimSpace(d.SKU),
		Price:       d.Price,
		Stock:       d.Stock,
		SortOrder:   d.SortOrder,
		Description: optionalString(d.Description),
		IsActive:    d.IsActive,
		ImageURL:    optionalString(d.ImageURL),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type ProductCreatePayload struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	SortOrder   int     `json:"sort_order"`
	ImageURL    *string `json:"image_url"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
}

type ProductUpdatePayload struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	SortOrder   int     `json:"sort_order"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type ProductImagePatch struct {
	ImageURL string `json:"image_url"`
}

type ProductRepository interface {
	List(ctx context.Context) ([]*Product, error)
	FindByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, payload ProductCreatePayload) (*Product, error)
	Update(ctx context.Context, id int64, payload ProductUpdatePayload) (*Product, error)
	SetImage(ctx context.Context, id int64, imageURL string) (*Product, error)
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, draft ProductDraft) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, draft ProductDraft) (*Product, error)
	SetProductImage(ctx context.Context, id int64, imageURL string) (*Product, error)
	UploadProductImage(ctx context.Context, filename string, r io.Reader) (string, error)
	DeleteProduct(ctx context.Context, id int64) error
}
