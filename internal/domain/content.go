package domain

import "context"

// WebContent is a backend singleton of editable marketing copy.
type WebContent struct {
	ID            int64  `json:"id"`
	EventsTitle   string `json:"events_title"`
	EventsBody    string `json:"events_body"`
	EventsCTAText string `json:"events_cta_text"`
	EventsCTALink string `json:"events_cta_link"`
	ShopTitle     string `json:"shop_title"`
	ShopHeroImage string `json:"shop_hero_image"`
}

type WebContentUpdate struct {
	EventsTitle   string `json:"events_title"`
	EventsBody    string `json:"events_body"`
	EventsCTAText string `json:"events_cta_text"`
	EventsCTALink string `json:"events_cta_link"`
	ShopTitle     string `json:"shop_title"`
	ShopHeroImage string `json:"shop_hero_image"`
}

type ContentRepository interface {
	Get(ctx context.Context) (*WebContent, error)
	Update(ctx context.Context, update WebContentUpdate) (*WebContent, error)
}

type ContentService interface {
	GetContent(ctx context.Context) (*WebContent, error)
	UpdateContent(ctx context.Context, update WebContentUpdate) (*WebContent, error)
}

// PublicRepository covers the unauthenticated marketing-page endpoints.
type PublicRepository interface {
	Content(ctx context.Context) (*WebContent, error)
	Products(ctx context.Context) ([]*Product, error)
	SubmitContact(ctx context.Context, payload ContactPayload) error
}

type PublicSiteService interface {
	LoadContent(ctx context.Context) (*WebContent, error)
	LoadProducts(ctx context.Context) ([]*Product, error)
	SendContact(ctx context.Context, draft ContactDraft) error
}
