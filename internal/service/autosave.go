package service

import (
	"context"
	"sync"

	"byaura/internal/domain"
	"byaura/pkg/logger"
	"byaura/pkg/metrics"
)

type AutoSaveState int

const (
	AutoSaveIdle AutoSaveState = iota
	AutoSaveSaving
	AutoSaveDone
)

// ProductAutoSave drives the create-product form. Once an image is uploaded
// and the required fields validate, the product is created automatically; a
// form session submits at most once, no matter how many triggers fire.
type ProductAutoSave struct {
	products domain.ProductService
	view     domain.View
	logger   logger.Logger

	mu     sync.Mutex
	open   bool
	saved  bool
	saving bool
	draft  domain.ProductDraft
}

func NewProductAutoSave(products domain.ProductService, view domain.View, logger logger.Logger) *ProductAutoSave {
	return &ProductAutoSave{
		products: products,
		view:     view,
		logger:   logger,
	}
}

// OpenForm starts a fresh form session.
func (a *ProductAutoSave) OpenForm() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.open = true
	a.saved = false
	a.saving = false
	a.draft = domain.ProductDraft{IsActive: true}
}

func (a *ProductAutoSave) CloseForm() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.open = false
	a.saving = false
	a.draft = domain.ProductDraft{}
}

func (a *ProductAutoSave) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open
}

func (a *ProductAutoSave) State() AutoSaveState {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case a.saving:
		return AutoSaveSaving
	case a.saved:
		return AutoSaveDone
	default:
		return AutoSaveIdle
	}
}

func (a *ProductAutoSave) Draft() domain.ProductDraft {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.draft
}

// FieldsChanged records edited form fields and attempts an auto-save when an
// image is already in place. The uploaded image URL is owned by
// ImageUploaded and survives field edits.
func (a *ProductAutoSave) FieldsChanged(ctx context.Context, draft domain.ProductDraft) {
	a.mu.Lock()
	if !a.open || a.saved {
		a.mu.Unlock()
		return
	}

	imageURL := a.draft.ImageURL
	a.draft = draft
	a.draft.ImageURL = imageURL
	a.mu.Unlock()

	a.maybeSave(ctx, false)
}

// ImageUploaded stores the uploaded image URL and attempts an auto-save.
func (a *ProductAutoSave) ImageUploaded(ctx context.Context, url string) {
	a.mu.Lock()
	if !a.open || a.saved {
		a.mu.Unlock()
		return
	}
	a.draft.ImageURL = url
	a.mu.Unlock()

	a.maybeSave(ctx, true)
}

// Submit is the manual save path; unlike the automatic triggers it does not
// require an image and reports validation failures as errors.
func (a *ProductAutoSave) Submit(ctx context.Context) (*domain.Product, error) {
	a.mu.Lock()
	if !a.open {
		a.mu.Unlock()
		return nil, domain.ErrFormClosed
	}
	if a.saved {
		a.mu.Unlock()
		return nil, domain.ErrAlreadySaved
	}
	if !a.armLocked() {
		a.mu.Unlock()
		return nil, domain.ErrSaveInProgress
	}
	draft := a.draft
	a.mu.Unlock()

	if err := draft.Validate(); err != nil {
		a.disarm()
		return nil, err
	}

	return a.create(ctx, draft, "manual")
}

// maybeSave runs the automatic trigger path: silent when preconditions are
// not met, a nudge when only the fields are missing.
func (a *ProductAutoSave) maybeSave(ctx context.Context, fromImage bool) {
	a.mu.Lock()
	if !a.open || a.saved || a.saving || a.draft.ImageURL == "" {
		a.mu.Unlock()
		return
	}
	draft := a.draft

	if err := draft.Validate(); err != nil {
		a.mu.Unlock()
		if fromImage {
			a.view.Notify("Görsel yüklendi. Otomatik kayıt için zorunlu alanları doldurun.")
		}
		return
	}

	a.armLocked()
	a.mu.Unlock()

	a.create(ctx, draft, "auto")
}

// armLocked flips the in-flight flag; caller must hold the lock. Returns
// false when a save is already running.
func (a *ProductAutoSave) armLocked() bool {
	if a.saving {
		return false
	}
	a.saving = true
	return true
}

func (a *ProductAutoSave) disarm() {
	a.mu.Lock()
	a.saving = false
	a.mu.Unlock()
}

func (a *ProductAutoSave) create(ctx context.Context, draft domain.ProductDraft, trigger string) (*domain.Product, error) {
	product, err := a.products.CreateProduct(ctx, draft)

	a.mu.Lock()
	a.saving = false
	if err == nil {
		a.saved = true
		a.open = false
	}
	a.mu.Unlock()

	if err != nil {
		metrics.RecordAutoSave("failure")
		a.logger.Error("Ürün kaydedilemedi", map[string]interface{}{"trigger": trigger, "error": err.Error()})
		a.view.NotifyError("Ürün kaydedilemedi: " + err.Error())
		return nil, err
	}

	metrics.RecordAutoSave(trigger)
	a.logger.Info("Ürün kaydedildi", map[string]interface{}{"id": product.ID, "trigger": trigger})
	a.view.Notify("Ürün kaydedildi: " + product.Name)
	return product, nil
}
