package service

import (
	"context"
	"io"
	"sync"

	"byaura/internal/domain"
	"byaura/pkg/cache"
	"byaura/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(logger.ErrorLevel, io.Discard)
}

type fakeAuthRepo struct {
	loginFn    func(ctx context.Context, email, password string) (*domain.LoginResult, error)
	registerFn func(ctx context.Context, payload domain.UserRegisterPayload) (*domain.User, error)
	passwordFn func(ctx context.Context, payload domain.PasswordChangePayload) error
}

func (f *fakeAuthRepo) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthRepo) Register(ctx context.Context, payload domain.UserRegisterPayload) (*domain.User, error) {
	return f.registerFn(ctx, payload)
}

func (f *fakeAuthRepo) ChangePassword(ctx context.Context, payload domain.PasswordChangePayload) error {
	return f.passwordFn(ctx, payload)
}

type fakeSessions struct {
	session     *domain.Session
	establishes int
	clears      int
	failWith    error
}

func (f *fakeSessions) Restore() error { return nil }

func (f *fakeSessions) Establish(token string, user *domain.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.establishes++
	f.session = &domain.Session{Token: token, User: user}
	return nil
}

func (f *fakeSessions) Clear() {
	f.clears++
	f.session = nil
}

func (f *fakeSessions) Current() *domain.Session { return f.session }

func (f *fakeSessions) IsAuthenticated() bool { return f.session != nil }

func (f *fakeSessions) AuthHeader() (string, bool) {
	if f.session == nil {
		return "", false
	}
	return "Bearer " + f.session.Token, true
}

type fakeUserRepo struct {
	listFn         func(ctx context.Context) ([]*domain.User, error)
	findFn         func(ctx context.Context, id int64) (*domain.User, error)
	updateFn       func(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error)
	toggleRoleFn   func(ctx context.Context, id int64) (*domain.User, error)
	toggleActiveFn func(ctx context.Context, id int64) (*domain.User, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) { return f.listFn(ctx) }

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.findFn(ctx, id)
}

func (f *fakeUserRepo) Update(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	return f.updateFn(ctx, id, update)
}

func (f *fakeUserRepo) ToggleRole(ctx context.Context, id int64) (*domain.User, error) {
	return f.toggleRoleFn(ctx, id)
}

func (f *fakeUserRepo) ToggleActive(ctx context.Context, id int64) (*domain.User, error) {
	return f.toggleActiveFn(ctx, id)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }

type fakeMessageRepo struct {
	listFn   func(ctx context.Context) ([]*domain.ContactMessage, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeMessageRepo) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return f.listFn(ctx)
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }

type fakePaymentRepo struct {
	listFn   func(ctx context.Context, statusFilter string) ([]*domain.Payment, error)
	findFn   func(ctx context.Context, id int64) (*domain.Payment, error)
	createFn func(ctx context.Context, payload domain.PaymentCreatePayload) (*domain.Payment, error)
	updateFn func(ctx context.Context, id int64, update domain.PaymentUpdate) (*domain.Payment, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakePaymentRepo) List(ctx context.Context, statusFilter string) ([]*domain.Payment, error) {
	return f.listFn(ctx, statusFilter)
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return f.findFn(ctx, id)
}

func (f *fakePaymentRepo) Create(ctx context.Context, payload domain.PaymentCreatePayload) (*domain.Payment, error) {
	return f.createFn(ctx, payload)
}

func (f *fakePaymentRepo) Update(ctx context.Context, id int64, update domain.PaymentUpdate) (*domain.Payment, error) {
	return f.updateFn(ctx, id, update)
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }

type fakeEventRepo struct {
	listFn   func(ctx context.Context) ([]*domain.Event, error)
	findFn   func(ctx context.Context, id int64) (*domain.Event, error)
	createFn func(ctx context.Context, payload domain.EventPayload) (*domain.Event, error)
	updateFn func(ctx context.Context, id int64, payload domain.EventPayload) (*domain.Event, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) { return f.listFn(ctx) }

func (f *fakeEventRepo) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	return f.findFn(ctx, id)
}

func (f *fakeEventRepo) Create(ctx context.Context, payload domain.EventPayload) (*domain.Event, error) {
	return f.createFn(ctx, payload)
}

func (f *fakeEventRepo) Update(ctx context.Context, id int64, payload domain.EventPayload) (*domain.Event, error) {
	return f.updateFn(ctx, id, payload)
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }

type fakeProductService struct {
	mu      sync.Mutex
	creates int
	fail    error
	nextID  int64
}

func (f *fakeProductService) CreateProduct(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	f.creates++
	f.nextID++
	return &domain.Product{
		ID:       f.nextID,
		Name:     draft.Name,
		SKU:      draft.SKU,
		Price:    draft.Price,
		ImageURL: draft.ImageURL,
		IsActive: draft.IsActive,
	}, nil
}

func (f *fakeProductService) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates
}

func (f *fakeProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return nil, nil
}

func (f *fakeProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeProductService) UpdateProduct(ctx context.Context, id int64, draft domain.ProductDraft) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeProductService) SetProductImage(ctx context.Context, id int64, imageURL string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeProductService) UploadProductImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	return "", nil
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, id int64) error { return nil }

type fakeView struct {
	mu        sync.Mutex
	notices   []string
	errors    []string
	closedIDs []int64
}

func (f *fakeView) Notify(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, msg)
}

func (f *fakeView) NotifyError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, msg)
}

func (f *fakeView) CloseMessageDetail(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closedIDs = append(f.closedIDs, id)
}

func newUserCache() *cache.ResourceCache[*domain.User] {
	return cache.New("users", func(u *domain.User) int64 { return u.ID }, testLogger())
}

func newMessageCache() *cache.ResourceCache[*domain.ContactMessage] {
	return cache.New("messages", func(m *domain.ContactMessage) int64 { return m.ID }, testLogger())
}

func newPaymentCache() *cache.ResourceCache[*domain.Payment] {
	return cache.New("payments", func(p *domain.Payment) int64 { return p.ID }, testLogger())
}

func newEventCache() *cache.ResourceCache[*domain.Event] {
	return cache.New("events", func(e *domain.Event) int64 { return e.ID }, testLogger())
}
