package factory

import (
	"database/sql"

	"byaura/internal/config"
	"byaura/internal/database"
	"byaura/internal/domain"
	"byaura/internal/repository"
	"byaura/internal/service"
	"byaura/internal/session"
	"byaura/pkg/apiclient"
	"byaura/pkg/cache"
	"byaura/pkg/logger"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetDB() *sql.DB
	GetStateStore() *database.StateStore
	GetSessionStore() domain.SessionStore
	GetAPIClient() *apiclient.Client
	GetViewProxy() *domain.ViewProxy

	GetAuthRepository() domain.AuthRepository
	GetUserRepository() domain.UserRepository
	GetPaymentRepository() domain.PaymentRepository
	GetEventRepository() domain.EventRepository
	GetProductRepository() domain.ProductRepository
	GetContentRepository() domain.ContentRepository
	GetMessageRepository() domain.MessageRepository
	GetDashboardRepository() domain.DashboardRepository
	GetPublicRepository() domain.PublicRepository

	GetAuthService() domain.AuthService
	GetUserService() domain.UserService
	GetPaymentService() domain.PaymentService
	GetEventService() domain.EventService
	GetProductService() domain.ProductService
	GetContentService() domain.ContentService
	GetMessageService() domain.MessageService
	GetDashboardService() domain.DashboardService
	GetPublicService() domain.PublicSiteService
	GetProductAutoSave() *service.ProductAutoSave
}

type AppFactory struct {
	config       *config.Config
	logger       logger.Logger
	db           *sql.DB
	stateStore   *database.StateStore
	sessionStore *session.Store
	apiClient    *apiclient.Client
	viewProxy    *domain.ViewProxy

	userCache    *cache.ResourceCache[*domain.User]
	paymentCache *cache.ResourceCache[*domain.Payment]
	eventCache   *cache.ResourceCache[*domain.Event]
	productCache *cache.ResourceCache[*domain.Product]
	messageCache *cache.ResourceCache[*domain.ContactMessage]

	authRepository      domain.AuthRepository
	userRepository      domain.UserRepository
	paymentRepository   domain.PaymentRepository
	eventRepository     domain.EventRepository
	productRepository   domain.ProductRepository
	contentRepository   domain.ContentRepository
	messageRepository   domain.MessageRepository
	dashboardRepository domain.DashboardRepository
	publicRepository    domain.PublicRepository

	authService      domain.AuthService
	userService      domain.UserService
	paymentService   domain.PaymentService
	eventService     domain.EventService
	productService   domain.ProductService
	contentService   domain.ContentService
	messageService   domain.MessageService
	dashboardService domain.DashboardService
	publicService    domain.PublicSiteService
	productAutoSave  *service.ProductAutoSave
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := database.Open(cfg.State.DBPath)
	if err != nil {
		return nil, err
	}

	stateStore := database.NewStateStore(db, log)
	sessionStore := session.NewStore(stateStore, log)
	apiClient := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout, sessionStore, log)

	factory := &AppFactory{
		config:       cfg,
		logger:       log,
		db:           db,
		stateStore:   stateStore,
		sessionStore: sessionStore,
		apiClient:    apiClient,
		viewProxy:    &domain.ViewProxy{},
	}

	factory.initCaches()
	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func (f *AppFactory) initCaches() {
	f.userCache = cache.New("users", func(u *domain.User) int64 { return u.ID }, f.logger)
	f.paymentCache = cache.New("payments", func(p *domain.Payment) int64 { return p.ID }, f.logger)
	f.eventCache = cache.New("events", func(e *domain.Event) int64 { return e.ID }, f.logger)
	f.productCache = cache.New("products", func(p *domain.Product) int64 { return p.ID }, f.logger)
	f.messageCache = cache.New("messages", func(m *domain.ContactMessage) int64 { return m.ID }, f.logger)
}

func (f *AppFactory) initRepositories() {
	f.authRepository = repository.NewAuthRepository(f.apiClient, f.logger)
	f.userRepository = repository.NewUserRepository(f.apiClient, f.logger)
	f.paymentRepository = repository.NewPaymentRepository(f.apiClient, f.logger)
	f.eventRepository = repository.NewEventRepository(f.apiClient, f.logger)
	f.productRepository = repository.NewProductRepository(f.apiClient, f.logger)
	f.contentRepository = repository.NewContentRepository(f.apiClient, f.logger)
	f.messageRepository = repository.NewMessageRepository(f.apiClient, f.logger)
	f.dashboardRepository = repository.NewDashboardRepository(f.apiClient, f.logger)
	f.publicRepository = repository.NewPublicRepository(f.apiClient, f.logger)
}

func (f *AppFactory) initServices() {
	f.authService = service.NewAuthService(f.authRepository, f.sessionStore, f.logger)
	f.userService = service.NewUserService(f.userRepository, f.authRepository, f.userCache, f.logger)
	f.paymentService = service.NewPaymentService(f.paymentRepository, f.paymentCache, f.logger)
	f.eventService = service.NewEventService(f.eventRepository, f.eventCache, f.logger)
	f.productService = service.NewProductService(f.productRepository, f.productCache, f.logger)
	f.contentService = service.NewContentService(f.contentRepository, f.logger)
	f.messageService = service.NewMessageService(f.messageRepository, f.messageCache, f.viewProxy, f.logger)
	f.dashboardService = service.NewDashboardService(f.dashboardRepository, f.logger)
	f.publicService = service.NewPublicService(f.publicRepository, f.logger)
	f.productAutoSave = service.NewProductAutoSave(f.productService, f.viewProxy, f.logger)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetStateStore() *database.StateStore {
	return f.stateStore
}

func (f *AppFactory) GetSessionStore() domain.SessionStore {
	return f.sessionStore
}

func (f *AppFactory) GetAPIClient() *apiclient.Client {
	return f.apiClient
}

func (f *AppFactory) GetViewProxy() *domain.ViewProxy {
	return f.viewProxy
}

func (f *AppFactory) GetAuthRepository() domain.AuthRepository {
	return f.authRepository
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetPaymentRepository() domain.PaymentRepository {
	return f.paymentRepository
}

func (f *AppFactory) GetEventRepository() domain.EventRepository {
	return f.eventRepository
}

func (f *AppFactory) GetProductRepository() domain.ProductRepository {
	return f.productRepository
}

func (f *AppFactory) GetContentRepository() domain.ContentRepository {
	return f.contentRepository
}

func (f *AppFactory) GetMessageRepository() domain.MessageRepository {
	return f.messageRepository
}

func (f *AppFactory) GetDashboardRepository() domain.DashboardRepository {
	return f.dashboardRepository
}

func (f *AppFactory) GetPublicRepository() domain.PublicRepository {
	return f.publicRepository
}

func (f *AppFactory) GetAuthService() domain.AuthService {
	return f.authService
}

func (f *AppFactory) GetUserService() domain.UserService {
	return f.userService
}

func (f *AppFactory) GetPaymentService() domain.PaymentService {
	return f.paymentService
}

func (f *AppFactory) GetEventService() domain.EventService {
	return f.eventService
}

func (f *AppFactory) GetProductService() domain.ProductService {
	return f.productService
}

func (f *AppFactory) GetContentService() domain.ContentService {
	return f.contentService
}

func (f *AppFactory) GetMessageService() domain.MessageService {
	return f.messageService
}

func (f *AppFactory) GetDashboardService() domain.DashboardService {
	return f.dashboardService
}

func (f *AppFactory) GetPublicService() domain.PublicSiteService {
	return f.publicService
}

func (f *AppFactory) GetProductAutoSave() *service.ProductAutoSave {
	return f.productAutoSave
}
