package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "itdesk/internal/application/auth/usecases"
	kbUsecases "itdesk/internal/application/kb/usecases"
	masterdataUsecases "itdesk/internal/application/masterdata/usecases"
	settingUsecases "itdesk/internal/application/setting/usecases"
	ticketUsecases "itdesk/internal/application/ticket/usecases"
	"itdesk/internal/infrastructure/auth"
	"itdesk/internal/infrastructure/config"
	"itdesk/internal/infrastructure/ratelimit"
	"itdesk/internal/infrastructure/repository"
	"itdesk/internal/infrastructure/services"
	authHandler "itdesk/internal/interfaces/http/handlers/auth"
	kbHandler "itdesk/internal/interfaces/http/handlers/kb"
	masterdataHandler "itdesk/internal/interfaces/http/handlers/masterdata"
	settingHandler "itdesk/internal/interfaces/http/handlers/setting"
	ticketHandler "itdesk/internal/interfaces/http/handlers/ticket"
	"itdesk/internal/interfaces/http/middleware"
	sharedDB "itdesk/internal/shared/db"
	"itdesk/internal/shared/logger"
	"itdesk/internal/shared/services/markdown"
)

// attemptLimiterAdapter binds the configured login limits onto the generic
// rate limiter so the login use case only sees Allow/Reset.
type attemptLimiterAdapter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.Config
}

func (a *attemptLimiterAdapter) Allow(ctx context.Context, key string) (bool, error) {
	return a.limiter.Allow(ctx, key, a.config)
}

func (a *attemptLimiterAdapter) Reset(ctx context.Context, key string) error {
	return a.limiter.Reset(ctx, key)
}

// Container wires repositories, use cases, handlers and middleware together
// and owns the connections it opens.
type Container struct {
	db    *gorm.DB
	cfg   *config.Config
	log   logger.Interface
	redis *redis.Client

	ticketHandler     *ticketHandler.TicketHandler
	masterDataHandler *masterdataHandler.MasterDataHandler
	settingHandler    *settingHandler.SettingHandler
	authHandler       *authHandler.AuthHandler
	kbHandler         *kbHandler.KBHandler

	adminAuth *middleware.AdminAuthMiddleware
}

// NewContainer builds the full dependency graph on top of an open database
// connection.
func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		db:  gormDB,
		cfg: cfg,
		log: log,
	}

	// Repositories
	ticketRepo := repository.NewTicketRepository(gormDB)
	masterDataRepo := repository.NewMasterDataRepository(gormDB)
	settingRepo := repository.NewSettingRepository(gormDB)
	articleRepo := repository.NewKBRepository(gormDB)

	// Infrastructure services
	txManager := sharedDB.NewTransactionManager(gormDB)
	settingProvider := settingUsecases.NewSettingProvider(settingRepo, log)
	jobIDGenerator := services.NewJobIDGenerator(gormDB, settingProvider)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	sessionSvc := auth.NewSessionService(cfg.Auth.SessionSecret, cfg.Auth.SessionExpHours)
	renderer := markdown.NewService()

	limiter, err := c.buildLoginLimiter()
	if err != nil {
		return nil, err
	}

	bootstrapHash := ""
	if cfg.Auth.AdminPassword != "" {
		bootstrapHash, err = hasher.Hash(cfg.Auth.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash bootstrap admin password: %w", err)
		}
	}

	// Use cases
	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, jobIDGenerator, txManager, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log)
	statsUC := ticketUsecases.NewGetTicketStatsUseCase(ticketRepo, log)

	listMasterDataUC := masterdataUsecases.NewListMasterDataUseCase(masterDataRepo, log)
	manageMasterDataUC := masterdataUsecases.NewManageMasterDataUseCase(masterDataRepo, log)

	getSettingsUC := settingUsecases.NewGetSettingsUseCase(settingRepo, log)
	updateSettingsUC := settingUsecases.NewUpdateSettingsUseCase(settingRepo, hasher, log)

	loginUC := authUsecases.NewLoginUseCase(settingRepo, hasher, sessionSvc, limiter, bootstrapHash, log)

	browseArticlesUC := kbUsecases.NewBrowseArticlesUseCase(articleRepo, renderer, log)
	manageArticlesUC := kbUsecases.NewManageArticlesUseCase(articleRepo, log)

	// Handlers
	c.ticketHandler = ticketHandler.NewTicketHandler(
		createTicketUC, updateTicketUC, getTicketUC, listTicketsUC, deleteTicketUC, statsUC,
	)
	c.masterDataHandler = masterdataHandler.NewMasterDataHandler(listMasterDataUC, manageMasterDataUC)
	c.settingHandler = settingHandler.NewSettingHandler(getSettingsUC, updateSettingsUC)
	c.authHandler = authHandler.NewAuthHandler(loginUC, cfg.Auth.Cookie)
	c.kbHandler = kbHandler.NewKBHandler(browseArticlesUC, manageArticlesUC)

	// Middleware
	c.adminAuth = middleware.NewAdminAuthMiddleware(sessionSvc, log)

	return c, nil
}

// buildLoginLimiter returns the Redis-backed limiter when Redis is
// configured, a noop limiter otherwise.
func (c *Container) buildLoginLimiter() (authUsecases.AttemptLimiter, error) {
	cfg := c.cfg
	limits := ratelimit.Config{
		PerMinute: cfg.Auth.LoginPerMinute,
		PerHour:   cfg.Auth.LoginPerHour,
	}

	if !cfg.Auth.RateLimitEnabled || !cfg.Redis.Enabled {
		return &attemptLimiterAdapter{limiter: ratelimit.NewNoopRateLimiter(), config: limits}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.redis = client

	return &attemptLimiterAdapter{limiter: ratelimit.NewRedisRateLimiter(client), config: limits}, nil
}

// Shutdown releases connections the container opened.
func (c *Container) Shutdown() error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	return nil
}
