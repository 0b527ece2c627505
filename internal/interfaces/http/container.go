package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"subcommerce/internal/application/payment/paymentgateway"
	paymentUsecases "subcommerce/internal/application/payment/usecases"
	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/infrastructure/auth"
	"subcommerce/internal/infrastructure/config"
	"subcommerce/internal/infrastructure/email"
	"subcommerce/internal/infrastructure/payment/stripe"
	"subcommerce/internal/infrastructure/permission"
	"subcommerce/internal/infrastructure/ratelimit"
	"subcommerce/internal/infrastructure/scheduler"
	"subcommerce/internal/interfaces/http/middleware"
	"subcommerce/internal/shared/db"
	"subcommerce/internal/shared/logger"
)

const (
	authRateLimit       = 20
	authRateLimitWindow = time.Minute
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background services, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	txMgr  *db.TransactionManager

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Auth infrastructure
	jwtSvc       *auth.JWTService
	jwtService   *jwtServiceAdapter
	hasher       *auth.BcryptPasswordHasher
	sessionStore *auth.RedisSessionStore
	loginLimiter *ratelimit.RedisLoginLimiter
	enforcer     *permission.Enforcer
	policy       *authorization.Policy

	// Payment gateway
	gateway         paymentgateway.CheckoutGateway
	webhookVerifier paymentgateway.WebhookVerifier
	notifier        paymentUsecases.SubscriptionNotifier

	// Background services
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
		txMgr:  db.NewTransactionManager(gdb),
	}

	// Section 1: Infrastructure - Redis, casbin, auth services, gateway
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Repositories
	c.initRepositories()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and middlewares
	c.initHandlers()
	c.initMiddlewares()

	// Section 5: Scheduler jobs
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	enforcer, err := permission.NewEnforcer(c.db, c.log.Named("casbin"))
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	policies, err := permission.DefaultPolicies()
	if err != nil {
		return fmt.Errorf("failed to load default policies: %w", err)
	}
	if err := enforcer.Seed(policies); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer
	c.policy = authorization.NewDefaultPolicy(enforcer)

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.jwtService = &jwtServiceAdapter{c.jwtSvc}
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.sessionStore = auth.NewRedisSessionStore(c.redis)
	c.loginLimiter = ratelimit.NewRedisLoginLimiter(
		c.redis,
		c.cfg.Auth.LoginThrottle.MaxAttempts,
		c.cfg.Auth.LoginThrottle.Decay(),
	)

	stripeCfg := c.cfg.Payment.Stripe
	if stripeCfg.SecretKey == "" {
		c.log.Warnw("stripe secret key is not configured, checkout will fail")
	}
	c.gateway = stripe.NewGateway(stripeCfg, c.log.Named("stripe"))
	c.webhookVerifier = stripe.NewWebhookVerifier(stripeCfg.WebhookSecret, stripeCfg.WebhookTolerance())

	if c.cfg.Email.Enabled() {
		c.notifier = email.NewSMTPNotifier(c.cfg.Email)
	} else {
		c.log.Infow("smtp not configured, activation mails disabled")
	}

	return nil
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.sessionStore, c.log.Named("auth"))
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.policy, c.log.Named("permission"))
	c.rateLimiter = middleware.NewRateLimiter(
		ratelimit.NewRedisRateLimiter(c.redis),
		"auth", authRateLimit, authRateLimitWindow,
		c.log.Named("ratelimit"),
	)
}

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterSubscriptionJobs(c.ucs.expireSubscriptionsUC, c.cfg.Subscription.SweepInterval()); err != nil {
		return fmt.Errorf("failed to register subscription jobs: %w", err)
	}
	c.schedulerManager = manager
	return nil
}

// Shutdown stops background jobs and closes the redis client.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
