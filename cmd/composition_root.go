package cmd

import (
	"fmt"
	"log/slog"

	"withus/internal/adapters/out/auth"
	"withus/internal/adapters/out/mail"
	"withus/internal/adapters/out/postgres"
	"withus/internal/core/application/usecases/commands"
	"withus/internal/core/application/usecases/queries"
	"withus/internal/core/ports"
	"withus/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot builds every use case handler with its concrete adapter
// dependencies. Handlers are constructed on demand; the shared pieces
// (database handle, token service, hasher, notifier) live for the process
// lifetime.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	tokens   ports.TokenService
	hasher   ports.PasswordHasher
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := auth.NewJWTTokenService(
		config.TokenSecret, config.SessionTokenTTL, config.ResetTokenTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create token service: %w", err)
	}

	notifier, err := mail.NewSMTPNotifier(mail.Config{
		Host:       config.SMTPHost,
		Port:       config.SMTPPort,
		Username:   config.SMTPUsername,
		Password:   config.SMTPPassword,
		From:       config.SMTPFrom,
		AdminEmail: config.AdminEmail,
	}, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create notifier: %w", err)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		hasher:     auth.NewBcryptPasswordHasher(config.BcryptCost),
		notifier:   notifier,
		logger:     logger,
	}, nil
}

// TokenService exposes the session token verifier for the HTTP middleware.
func (c *CompositionRoot) TokenService() ports.TokenService {
	return c.tokens
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateRequestPasswordResetCommandHandler() commands.RequestPasswordResetCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestPasswordResetCommandHandler(
		f, c.tokens, c.notifier, c.config.FrontendBaseURL, c.logger)
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetPasswordCommandHandler(f, c.tokens, c.hasher)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	// Login is a single read; the repository runs outside a transaction.
	return queries.NewAuthenticateUserQueryHandler(
		c.uowFactory.Create().UserRepository(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateGetItemsQueryHandler() queries.GetItemsQueryHandler {
	return queries.NewGetItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemQueryHandler() queries.GetItemQueryHandler {
	return queries.NewGetItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemCategoriesQueryHandler() queries.GetItemCategoriesQueryHandler {
	return queries.NewGetItemCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemReviewsQueryHandler() queries.GetItemReviewsQueryHandler {
	return queries.NewGetItemReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserReviewsQueryHandler() queries.GetUserReviewsQueryHandler {
	return queries.NewGetUserReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllReviewsQueryHandler() queries.GetAllReviewsQueryHandler {
	return queries.NewGetAllReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockItemsQueryHandler() queries.GetLowStockItemsQueryHandler {
	return queries.NewGetLowStockItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLowStockItemsQueryHandler(),
		c.notifier,
		c.config.LowStockThreshold,
		c.logger,
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
