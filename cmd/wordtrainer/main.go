package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"wordtrainer/config"
	"wordtrainer/internal/delivery"
	"wordtrainer/internal/delivery/api"
	"wordtrainer/internal/delivery/api/middleware"
	"wordtrainer/internal/delivery/api/router/handler"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/lifecycle"
	"wordtrainer/internal/errors"
	"wordtrainer/internal/infra/auth"
	logs "wordtrainer/internal/infra/log"
	"wordtrainer/internal/infra/persistence/postgres"
	"wordtrainer/internal/infra/pubsub"
	"wordtrainer/internal/infra/qrcode"
	"wordtrainer/internal/usecase"
	"wordtrainer/internal/usecase/impl"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cmd := &cli.Command{
		Name:  "wordtrainer",
		Usage: "Vocabulary trainer API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Apply pending database migrations",
				Action: migrate,
			},
			{
				Name:   "seed",
				Usage:  "Create the bootstrap admin account",
				Action: seed,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(_ context.Context, _ *cli.Command) error {
	app := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	app.Run()

	return nil
}

func migrate(ctx context.Context, _ *cli.Command) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	return runTask(ctx, func(ctx context.Context) error {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("Database migrations applied")

		return nil
	}, injectInfra(), fx.Populate(&db, &logger))
}

func seed(ctx context.Context, _ *cli.Command) error {
	var (
		cfg       *config.Config
		logger    *slog.Logger
		accountUC usecase.AccountUsecase
	)

	return runTask(ctx, func(ctx context.Context) error {
		account, err := accountUC.Signup(ctx, &usecase.SignupInput{
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
		})
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			logger.Info("Admin account already exists", slog.String("email", cfg.Seed.AdminEmail))

			return nil
		}
		if err != nil {
			return err
		}

		logger.Info("Admin account created",
			slog.String("account_id", account.ID.String()),
			slog.String("email", account.Email),
		)

		return nil
	}, injectInfra(), injectRepo(), injectService(), injectUsecase(), fx.Populate(&cfg, &logger, &accountUC))
}

// runTask starts the app for its lifecycle hooks (database ping, migrations), runs task, then stops it.
func runTask(ctx context.Context, task func(ctx context.Context) error, opts ...fx.Option) error {
	app := fx.New(append(opts, fx.NopLogger)...)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return errors.WithStack(err)
	}

	taskErr := task(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()

	if err := app.Stop(stopCtx); err != nil && taskErr == nil {
		return errors.WithStack(err)
	}

	return taskErr
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewProfileRepository,
			postgres.NewDictionaryRepository,
			postgres.NewWordRepository,
			postgres.NewPracticeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewDictionaryService,
			impl.NewWordService,
			impl.NewPracticeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewDictionaryHandler,
			handler.NewWordHandler,
			handler.NewPracticeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
