package main

import (
	"context"
	"log/slog"
	"os"

	"cafex/config"
	"cafex/internal/domain/repository"
	"cafex/internal/domain/service"
	"cafex/internal/infra/auth"
	logs "cafex/internal/infra/log"
	"cafex/internal/infra/notification"
	"cafex/internal/infra/persistence"
	"cafex/internal/infra/persistence/kv"
	"cafex/internal/infra/qrcode"
	"cafex/internal/state"
	"cafex/internal/usecase"
	"cafex/internal/usecase/impl"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Config     *config.Config
	State      *state.State
	Repo       state.Repository
	Store      repository.KeyValueStore
	Logger     *slog.Logger

	// The full usecase surface an embedding front end resolves from the
	// container.
	Accounts    usecase.AccountUsecase
	Sessions    usecase.SessionUsecase
	Cart        usecase.CartUsecase
	Loyalty     usecase.LoyaltyUsecase
	Orders      usecase.OrderUsecase
	Catalog     usecase.CatalogUsecase
	Maintenance usecase.MaintenanceUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectState(),
		injectUsecase(),
		fx.Invoke(
			run,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newStore,
		persistence.NewSnapshotRepository,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			newNotifier,
			newReceiptQRService,
		),
	)
}

func injectState() fx.Option {
	return fx.Provide(
		newState,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAccountService,
			impl.NewCartService,
			impl.NewLoyaltyService,
			impl.NewOrderService,
			impl.NewCatalogService,
			impl.NewMaintenanceService,
		),
	)
}

// newStore opens the on-device store, falling back to the in-memory store
// when no path is configured.
func newStore(cfg *config.Config) (repository.KeyValueStore, error) {
	if cfg.Storage.Path == "" {
		return kv.NewMemory(), nil
	}

	return kv.NewSQLite(cfg.Storage.Path)
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func newNotifier(cfg *config.Config, logger *slog.Logger) service.Notifier {
	return notification.NewCenter(cfg.Toast.DismissAfter, logger)
}

func newReceiptQRService() service.ReceiptQRService {
	return qrcode.NewReceiptQRService(256, "M")
}

// newState restores the persisted state, seeding the first-run demo data when
// the store is empty.
func newState(ctx context.Context, repo state.Repository, hasher service.PasswordHasher, logger *slog.Logger) (*state.State, error) {
	st, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if !st.Empty() {
		return st, nil
	}

	logger.Info("empty store, seeding first-run state")
	st, err = state.Seed(hasher.Hash)
	if err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func run(ctx context.Context, params runParams) {
	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			if err := params.Repo.Save(stopCtx, params.State); err != nil {
				return err
			}

			return params.Store.Close()
		},
	})

	params.Logger.Info("state layer ready",
		slog.String("service", params.Config.Env.ServiceName),
		slog.Int("users", len(params.State.Users)),
		slog.Int("products", len(params.State.Products)),
		slog.Int("orders", len(params.State.Orders)),
		slog.Bool("customerSession", params.State.CurrentUser != nil),
		slog.Bool("adminSession", params.State.CurrentAdmin != nil),
		slog.Int("cartQuantity", params.Cart.TotalQuantity()),
		slog.Int("points", params.Loyalty.Balance()),
	)

	if err := params.Shutdowner.Shutdown(); err != nil {
		slog.Error("Failed to shut down", slog.Any("error", err))
		os.Exit(1)
	}
}
