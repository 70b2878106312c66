package impl

import (
	"context"
	"log/slog"

	"cafex/internal/domain/service"
	"cafex/internal/errors"
	"cafex/internal/state"
	"cafex/internal/usecase"
)

// maintenanceService implements the MaintenanceUsecase interface.
type maintenanceService struct {
	st       *state.State
	repo     state.Repository
	notifier service.Notifier
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params Params) usecase.MaintenanceUsecase {
	return &maintenanceService{
		st:       params.State,
		repo:     params.Repo,
		notifier: params.Notifier,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// FactoryReset wipes the store and restores the first-run demo state in
// place, so every service sharing the state sees the reset immediately.
func (srv *maintenanceService) FactoryReset(ctx context.Context) error {
	if err := srv.repo.Wipe(ctx); err != nil {
		return errors.Wrap(err, "failed to wipe store")
	}

	seeded, err := state.Seed(srv.hasher.Hash)
	if err != nil {
		return errors.Wrap(err, "failed to seed state")
	}
	*srv.st = *seeded

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.logger.Warn("factory reset completed")
	srv.notifier.Notify("Factory reset complete", service.SeverityInfo)

	return nil
}
