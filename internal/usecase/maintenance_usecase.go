package usecase

import "context"

// MaintenanceUsecase covers the administrative control surface.
type MaintenanceUsecase interface {
	// FactoryReset wipes the persistent store and restores the first-run
	// state (seed accounts and catalog).
	FactoryReset(ctx context.Context) error
}
