// Package impl contains the application-specific business rules implementations.
package impl

import (
	"log/slog"

	"cafex/config"
	"cafex/internal/domain/service"
	"cafex/internal/state"

	"go.uber.org/fx"
)

// Params holds the shared dependencies of every service, injected by Fx.
type Params struct {
	fx.In

	Config   *config.Config
	State    *state.State
	Repo     state.Repository
	Notifier service.Notifier
	Hasher   service.PasswordHasher
	QR       service.ReceiptQRService
	Logger   *slog.Logger
}
