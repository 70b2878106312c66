package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cafex/config"
	"cafex/internal/domain/entity"
	"cafex/internal/domain/service"
	"cafex/internal/infra/auth"
	"cafex/internal/infra/persistence"
	"cafex/internal/infra/persistence/kv"
	"cafex/internal/infra/qrcode"
	"cafex/internal/state"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedCustomerEmail = "user@cafex.com"
	seedAdminEmail    = "admin@cafex.com"
	seedPassword      = "123"
)

// recordingNotifier captures toasts for assertions.
type recordingNotifier struct {
	messages   []string
	severities []service.Severity
}

func (n *recordingNotifier) Notify(message string, severity service.Severity) {
	n.messages = append(n.messages, message)
	n.severities = append(n.severities, severity)
}

func (n *recordingNotifier) last() string {
	if len(n.messages) == 0 {
		return ""
	}

	return n.messages[len(n.messages)-1]
}

func (n *recordingNotifier) reset() {
	n.messages = nil
	n.severities = nil
}

// testEnv wires the services against a real in-memory store and the seeded
// demo state.
type testEnv struct {
	cfg      *config.Config
	st       *state.State
	store    *kv.MemoryStore
	repo     state.Repository
	notifier *recordingNotifier
	hasher   service.PasswordHasher
	params   Params
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Defaults()
	cfg.Auth.BcryptCost = bcrypt.MinCost

	store := kv.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := persistence.NewSnapshotRepository(persistence.SnapshotParams{Store: store, Logger: logger})
	notifier := &recordingNotifier{}
	hasher := auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)

	st, err := state.Seed(hasher.Hash)
	require.NoError(t, err)

	return &testEnv{
		cfg:      cfg,
		st:       st,
		store:    store,
		repo:     repo,
		notifier: notifier,
		hasher:   hasher,
		params: Params{
			Config:   cfg,
			State:    st,
			Repo:     repo,
			Notifier: notifier,
			Hasher:   hasher,
			QR:       qrcode.NewReceiptQRService(256, "M"),
			Logger:   logger,
		},
	}
}

// loginCustomer activates the seeded customer session directly.
func (env *testEnv) loginCustomer(t *testing.T) *entity.User {
	t.Helper()

	user := env.st.UserByIdentifier(seedCustomerEmail)
	require.NotNil(t, user)
	env.st.CurrentUser = user
	env.st.Cart = entity.CloneItems(user.SavedCart)
	env.st.Wishlist = append([]string(nil), user.SavedWishlist...)

	return user
}

// loginAdmin activates the seeded admin session directly.
func (env *testEnv) loginAdmin(t *testing.T) *entity.User {
	t.Helper()

	user := env.st.UserByIdentifier(seedAdminEmail)
	require.NotNil(t, user)
	env.st.CurrentAdmin = user

	return user
}

// addOrder appends a minimal order for the given user so loyalty earnings can
// be controlled per test.
func (env *testEnv) addOrder(userID string, status entity.OrderStatus) *entity.Order {
	order := &entity.Order{
		ID:     "order-" + string(rune('a'+len(env.st.Orders))),
		UserID: userID,
		Status: status,
	}
	env.st.Orders = append(env.st.Orders, order)

	return order
}

func ctxBg() context.Context {
	return context.Background()
}
