// Package persistence implements the snapshot repository over the key-value
// store: every collection is serialized as JSON under its own key.
package persistence

import (
	"context"
	"encoding/json"
	"log/slog"

	"cafex/internal/domain/entity"
	"cafex/internal/domain/repository"
	"cafex/internal/errors"
	"cafex/internal/state"

	"go.uber.org/fx"
)

// snapshotRepository persists the full application state with one JSON value
// per collection key.
type snapshotRepository struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// SnapshotParams holds dependencies for the snapshot repository, injected by Fx.
type SnapshotParams struct {
	fx.In

	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// NewSnapshotRepository is the constructor for snapshotRepository.
func NewSnapshotRepository(params SnapshotParams) state.Repository {
	return &snapshotRepository{
		store:  params.Store,
		logger: params.Logger,
	}
}

// Load restores the state from the store. Absent keys load as empty
// collections, an absent session key as no session.
func (r *snapshotRepository) Load(ctx context.Context) (*state.State, error) {
	st := state.New()

	if err := r.loadKey(ctx, repository.KeyUsers, &st.Users); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, repository.KeyProducts, &st.Products); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, repository.KeyStoreReviews, &st.StoreReviews); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, repository.KeyOrders, &st.Orders); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, repository.KeyCart, &st.Cart); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, repository.KeyWishlist, &st.Wishlist); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, repository.KeyCurrentUser, &st.CurrentUser); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, repository.KeyCurrentAdmin, &st.CurrentAdmin); err != nil {
		return nil, err
	}

	// Persisted session values are snapshots; re-link them to the directory
	// records so session mutations propagate.
	st.AttachSession()

	return st, nil
}

// Save runs session-sync and then re-serializes every collection. Session
// keys are removed, not emptied, when no session is active.
func (r *snapshotRepository) Save(ctx context.Context, st *state.State) error {
	st.SyncSession()

	if err := r.saveKey(ctx, repository.KeyUsers, st.Users); err != nil {
		return err
	}
	if err := r.saveKey(ctx, repository.KeyProducts, st.Products); err != nil {
		return err
	}
	if err := r.saveKey(ctx, repository.KeyStoreReviews, st.StoreReviews); err != nil {
		return err
	}
	if err := r.saveKey(ctx, repository.KeyOrders, st.Orders); err != nil {
		return err
	}
	if err := r.saveWorking(ctx, repository.KeyCart, st.Cart, st.CurrentUser == nil && len(st.Cart) == 0); err != nil {
		return err
	}
	if err := r.saveWorking(ctx, repository.KeyWishlist, st.Wishlist, st.CurrentUser == nil && len(st.Wishlist) == 0); err != nil {
		return err
	}
	if err := r.saveSession(ctx, repository.KeyCurrentUser, st.CurrentUser); err != nil {
		return err
	}
	if err := r.saveSession(ctx, repository.KeyCurrentAdmin, st.CurrentAdmin); err != nil {
		return err
	}

	return nil
}

// Wipe clears the underlying store completely.
func (r *snapshotRepository) Wipe(ctx context.Context) error {
	if err := r.store.Wipe(ctx); err != nil {
		return errors.Wrap(err, "failed to wipe persistent store")
	}

	return nil
}

func (r *snapshotRepository) loadKey(ctx context.Context, key string, target any) error {
	value, err := r.store.Get(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to load collection %s", key)
	}

	if err := json.Unmarshal(value, target); err != nil {
		return errors.Wrapf(err, "failed to decode collection %s", key)
	}

	return nil
}

func (r *snapshotRepository) saveKey(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode collection %s", key)
	}

	if err := r.store.Set(ctx, key, encoded); err != nil {
		return errors.Wrapf(err, "failed to store collection %s", key)
	}

	return nil
}

// saveWorking persists a session-scoped working collection. With no customer
// session and nothing carried over, the key is removed like the session keys.
func (r *snapshotRepository) saveWorking(ctx context.Context, key string, value any, absent bool) error {
	if absent {
		if err := r.store.Delete(ctx, key); err != nil {
			return errors.Wrapf(err, "failed to remove working key %s", key)
		}

		return nil
	}

	return r.saveKey(ctx, key, value)
}

func (r *snapshotRepository) saveSession(ctx context.Context, key string, user *entity.User) error {
	if user == nil {
		if err := r.store.Delete(ctx, key); err != nil {
			return errors.Wrapf(err, "failed to remove session key %s", key)
		}

		return nil
	}

	return r.saveKey(ctx, key, user)
}
