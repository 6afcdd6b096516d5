// Package resource implements the uniform record-access pattern shared
// by every husbandry collection: owner-filtered listing, post-fetch
// ownership checks, required-field validation and wire/local field
// mapping. Entities instantiate one generic Resource via configuration
// instead of duplicating the pattern per collection.
package resource

import (
	"context"

	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
)

// DefaultPerPage is the fixed page size used when the caller does not
// ask for one.
const DefaultPerPage = 50

// Config describes one collection: its name, required wire fields, the
// relations to expand and the two total mapping functions between the
// wire shape W and the local shape L.
type Config[W pocket.Owned, L any] struct {
	Collection string
	Required   []string
	Expand     []string
	ToLocal    func(W) L
	ToWire     func(L) W
	// Missing returns the names of required wire fields absent from a
	// create payload.
	Missing func(W) []string
	// Normalize optionally coerces a payload before validation, e.g.
	// nil multi-select arrays to empty ones.
	Normalize func(*W)
}

// Resource exposes list/get/create/update/delete and filtered search for
// one collection.
type Resource[W pocket.Owned, L any] struct {
	client *pocket.Client
	cfg    Config[W, L]
	log    *slog.Logger
}

func New[W pocket.Owned, L any](client *pocket.Client, cfg Config[W, L], log *slog.Logger) *Resource[W, L] {
	return &Resource[W, L]{
		client: client,
		cfg:    cfg,
		log:    log.With("collection", cfg.Collection),
	}
}

func (r *Resource[W, L]) Collection() string {
	return r.cfg.Collection
}

// ListOptions scope and page a list call. A zero FarmID returns the
// caller's records across all farms.
type ListOptions struct {
	FarmID  string
	Page    int
	PerPage int
	Filter  pocket.Expr
}

// List returns the caller's records, newest first, optionally scoped to
// one farm.
func (r *Resource[W, L]) List(ctx context.Context, token, userID string, opts ListOptions) ([]L, error) {
	farm := pocket.Expr{}
	if opts.FarmID != "" {
		farm = pocket.Eq("farm", opts.FarmID)
	}
	filter := pocket.And(pocket.Eq("user", userID), farm, opts.Filter)

	page := opts.Page
	if page <= 0 {
		page = 1
	}
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	result, err := pocket.List[W](ctx, r.client, token, r.cfg.Collection, pocket.ListParams{
		Page:    page,
		PerPage: perPage,
		Filter:  filter.String(),
		Sort:    "-created",
		Expand:  r.cfg.Expand,
	})
	if err != nil {
		r.log.Error("failed to list records", "error", err)
		return nil, err
	}

	records := make([]L, 0, len(result.Items))
	for _, item := range result.Items {
		records = append(records, r.cfg.ToLocal(item))
	}

	r.log.Info("records listed", "count", len(records), "page", page)
	return records, nil
}

// GetByID fetches one record and verifies the caller owns it. The check
// runs after the fetch, by comparing the record's user relation to the
// caller-supplied id.
func (r *Resource[W, L]) GetByID(ctx context.Context, token, id, userID string) (L, error) {
	var zero L

	record, err := pocket.GetOne[W](ctx, r.client, token, r.cfg.Collection, id, r.cfg.Expand)
	if err != nil {
		r.log.Error("failed to get record", "id", id, "error", err)
		return zero, err
	}

	if record.OwnerID() != userID {
		r.log.Warn("ownership check failed", "id", id)
		return zero, &PermissionError{Message: msgNoViewPermission}
	}

	r.log.Info("record fetched", "id", id)
	return r.cfg.ToLocal(record), nil
}

// GetByFarmID lists the caller's records for one farm.
func (r *Resource[W, L]) GetByFarmID(ctx context.Context, token, userID, farmID string) ([]L, error) {
	return r.List(ctx, token, userID, ListOptions{FarmID: farmID})
}

// Create validates the required fields and inserts the record. Missing
// fields fail before any network call is attempted.
func (r *Resource[W, L]) Create(ctx context.Context, token string, local L) (L, error) {
	var zero L

	wire := r.cfg.ToWire(local)
	if r.cfg.Normalize != nil {
		r.cfg.Normalize(&wire)
	}

	if missing := r.cfg.Missing(wire); len(missing) > 0 {
		r.log.Warn("create rejected, missing fields", "fields", missing)
		return zero, &ValidationError{Fields: missing}
	}

	created, err := pocket.Create(ctx, r.client, token, r.cfg.Collection, wire)
	if err != nil {
		r.log.Error("failed to create record", "error", err)
		return zero, err
	}

	r.log.Info("record created", "id", created.RecordID())
	return r.cfg.ToLocal(created), nil
}

// Update fetches the existing record, verifies ownership and issues a
// partial-field patch. No version check is performed: two concurrent
// editors overwrite each other, last write wins.
func (r *Resource[W, L]) Update(ctx context.Context, token, id string, local L, userID string) (L, error) {
	var zero L

	existing, err := pocket.GetOne[W](ctx, r.client, token, r.cfg.Collection, id, nil)
	if err != nil {
		r.log.Error("failed to fetch record before update", "id", id, "error", err)
		return zero, err
	}

	if existing.OwnerID() != userID {
		r.log.Warn("ownership check failed", "id", id)
		return zero, &PermissionError{Message: msgNoUpdatePermission}
	}

	wire := r.cfg.ToWire(local)
	if r.cfg.Normalize != nil {
		r.cfg.Normalize(&wire)
	}

	updated, err := pocket.Update[W](ctx, r.client, token, r.cfg.Collection, id, wire)
	if err != nil {
		r.log.Error("failed to update record", "id", id, "error", err)
		return zero, err
	}

	r.log.Info("record updated", "id", id)
	return r.cfg.ToLocal(updated), nil
}

// Delete fetches the existing record, verifies ownership and deletes it.
// Deletion is permanent at the store.
func (r *Resource[W, L]) Delete(ctx context.Context, token, id, userID string) error {
	existing, err := pocket.GetOne[W](ctx, r.client, token, r.cfg.Collection, id, nil)
	if err != nil {
		r.log.Error("failed to fetch record before delete", "id", id, "error", err)
		return err
	}

	if existing.OwnerID() != userID {
		r.log.Warn("ownership check failed", "id", id)
		return &PermissionError{Message: msgNoDeletePermission}
	}

	if err := r.client.Delete(ctx, token, r.cfg.Collection, id); err != nil {
		r.log.Error("failed to delete record", "id", id, "error", err)
		return err
	}

	r.log.Info("record deleted", "id", id)
	return nil
}

// Search lists the caller's records matching an additional filter
// expression, AND'd with the owner (and optional farm) clause.
func (r *Resource[W, L]) Search(ctx context.Context, token, userID string, expr pocket.Expr, opts ListOptions) ([]L, error) {
	opts.Filter = pocket.And(opts.Filter, expr)
	return r.List(ctx, token, userID, opts)
}

// FindOneByFarm returns the single record of a one-record-per-farm
// collection, or nil when none exists yet. A 400/404 from the store is
// reinterpreted as "no data yet" instead of propagating as an error: a
// farm without its detail record is an expected state.
func (r *Resource[W, L]) FindOneByFarm(ctx context.Context, token, userID, farmID string) (*L, error) {
	filter := pocket.And(pocket.Eq("user", userID), pocket.Eq("farm", farmID))

	result, err := pocket.List[W](ctx, r.client, token, r.cfg.Collection, pocket.ListParams{
		Page:    1,
		PerPage: 1,
		Filter:  filter.String(),
		Sort:    "-created",
		Expand:  r.cfg.Expand,
	})
	if err != nil {
		if pocket.IsNotFound(err) {
			r.log.Info("no record for farm yet", "farm", farmID)
			return nil, nil
		}
		r.log.Error("failed to look up farm record", "farm", farmID, "error", err)
		return nil, err
	}

	if len(result.Items) == 0 {
		r.log.Info("no record for farm yet", "farm", farmID)
		return nil, nil
	}

	local := r.cfg.ToLocal(result.Items[0])
	return &local, nil
}
