package pestlog

import (
	"context"
	"time"

	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
	"cuaderno/internal/resource"
)

type Service struct {
	res *resource.Resource[Wire, Log]
}

func NewService(client *pocket.Client, log *slog.Logger) *Service {
	return &Service{
		res: resource.New(client, resource.Config[Wire, Log]{
			Collection: Collection,
			Required:   []string{"producto_empleado", "fecha", "responsable", "user", "farm"},
			Expand:     []string{"responsable"},
			ToLocal:    toLocal,
			ToWire:     toWire,
			Missing:    missing,
		}, log),
	}
}

func (s *Service) List(ctx context.Context, token, userID, farmID string, page, perPage int) ([]Log, error) {
	return s.res.List(ctx, token, userID, resource.ListOptions{FarmID: farmID, Page: page, PerPage: perPage})
}

func (s *Service) GetByID(ctx context.Context, token, id, userID string) (Log, error) {
	return s.res.GetByID(ctx, token, id, userID)
}

func (s *Service) GetByFarmID(ctx context.Context, token, userID, farmID string) ([]Log, error) {
	return s.res.GetByFarmID(ctx, token, userID, farmID)
}

func (s *Service) Create(ctx context.Context, token string, rec Log) (Log, error) {
	return s.res.Create(ctx, token, rec)
}

func (s *Service) Update(ctx context.Context, token, id string, rec Log, userID string) (Log, error) {
	return s.res.Update(ctx, token, id, rec, userID)
}

func (s *Service) Delete(ctx context.Context, token, id, userID string) error {
	return s.res.Delete(ctx, token, id, userID)
}

// SearchByProduct lists log entries whose product name contains the
// given substring.
func (s *Service) SearchByProduct(ctx context.Context, token, userID, farmID, product string) ([]Log, error) {
	return s.res.Search(ctx, token, userID, pocket.Like("producto_empleado", product), resource.ListOptions{FarmID: farmID})
}

// SearchByDateRange lists log entries applied between from and to,
// bounds inclusive.
func (s *Service) SearchByDateRange(ctx context.Context, token, userID, farmID string, from, to time.Time) ([]Log, error) {
	expr := pocket.And(pocket.Gte("fecha", from), pocket.Lte("fecha", to))
	return s.res.Search(ctx, token, userID, expr, resource.ListOptions{FarmID: farmID})
}
