package cleaning

import (
	"context"

	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
	"cuaderno/internal/resource"
)

type Service struct {
	res *resource.Resource[Wire, Entry]
}

func NewService(client *pocket.Client, log *slog.Logger) *Service {
	return &Service{
		res: resource.New(client, resource.Config[Wire, Entry]{
			Collection: Collection,
			Required:   []string{"producto_empleado", "fecha", "responsable", "user", "farm"},
			Expand:     []string{"responsable"},
			ToLocal:    toLocal,
			ToWire:     toWire,
			Missing:    missing,
		}, log),
	}
}

func (s *Service) List(ctx context.Context, token, userID, farmID string, page, perPage int) ([]Entry, error) {
	return s.res.List(ctx, token, userID, resource.ListOptions{FarmID: farmID, Page: page, PerPage: perPage})
}

func (s *Service) GetByID(ctx context.Context, token, id, userID string) (Entry, error) {
	return s.res.GetByID(ctx, token, id, userID)
}

func (s *Service) GetByFarmID(ctx context.Context, token, userID, farmID string) ([]Entry, error) {
	return s.res.GetByFarmID(ctx, token, userID, farmID)
}

func (s *Service) Create(ctx context.Context, token string, rec Entry) (Entry, error) {
	return s.res.Create(ctx, token, rec)
}

func (s *Service) Update(ctx context.Context, token, id string, rec Entry, userID string) (Entry, error) {
	return s.res.Update(ctx, token, id, rec, userID)
}

func (s *Service) Delete(ctx context.Context, token, id, userID string) error {
	return s.res.Delete(ctx, token, id, userID)
}

// SearchByZone lists entries whose treated zone contains the substring.
func (s *Service) SearchByZone(ctx context.Context, token, userID, farmID, zone string) ([]Entry, error) {
	return s.res.Search(ctx, token, userID, pocket.Like("zona_tratada", zone), resource.ListOptions{FarmID: farmID})
}
