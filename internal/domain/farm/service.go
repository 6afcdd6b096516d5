package farm

import (
	"context"

	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
	"cuaderno/internal/resource"
)

type Service struct {
	res *resource.Resource[Wire, Farm]
}

func NewService(client *pocket.Client, log *slog.Logger) *Service {
	return &Service{
		res: resource.New(client, resource.Config[Wire, Farm]{
			Collection: Collection,
			Required:   []string{"nombre", "codigo_rega", "user"},
			ToLocal:    toLocal,
			ToWire:     toWire,
			Missing:    missing,
		}, log),
	}
}

// List returns all of the caller's farms; farmID is accepted for
// interface uniformity and ignored because farms are not farm-scoped.
func (s *Service) List(ctx context.Context, token, userID, farmID string, page, perPage int) ([]Farm, error) {
	return s.res.List(ctx, token, userID, resource.ListOptions{Page: page, PerPage: perPage})
}

func (s *Service) GetByID(ctx context.Context, token, id, userID string) (Farm, error) {
	return s.res.GetByID(ctx, token, id, userID)
}

func (s *Service) Create(ctx context.Context, token string, rec Farm) (Farm, error) {
	return s.res.Create(ctx, token, rec)
}

func (s *Service) Update(ctx context.Context, token, id string, rec Farm, userID string) (Farm, error) {
	return s.res.Update(ctx, token, id, rec, userID)
}

func (s *Service) Delete(ctx context.Context, token, id, userID string) error {
	return s.res.Delete(ctx, token, id, userID)
}

// SearchByREGA looks up a farm by its official registry code.
func (s *Service) SearchByREGA(ctx context.Context, token, userID, code string) ([]Farm, error) {
	return s.res.Search(ctx, token, userID, pocket.Eq("codigo_rega", code), resource.ListOptions{})
}
