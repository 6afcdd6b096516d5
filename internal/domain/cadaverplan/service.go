package cadaverplan

import (
	"context"

	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
	"cuaderno/internal/resource"
)

type Service struct {
	res *resource.Resource[Wire, Plan]
}

func NewService(client *pocket.Client, log *slog.Logger) *Service {
	return &Service{
		res: resource.New(client, resource.Config[Wire, Plan]{
			Collection: Collection,
			Required:   []string{"empresa_recogida", "numero_contrato", "user", "farm"},
			ToLocal:    toLocal,
			ToWire:     toWire,
			Missing:    missing,
		}, log),
	}
}

func (s *Service) List(ctx context.Context, token, userID, farmID string, page, perPage int) ([]Plan, error) {
	return s.res.List(ctx, token, userID, resource.ListOptions{FarmID: farmID, Page: page, PerPage: perPage})
}

func (s *Service) GetByID(ctx context.Context, token, id, userID string) (Plan, error) {
	return s.res.GetByID(ctx, token, id, userID)
}

func (s *Service) GetByFarmID(ctx context.Context, token, userID, farmID string) ([]Plan, error) {
	return s.res.GetByFarmID(ctx, token, userID, farmID)
}

func (s *Service) Create(ctx context.Context, token string, rec Plan) (Plan, error) {
	return s.res.Create(ctx, token, rec)
}

func (s *Service) Update(ctx context.Context, token, id string, rec Plan, userID string) (Plan, error) {
	return s.res.Update(ctx, token, id, rec, userID)
}

func (s *Service) Delete(ctx context.Context, token, id, userID string) error {
	return s.res.Delete(ctx, token, id, userID)
}

// SearchByCompany lists arrangements with a given collection company.
func (s *Service) SearchByCompany(ctx context.Context, token, userID, farmID, company string) ([]Plan, error) {
	return s.res.Search(ctx, token, userID, pocket.Like("empresa_recogida", company), resource.ListOptions{FarmID: farmID})
}
