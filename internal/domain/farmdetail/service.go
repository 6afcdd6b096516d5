package farmdetail

import (
	"context"
	"strconv"

	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
	"cuaderno/internal/resource"
)

type Service struct {
	res *resource.Resource[Wire, Detail]
}

func NewService(client *pocket.Client, log *slog.Logger) *Service {
	return &Service{
		res: resource.New(client, resource.Config[Wire, Detail]{
			Collection: Collection,
			Required:   []string{"user", "farm"},
			ToLocal:    toLocal,
			ToWire:     toWire,
			Missing:    missing,
		}, log),
	}
}

func (s *Service) List(ctx context.Context, token, userID, farmID string, page, perPage int) ([]Detail, error) {
	return s.res.List(ctx, token, userID, resource.ListOptions{FarmID: farmID, Page: page, PerPage: perPage})
}

func (s *Service) GetByID(ctx context.Context, token, id, userID string) (Detail, error) {
	return s.res.GetByID(ctx, token, id, userID)
}

// GetByFarm returns the farm's single detail record, or nil when the
// farm has none yet. A 400/404 from the store is a successful empty
// result here, not an error.
func (s *Service) GetByFarm(ctx context.Context, token, userID, farmID string) (*Detail, error) {
	return s.res.FindOneByFarm(ctx, token, userID, farmID)
}

func (s *Service) Create(ctx context.Context, token string, rec Detail) (Detail, error) {
	return s.res.Create(ctx, token, rec)
}

func (s *Service) Update(ctx context.Context, token, id string, rec Detail, userID string) (Detail, error) {
	return s.res.Update(ctx, token, id, rec, userID)
}

func (s *Service) Delete(ctx context.Context, token, id, userID string) error {
	return s.res.Delete(ctx, token, id, userID)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
