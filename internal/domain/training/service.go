package training

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
	"cuaderno/internal/resource"
)

type Service struct {
	res *resource.Resource[Wire, Course]
}

func NewService(client *pocket.Client, log *slog.Logger) *Service {
	return &Service{
		res: resource.New(client, resource.Config[Wire, Course]{
			Collection: Collection,
			Required:   []string{"titulo", "fecha_inicio", "user", "farm"},
			Expand:     []string{"asistentes"},
			ToLocal:    toLocal,
			ToWire:     toWire,
			Missing:    missing,
			Normalize:  normalize,
		}, log),
	}
}

func (s *Service) List(ctx context.Context, token, userID, farmID string, page, perPage int) ([]Course, error) {
	return s.res.List(ctx, token, userID, resource.ListOptions{FarmID: farmID, Page: page, PerPage: perPage})
}

func (s *Service) GetByID(ctx context.Context, token, id, userID string) (Course, error) {
	return s.res.GetByID(ctx, token, id, userID)
}

func (s *Service) GetByFarmID(ctx context.Context, token, userID, farmID string) ([]Course, error) {
	return s.res.GetByFarmID(ctx, token, userID, farmID)
}

func (s *Service) Create(ctx context.Context, token string, rec Course) (Course, error) {
	return s.res.Create(ctx, token, rec)
}

func (s *Service) Update(ctx context.Context, token, id string, rec Course, userID string) (Course, error) {
	return s.res.Update(ctx, token, id, rec, userID)
}

func (s *Service) Delete(ctx context.Context, token, id, userID string) error {
	return s.res.Delete(ctx, token, id, userID)
}

// SearchByDateRange lists courses starting between from and to.
func (s *Service) SearchByDateRange(ctx context.Context, token, userID, farmID string, from, to time.Time) ([]Course, error) {
	expr := pocket.And(pocket.Gte("fecha_inicio", from), pocket.Lte("fecha_inicio", to))
	return s.res.Search(ctx, token, userID, expr, resource.ListOptions{FarmID: farmID})
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
