package staff

import (
	"context"

	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
	"cuaderno/internal/resource"
)

type Service struct {
	res *resource.Resource[Wire, Member]
}

func NewService(client *pocket.Client, log *slog.Logger) *Service {
	return &Service{
		res: resource.New(client, resource.Config[Wire, Member]{
			Collection: Collection,
			Required:   []string{"nombre", "dni", "user", "farm"},
			ToLocal:    toLocal,
			ToWire:     toWire,
			Missing:    missing,
			Normalize:  normalize,
		}, log),
	}
}

func (s *Service) List(ctx context.Context, token, userID, farmID string, page, perPage int) ([]Member, error) {
	return s.res.List(ctx, token, userID, resource.ListOptions{FarmID: farmID, Page: page, PerPage: perPage})
}

func (s *Service) GetByID(ctx context.Context, token, id, userID string) (Member, error) {
	return s.res.GetByID(ctx, token, id, userID)
}

func (s *Service) GetByFarmID(ctx context.Context, token, userID, farmID string) ([]Member, error) {
	return s.res.GetByFarmID(ctx, token, userID, farmID)
}

func (s *Service) Create(ctx context.Context, token string, rec Member) (Member, error) {
	return s.res.Create(ctx, token, rec)
}

func (s *Service) Update(ctx context.Context, token, id string, rec Member, userID string) (Member, error) {
	return s.res.Update(ctx, token, id, rec, userID)
}

func (s *Service) Delete(ctx context.Context, token, id, userID string) error {
	return s.res.Delete(ctx, token, id, userID)
}

// SearchByDNI looks up workers by exact identity-document number.
func (s *Service) SearchByDNI(ctx context.Context, token, userID, dni string) ([]Member, error) {
	return s.res.Search(ctx, token, userID, pocket.Eq("dni", dni), resource.ListOptions{})
}

// SearchActive lists the workers currently on the farm's payroll.
func (s *Service) SearchActive(ctx context.Context, token, userID, farmID string) ([]Member, error) {
	return s.res.Search(ctx, token, userID, pocket.Eq("activo", true), resource.ListOptions{FarmID: farmID})
}
