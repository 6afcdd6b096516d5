package pestlog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
	"cuaderno/internal/resource"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(pocket.NewClient(server.URL, log), log)
}

func TestMappingRoundTrip(t *testing.T) {
	w := Wire{
		OwnedRecord: pocket.OwnedRecord{
			BaseRecord: pocket.BaseRecord{ID: "r1", Created: "2024-03-01 10:00:00.000Z"},
			User:       "u1",
			Farm:       "f1",
		},
		ProductoEmpleado: "raticida X",
		NumeroRegistro:   "ES-123",
		Fecha:            "2024-03-01",
		PlagaDetectada:   "roedores",
		Dosis:            "5ml/l",
		MetodoAplicacion: "cebos",
		Responsable:      "p1",
		Observaciones:    "refuerzo en almacén",
	}

	l := toLocal(w)
	assert.Equal(t, "raticida X", l.ProductoEmpleado)
	assert.Equal(t, "ES-123", l.NumeroRegistro)
	assert.Equal(t, "roedores", l.PlagaDetectada)
	assert.Equal(t, "u1", l.User)
	assert.Equal(t, "f1", l.Farm)

	back := toWire(l)
	assert.Equal(t, w.ProductoEmpleado, back.ProductoEmpleado)
	assert.Equal(t, w.Dosis, back.Dosis)
	// Server-assigned fields never travel back.
	assert.Empty(t, back.ID)
	assert.Empty(t, back.Created)
}

func TestMissingRequiredFields(t *testing.T) {
	fields := missing(Wire{
		OwnedRecord: pocket.OwnedRecord{User: "u1", Farm: "f1"},
		Fecha:       "2024-03-01",
	})
	assert.Equal(t, []string{"producto_empleado", "responsable"}, fields)
}

func TestCreateRejectsIncompleteEntry(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected")
	})

	_, err := svc.Create(context.Background(), "tok", Log{
		ProductoEmpleado: "raticida X",
		User:             "u1",
		Farm:             "f1",
	})

	var validationErr *resource.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"fecha", "responsable"}, validationErr.Fields)
}

func TestSearchByDateRangeFilter(t *testing.T) {
	var filter string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		filter = r.URL.Query().Get("filter")
		require.NoError(t, json.NewEncoder(w).Encode(pocket.ListResult[Wire]{Page: 1, PerPage: 50}))
	})

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	_, err := svc.SearchByDateRange(context.Background(), "tok", "u1", "f1", from, to)
	require.NoError(t, err)

	assert.Equal(t,
		`user="u1" && farm="f1" && fecha>="2024-03-01 00:00:00.000Z" && fecha<="2024-03-31 00:00:00.000Z"`,
		filter)
}
