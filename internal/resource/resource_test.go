package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"cuaderno/internal/pocket"
)

// Test entity mirroring the pest-control log shape.
type wire struct {
	pocket.OwnedRecord
	ProductoEmpleado string   `json:"producto_empleado,omitempty"`
	Fecha            string   `json:"fecha,omitempty"`
	Responsable      string   `json:"responsable,omitempty"`
	Titulaciones     []string `json:"titulaciones"`
}

type local struct {
	ID               string
	ProductoEmpleado string
	Fecha            string
	Responsable      string
	Titulaciones     []string
	User             string
	Farm             string
}

func toLocal(w wire) local {
	return local{
		ID:               w.ID,
		ProductoEmpleado: w.ProductoEmpleado,
		Fecha:            w.Fecha,
		Responsable:      w.Responsable,
		Titulaciones:     w.Titulaciones,
		User:             w.User,
		Farm:             w.Farm,
	}
}

func toWire(l local) wire {
	return wire{
		OwnedRecord:      pocket.OwnedRecord{User: l.User, Farm: l.Farm},
		ProductoEmpleado: l.ProductoEmpleado,
		Fecha:            l.Fecha,
		Responsable:      l.Responsable,
		Titulaciones:     l.Titulaciones,
	}
}

func missing(w wire) []string {
	var fields []string
	if w.ProductoEmpleado == "" {
		fields = append(fields, "producto_empleado")
	}
	if w.Fecha == "" {
		fields = append(fields, "fecha")
	}
	if w.Responsable == "" {
		fields = append(fields, "responsable")
	}
	if w.User == "" {
		fields = append(fields, "user")
	}
	if w.Farm == "" {
		fields = append(fields, "farm")
	}
	return fields
}

func testConfig() Config[wire, local] {
	return Config[wire, local]{
		Collection: "registro_plagas",
		Required:   []string{"producto_empleado", "fecha", "responsable", "user", "farm"},
		Expand:     []string{"responsable"},
		ToLocal:    toLocal,
		ToWire:     toWire,
		Missing:    missing,
		Normalize: func(w *wire) {
			if w.Titulaciones == nil {
				w.Titulaciones = []string{}
			}
		},
	}
}

type capturedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   []byte
}

type fakeStore struct {
	server   *httptest.Server
	requests []capturedRequest
}

// newFakeStore serves canned responses in the record store's wire format
// and captures every request it sees.
func newFakeStore(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *fakeStore {
	t.Helper()

	fake := &fakeStore{}
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			query := map[string]string{}
			for key := range r.URL.Query() {
				query[key] = r.URL.Query().Get(key)
			}
			fake.requests = append(fake.requests, capturedRequest{
				Method: r.Method,
				Path:   r.URL.Path,
				Query:  query,
				Body:   body,
			})
			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	})
	router.HandleFunc("/*", handler)

	fake.server = httptest.NewServer(router)
	t.Cleanup(fake.server.Close)
	return fake
}

func (f *fakeStore) mutations() []capturedRequest {
	var out []capturedRequest
	for _, req := range f.requests {
		if req.Method != http.MethodGet {
			out = append(out, req)
		}
	}
	return out
}

func newTestResource(t *testing.T, fake *fakeStore) *Resource[wire, local] {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := pocket.NewClient(fake.server.URL, log)
	return New(client, testConfig(), log)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestListBuildsOwnerAndFarmFilter(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, pocket.ListResult[wire]{
			Page: 1, PerPage: 50, TotalItems: 1, TotalPages: 1,
			Items: []wire{{
				OwnedRecord:      pocket.OwnedRecord{BaseRecord: pocket.BaseRecord{ID: "r1"}, User: "u1", Farm: "f1"},
				ProductoEmpleado: "raticida",
			}},
		})
	})
	res := newTestResource(t, fake)

	records, err := res.List(context.Background(), "tok", "u1", ListOptions{FarmID: "f1"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "raticida", records[0].ProductoEmpleado)

	require.Len(t, fake.requests, 1)
	req := fake.requests[0]
	assert.Equal(t, `user="u1" && farm="f1"`, req.Query["filter"])
	assert.Equal(t, "-created", req.Query["sort"])
	assert.Equal(t, "1", req.Query["page"])
	assert.Equal(t, "50", req.Query["perPage"])
	assert.Equal(t, "responsable", req.Query["expand"])
}

func TestListWithoutFarmReturnsAllOwnerRecords(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, pocket.ListResult[wire]{Page: 1, PerPage: 50})
	})
	res := newTestResource(t, fake)

	_, err := res.List(context.Background(), "tok", "u1", ListOptions{})
	require.NoError(t, err)

	require.Len(t, fake.requests, 1)
	assert.Equal(t, `user="u1"`, fake.requests[0].Query["filter"])
}

func TestCreateMissingFieldsFailsBeforeNetwork(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected")
	})
	res := newTestResource(t, fake)

	_, err := res.Create(context.Background(), "tok", local{
		ProductoEmpleado: "raticida",
		User:             "u1",
		Farm:             "f1",
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"fecha", "responsable"}, validationErr.Fields)
	assert.Empty(t, fake.requests)
}

func TestCreateNormalizesMultiSelect(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		var in wire
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "r1"
		writeJSON(t, w, in)
	})
	res := newTestResource(t, fake)

	created, err := res.Create(context.Background(), "tok", local{
		ProductoEmpleado: "raticida",
		Fecha:            "2024-03-01",
		Responsable:      "p1",
		User:             "u1",
		Farm:             "f1",
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", created.ID)

	// A nil multi-select is coerced to [] in the create payload.
	require.Len(t, fake.requests, 1)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(fake.requests[0].Body, &sent))
	value, ok := sent["titulaciones"]
	require.True(t, ok, "titulaciones should be present in the payload")
	assert.Equal(t, []any{}, value)
}

func TestGetByIDOwnershipMismatch(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, wire{
			OwnedRecord: pocket.OwnedRecord{BaseRecord: pocket.BaseRecord{ID: "r1"}, User: "u2", Farm: "f1"},
		})
	})
	res := newTestResource(t, fake)

	_, err := res.GetByID(context.Background(), "tok", "r1", "u1")
	require.Error(t, err)

	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, "No tienes permisos para ver este registro", permErr.Message)
}

func TestUpdateOwnershipMismatchIssuesNoPatch(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, wire{
			OwnedRecord: pocket.OwnedRecord{BaseRecord: pocket.BaseRecord{ID: "r1"}, User: "u2", Farm: "f1"},
		})
	})
	res := newTestResource(t, fake)

	_, err := res.Update(context.Background(), "tok", "r1", local{ProductoEmpleado: "nuevo"}, "u1")
	require.Error(t, err)

	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, "No tienes permisos para actualizar este registro", permErr.Message)

	// Only the ownership fetch went out, no mutating request.
	assert.Empty(t, fake.mutations())
}

func TestDeleteOwnershipMismatchIssuesNoDelete(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, wire{
			OwnedRecord: pocket.OwnedRecord{BaseRecord: pocket.BaseRecord{ID: "r1"}, User: "u2"},
		})
	})
	res := newTestResource(t, fake)

	err := res.Delete(context.Background(), "tok", "r1", "u1")
	require.Error(t, err)

	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, "No tienes permisos para eliminar este registro", permErr.Message)
	assert.Empty(t, fake.mutations())
}

func TestUpdateHappyPath(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, wire{
				OwnedRecord: pocket.OwnedRecord{BaseRecord: pocket.BaseRecord{ID: "r1"}, User: "u1", Farm: "f1"},
			})
		case http.MethodPatch:
			writeJSON(t, w, wire{
				OwnedRecord:      pocket.OwnedRecord{BaseRecord: pocket.BaseRecord{ID: "r1"}, User: "u1", Farm: "f1"},
				ProductoEmpleado: "insecticida",
			})
		}
	})
	res := newTestResource(t, fake)

	updated, err := res.Update(context.Background(), "tok", "r1", local{ProductoEmpleado: "insecticida"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "insecticida", updated.ProductoEmpleado)

	require.Len(t, fake.requests, 2)
	assert.Equal(t, http.MethodGet, fake.requests[0].Method)
	assert.Equal(t, http.MethodPatch, fake.requests[1].Method)
}

func TestFindOneByFarmNotFoundIsEmpty(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusBadRequest} {
		fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"code":404,"message":"The requested resource wasn't found.","data":{}}`))
		})
		res := newTestResource(t, fake)

		record, err := res.FindOneByFarm(context.Background(), "tok", "u1", "f1")
		require.NoError(t, err)
		assert.Nil(t, record)
	}
}

func TestFindOneByFarmEmptyPage(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, pocket.ListResult[wire]{Page: 1, PerPage: 1})
	})
	res := newTestResource(t, fake)

	record, err := res.FindOneByFarm(context.Background(), "tok", "u1", "f1")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestFindOneByFarmFound(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, pocket.ListResult[wire]{
			Page: 1, PerPage: 1, TotalItems: 1, TotalPages: 1,
			Items: []wire{{
				OwnedRecord: pocket.OwnedRecord{BaseRecord: pocket.BaseRecord{ID: "d1"}, User: "u1", Farm: "f1"},
			}},
		})
	})
	res := newTestResource(t, fake)

	record, err := res.FindOneByFarm(context.Background(), "tok", "u1", "f1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "d1", record.ID)

	require.Len(t, fake.requests, 1)
	assert.Equal(t, `user="u1" && farm="f1"`, fake.requests[0].Query["filter"])
	assert.Equal(t, "1", fake.requests[0].Query["perPage"])
}

func TestSearchCombinesOwnerAndExpression(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, pocket.ListResult[wire]{Page: 1, PerPage: 50})
	})
	res := newTestResource(t, fake)

	_, err := res.Search(context.Background(), "tok", "u1", pocket.Like("producto_empleado", "rat"), ListOptions{FarmID: "f1"})
	require.NoError(t, err)

	require.Len(t, fake.requests, 1)
	assert.Equal(t, `user="u1" && farm="f1" && producto_empleado~"rat"`, fake.requests[0].Query["filter"])
}

func TestRemoteErrorPropagates(t *testing.T) {
	fake := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"code":403,"message":"Only superusers can access this action.","data":{}}`))
	})
	res := newTestResource(t, fake)

	_, err := res.List(context.Background(), "tok", "u1", ListOptions{})
	require.Error(t, err)

	var apiErr *pocket.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Only superusers can access this action.", apiErr.Message)
}
