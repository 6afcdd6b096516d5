package pocket

import (
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
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testWire struct {
	OwnedRecord
	Nombre string `json:"nombre,omitempty"`
}

func TestAuthWithPassword(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/collections/users/auth-with-password", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["identity"])
		assert.Equal(t, "secreto", body["password"])

		json.NewEncoder(w).Encode(Auth{
			Token: "tok-123",
			Record: UserRecord{
				BaseRecord: BaseRecord{ID: "u1"},
				Email:      "ana@example.com",
				Name:       "Ana",
			},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	auth, err := c.AuthWithPassword(context.Background(), "ana@example.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", auth.Token)
	assert.Equal(t, "u1", auth.Record.ID)
	assert.Equal(t, "Ana", auth.Record.Name)
}

func TestAuthWithPasswordFailure(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/collections/users/auth-with-password", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":400,"message":"Failed to authenticate.","data":{}}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	_, err := c.AuthWithPassword(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Failed to authenticate.", apiErr.Message)
}

func TestListSendsQueryParams(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string

	r := chi.NewRouter()
	r.Get("/api/collections/personal/records", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		gotQuery = map[string]string{
			"page":    q.Get("page"),
			"perPage": q.Get("perPage"),
			"filter":  q.Get("filter"),
			"sort":    q.Get("sort"),
			"expand":  q.Get("expand"),
		}
		gotAuth = req.Header.Get("Authorization")

		json.NewEncoder(w).Encode(ListResult[testWire]{
			Page:       1,
			PerPage:    50,
			TotalItems: 1,
			TotalPages: 1,
			Items: []testWire{
				{OwnedRecord: OwnedRecord{BaseRecord: BaseRecord{ID: "r1"}, User: "u1", Farm: "f1"}, Nombre: "Ana"},
			},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	res, err := List[testWire](context.Background(), c, "tok", "personal", ListParams{
		Page:    1,
		PerPage: 50,
		Filter:  And(Eq("user", "u1"), Eq("farm", "f1")).String(),
		Sort:    "-created",
		Expand:  []string{"responsable"},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Ana", res.Items[0].Nombre)
	assert.Equal(t, 1, res.TotalItems)

	assert.Equal(t, "1", gotQuery["page"])
	assert.Equal(t, "50", gotQuery["perPage"])
	assert.Equal(t, `user="u1" && farm="f1"`, gotQuery["filter"])
	assert.Equal(t, "-created", gotQuery["sort"])
	assert.Equal(t, "responsable", gotQuery["expand"])
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestCreateUpdateDelete(t *testing.T) {
	var methods []string

	r := chi.NewRouter()
	r.Post("/api/collections/personal/records", func(w http.ResponseWriter, req *http.Request) {
		methods = append(methods, req.Method)
		var in testWire
		require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		in.ID = "r1"
		in.Created = "2024-03-01 10:00:00.000Z"
		json.NewEncoder(w).Encode(in)
	})
	r.Patch("/api/collections/personal/records/r1", func(w http.ResponseWriter, req *http.Request) {
		methods = append(methods, req.Method)
		json.NewEncoder(w).Encode(testWire{
			OwnedRecord: OwnedRecord{BaseRecord: BaseRecord{ID: "r1"}, User: "u1"},
			Nombre:      "Ana M.",
		})
	})
	r.Delete("/api/collections/personal/records/r1", func(w http.ResponseWriter, req *http.Request) {
		methods = append(methods, req.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	ctx := context.Background()

	created, err := Create(ctx, c, "tok", "personal", testWire{
		OwnedRecord: OwnedRecord{User: "u1", Farm: "f1"},
		Nombre:      "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", created.ID)
	assert.NotEmpty(t, created.Created)

	updated, err := Update[testWire](ctx, c, "tok", "personal", "r1", map[string]any{"nombre": "Ana M."})
	require.NoError(t, err)
	assert.Equal(t, "Ana M.", updated.Nombre)

	require.NoError(t, c.Delete(ctx, "tok", "personal", "r1"))

	assert.Equal(t, []string{"POST", "PATCH", "DELETE"}, methods)
}

func TestErrorBodySurfacesFieldData(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/collections/personal/records", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":400,"message":"Failed to create record.","data":{"dni":{"code":"validation_required","message":"Missing required value."}}}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	_, err := Create(context.Background(), c, "tok", "personal", testWire{Nombre: "Ana"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to create record.", apiErr.Message)
	require.Contains(t, apiErr.Data, "dni")
	assert.Equal(t, "validation_required", apiErr.Data["dni"].Code)
}

func TestErrorWithoutBodyGetsGenericMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/collections/personal/records/r9", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	_, err := GetOne[testWire](context.Background(), c, "tok", "personal", "r9", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{Status: 404}))
	assert.True(t, IsNotFound(&APIError{Status: 400}))
	assert.False(t, IsNotFound(&APIError{Status: 403}))
	assert.False(t, IsNotFound(context.Canceled))
}
