package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radiolabs/psmareport/internal/backend"
	"github.com/radiolabs/psmareport/internal/pipeline"
	"github.com/radiolabs/psmareport/internal/schema"
)

// cannedInvoker answers every request by field key, defaulting to Unknown.
type cannedInvoker struct {
	answers map[string]string
}

func (s *cannedInvoker) InvokeBatch(ctx context.Context, reqs []backend.Request) ([]string, error) {
	out := make([]string, len(reqs))
	for i, req := range reqs {
		if a, ok := s.answers[req.FieldKey]; ok {
			out[i] = a
		} else {
			out[i] = "Unknown"
		}
	}
	return out, nil
}

func newTestServer(t *testing.T, answers map[string]string) *Server {
	t.Helper()
	reg := schema.MustRegistry(schema.LanguageEN)
	runner, err := pipeline.NewRunner(reg, &cannedInvoker{answers: answers}, nil, pipeline.Config{}, nil)
	require.NoError(t, err)
	srv, err := NewServer(reg, runner, zap.NewNop(), Config{})
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echoContentType, "application/json")
	}
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

const echoContentType = "Content-Type"

func createSession(t *testing.T, srv *Server) string {
	t.Helper()
	rec := do(t, srv, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := do(t, srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSchemaEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := do(t, srv, http.MethodGet, "/api/v1/schema", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fields []SchemaField
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	require.NotEmpty(t, fields)
	assert.Equal(t, "indication_for_scan", fields[0].Key)
	assert.Equal(t, "multiselect", fields[0].Type)
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t, nil)
	id := createSession(t, srv)

	rec := do(t, srv, http.MethodGet, "/api/v1/sessions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)

	rec = do(t, srv, http.MethodGet, "/api/v1/sessions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sess SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.NotEmpty(t, sess.Fields)

	rec = do(t, srv, http.MethodDelete, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchField(t *testing.T) {
	srv := newTestServer(t, nil)
	id := createSession(t, srv)

	rec := do(t, srv, http.MethodPatch,
		"/api/v1/sessions/"+id+"/fields/chemotherapy",
		`{"value":"Yes"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["summary"], "Chemotherapy?: Yes")
}

func TestPatchFieldValidation(t *testing.T) {
	srv := newTestServer(t, nil)
	id := createSession(t, srv)

	tests := []struct {
		name string
		key  string
		body string
		want int
	}{
		{"unknown field", "bogus", `{"value":"x"}`, http.StatusNotFound},
		{"bad radio option", "chemotherapy", `{"value":"Maybe"}`, http.StatusBadRequest},
		{"bad multiselect option", "visceral_localization", `{"value":["Spleen"]}`, http.StatusBadRequest},
		{"wrong type for number", "liver_suv_mean", `{"value":"high"}`, http.StatusBadRequest},
		{"derived field rejected", "summary", `{"value":"x"}`, http.StatusBadRequest},
		{"valid multiselect", "visceral_localization", `{"value":["Lung","Liver"]}`, http.StatusOK},
		{"valid number", "liver_suv_mean", `{"value":5.6}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPatch,
				fmt.Sprintf("/api/v1/sessions/%s/fields/%s", id, tt.key), tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestExtract(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"chemotherapy": "Yes, docetaxel.",
		"psa_level":    "PSA was 4.2 ng/mL",
	})
	id := createSession(t, srv)

	rec := do(t, srv, http.MethodPost,
		"/api/v1/sessions/"+id+"/extract",
		`{"text":"PSMA PET/CT report body"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Positive(t, res.Batches)
	assert.Zero(t, res.Failed)

	rec = do(t, srv, http.MethodGet, "/api/v1/sessions/"+id+"/export?format=summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Chemotherapy?: Yes")
	assert.Contains(t, rec.Body.String(), "PSA was 4.2 ng/mL")
}

func TestExtractEmptyText(t *testing.T) {
	srv := newTestServer(t, nil)
	id := createSession(t, srv)

	rec := do(t, srv, http.MethodPost, "/api/v1/sessions/"+id+"/extract", `{"text":"   \n "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/v1/sessions/"+id+"/extract", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport(t *testing.T) {
	srv := newTestServer(t, nil)
	id := createSession(t, srv)

	rec := do(t, srv, http.MethodGet, "/api/v1/sessions/"+id+"/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc, "summary")
	assert.Contains(t, doc, "ct_type")

	rec = do(t, srv, http.MethodGet, "/api/v1/sessions/"+id+"/export?format=text", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CLINICAL HISTORY & PROCEDURE")

	rec = do(t, srv, http.MethodGet, "/api/v1/sessions/"+id+"/export?format=csv", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
