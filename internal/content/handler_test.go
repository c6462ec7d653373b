// AngelaMos | 2026
// handler_test.go

package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthrough(next http.Handler) http.Handler {
	return next
}

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()
	svc, _ := newTestService()
	handler := NewHandler(svc)

	router := chi.NewRouter()
	router.Route("/api/content", func(r chi.Router) {
		handler.RegisterRoutes(r, passthrough)
	})
	return router, svc
}

func serve(
	router chi.Router,
	method, path, body string,
) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateCaseStudyEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/api/content/case-studies", `{
		"title": "Hospital Expansion",
		"client": "Ministry of Health",
		"sector": "Healthcare",
		"contractValue": "$40M",
		"country": "Kenya",
		"description": "Won a competitive tender.",
		"keyAchievements": ["Shortlisted from 12 bidders"],
		"featured": true
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created CaseStudyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Hospital Expansion", created.Title)
	assert.Equal(t, "$40M", created.ContractValue)
	assert.Equal(
		t,
		[]string{"Shortlisted from 12 bidders"},
		created.KeyAchievements,
	)
}

func TestCreateCaseStudyValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/api/content/case-studies", `{
		"title": "Missing everything else"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestUpdateMissingInsightEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(
		router,
		http.MethodPut,
		"/api/content/insights/nope",
		`{"title": "New Title"}`,
	)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Insight not found"}`, rec.Body.String())
}

func TestDeleteFAQEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)

	faq, err := svc.CreateFAQ(context.Background(), &FAQPayload{
		Question: "How long does a bid take?",
		Answer:   "Four to twelve weeks.",
	})
	require.NoError(t, err)

	rec := serve(router, http.MethodDelete, "/api/content/faqs/"+faq.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodDelete, "/api/content/faqs/"+faq.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"FAQ not found"}`, rec.Body.String())
}

func TestMoveFAQEndpointReturnsNewOrder(t *testing.T) {
	router, svc := newTestRouter(t)
	ids := createFAQs(t, svc, 2)

	rec := serve(
		router,
		http.MethodPost,
		"/api/content/faqs/"+ids[1]+"/move",
		`{"direction":"up"}`,
	)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []FAQResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, ids[1], items[0].ID)
}

func TestMoveFAQEndpointRejectsBadDirection(t *testing.T) {
	router, svc := newTestRouter(t)
	ids := createFAQs(t, svc, 2)

	rec := serve(
		router,
		http.MethodPost,
		"/api/content/faqs/"+ids[0]+"/move",
		`{"direction":"sideways"}`,
	)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAllContentEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)

	_, err := svc.SaveProfile(context.Background(), &ProfilePayload{
		Name:  "Angela",
		Email: "angela@example.com",
	})
	require.NoError(t, err)

	rec := serve(router, http.MethodGet, "/api/content/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var all ContentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.NotNil(t, all.Profile)
	assert.Equal(t, "Angela", all.Profile.Name)
	assert.NotNil(t, all.CaseStudies)
	assert.NotNil(t, all.FAQs)
}

func TestGetProfileNotFoundEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/api/content/profile/", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Profile not found"}`, rec.Body.String())
}
