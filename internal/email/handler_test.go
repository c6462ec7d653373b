// AngelaMos | 2026
// handler_test.go

package email

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/config"
	"github.com/carterperez-dev/portfolio-cms/internal/content"
)

type fakeSender struct {
	sent []*Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg *Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeSubscriberStore struct {
	emails []string
}

func (f *fakeSubscriberStore) SubscribeNewsletter(
	ctx context.Context,
	email string,
) (bool, error) {
	for _, existing := range f.emails {
		if existing == email {
			return false, nil
		}
	}
	f.emails = append(f.emails, email)
	return true, nil
}

func (f *fakeSubscriberStore) ListNewsletterSubscribers(
	ctx context.Context,
) ([]content.SubscriberResponse, error) {
	subs := make([]content.SubscriberResponse, 0, len(f.emails))
	for _, email := range f.emails {
		subs = append(subs, content.SubscriberResponse{Email: email})
	}
	return subs, nil
}

func passthrough(next http.Handler) http.Handler {
	return next
}

func testConfig() config.EmailConfig {
	return config.EmailConfig{
		ResendAPIKey: "re_test_key",
		ContactEmail: "owner@example.com",
		FromEmail:    "site@example.com",
	}
}

func newTestRouter(
	sender *fakeSender,
	store *fakeSubscriberStore,
	cfg config.EmailConfig,
) chi.Router {
	handler := NewHandler(sender, store, cfg, slog.Default())
	router := chi.NewRouter()
	router.Route("/api/email", func(r chi.Router) {
		handler.RegisterRoutes(r, passthrough)
	})
	return router
}

func post(router chi.Router, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(
		http.MethodPost,
		path,
		strings.NewReader(body),
	)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubscribeNewAddress(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeSubscriberStore{}
	router := newTestRouter(sender, store, testConfig())

	rec := post(
		router,
		"/api/email/newsletter",
		`{"email":"reader@example.com"}`,
	)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully subscribed")
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"owner@example.com"}, sender.sent[0].To)
	assert.Equal(t, "New Newsletter Subscription", sender.sent[0].Subject)
}

func TestSubscribeExistingAddressSkipsEmail(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeSubscriberStore{emails: []string{"reader@example.com"}}
	router := newTestRouter(sender, store, testConfig())

	rec := post(
		router,
		"/api/email/newsletter",
		`{"email":"reader@example.com"}`,
	)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already subscribed")
	assert.Empty(t, sender.sent)
}

func TestSubscribeInvalidEmail(t *testing.T) {
	router := newTestRouter(&fakeSender{}, &fakeSubscriberStore{}, testConfig())

	rec := post(router, "/api/email/newsletter", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestSubscribeMissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.ResendAPIKey = ""
	router := newTestRouter(&fakeSender{}, &fakeSubscriberStore{}, cfg)

	rec := post(
		router,
		"/api/email/newsletter",
		`{"email":"reader@example.com"}`,
	)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing RESEND_API_KEY")
}

func TestSubscribeSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider down")}
	store := &fakeSubscriberStore{}
	router := newTestRouter(sender, store, testConfig())

	rec := post(
		router,
		"/api/email/newsletter",
		`{"email":"reader@example.com"}`,
	)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to process subscription")
}

func TestContactSendsWithReplyTo(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(sender, &fakeSubscriberStore{}, testConfig())

	rec := post(router, "/api/email/contact", `{
		"name": "Prospective Client",
		"email": "client@example.com",
		"subject": "RFP support",
		"message": "Can you help with a bid due next month?"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "client@example.com", sender.sent[0].ReplyTo)
	assert.Equal(t, "RFP support", sender.sent[0].Subject)
	assert.Equal(t, []string{"owner@example.com"}, sender.sent[0].To)
}

func TestBroadcastCountsFailures(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeSubscriberStore{
		emails: []string{"a@example.com", "b@example.com"},
	}
	router := newTestRouter(sender, store, testConfig())

	rec := post(router, "/api/email/broadcast", `{
		"subject": "Monthly update",
		"html": "<p>News</p>"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(
		t,
		`{"success":true,"sent":2,"failed":0}`,
		rec.Body.String(),
	)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, []string{"a@example.com"}, sender.sent[0].To)
}
