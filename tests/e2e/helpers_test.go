//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/debt-recovery-backend/internal/app"
	"github.com/heartmarshall/debt-recovery-backend/internal/app/seeder"
	"github.com/heartmarshall/debt-recovery-backend/internal/config"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/transport/middleware"
	"github.com/heartmarshall/debt-recovery-backend/internal/transport/rest"
)

const samplePassword = "Password@123"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Outbox *outbox
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// outbox records notifications instead of delivering them.
type outbox struct {
	mu   sync.Mutex
	msgs []domain.Notification
}

func (o *outbox) Notify(_ context.Context, msg domain.Notification) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.msgs = append(o.msgs, msg)
	return nil
}

func (o *outbox) Close() error { return nil }

// lastCode returns the most recent one-time code sent to email.
func (o *outbox) lastCode(t *testing.T, email string) string {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := len(o.msgs) - 1; i >= 0; i-- {
		if o.msgs[i].Recipient == email && o.msgs[i].Data["code"] != "" {
			return o.msgs[i].Data["code"]
		}
	}
	t.Fatalf("no code sent to %s", email)
	return ""
}

func (o *outbox) sentTo(email, kind string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, m := range o.msgs {
		if m.Recipient == email && m.Kind == kind {
			n++
		}
	}
	return n
}

// fakeModel answers /predict with a fixed score for every case.
func fakeModel(t *testing.T, score float64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /predict", func(w http.ResponseWriter, r *http.Request) {
		var reqs []struct {
			InvoiceNumber string `json:"invoiceNumber"`
		}
		if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		type prediction struct {
			InvoiceNumber   string  `json:"invoiceNumber"`
			PropensityScore float64 `json:"propensityScore"`
		}
		out := struct {
			Predictions []prediction `json:"predictions"`
		}{}
		for _, req := range reqs {
			out.Predictions = append(out.Predictions, prediction{req.InvoiceNumber, score})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper) and loads the bundled
// sample data.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	model := fakeModel(t, 0.73)

	cfg := &config.Config{
		Server: config.ServerConfig{MaxUploadBytes: 1 << 20},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-at-least-32-chars-long!!",
			JWTIssuer:       "test-issuer",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
			SignupCodeTTL:   15 * time.Minute,
			ResetCodeTTL:    30 * time.Minute,
			BcryptCost:      4,
		},
		Scoring:  config.ScoringConfig{BaseURL: model.URL, Timeout: 5 * time.Second},
		Tracking: config.TrackingConfig{Enabled: true, MaxPayloadChars: 2000, MaxErrorChars: 500},
	}

	box := &outbox{}
	c := app.Wire(pool, cfg, logger, box)

	fixtures, err := seeder.LoadFixtures("")
	require.NoError(t, err)
	p := seeder.NewPipeline(logger, c.SeedStores(), fixtures, seeder.BcryptHasher(cfg.Auth.BcryptCost))
	require.NoError(t, p.Run(context.Background(), nil))
	require.False(t, p.HasErrors(), "seed: %v", p.Results())

	handler := rest.NewRouter(c.Handlers(), rest.RouterDeps{
		Logger:    logger,
		Validator: c.Auth,
		Tracker:   middleware.NewActionTracker(c.Actions, logger, cfg.Tracking),
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Outbox: box,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// call sends a JSON request and returns the status and raw body.
func (ts *testServer) call(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.send(t, req, token)
}

func (ts *testServer) send(t *testing.T, req *http.Request, token string) (int, []byte) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// callJSON is call plus decoding of a 2xx body into T.
func callJSON[T any](t *testing.T, ts *testServer, method, path, token string, body any) T {
	t.Helper()
	status, raw := ts.call(t, method, path, token, body)
	require.Truef(t, status >= 200 && status < 300, "%s %s: status %d: %s", method, path, status, raw)

	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "decode %s", raw)
	return out
}

// login returns an access token for email.
func (ts *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	res := callJSON[map[string]any](t, ts, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": email, "password": password})
	tok, ok := res["accessToken"].(string)
	require.True(t, ok, "expected accessToken in %v", res)
	return tok
}

// uploadCSV posts a CSV body to the admin upload endpoint.
func (ts *testServer) uploadCSV(t *testing.T, token, filename, content string) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/admin/cases/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return ts.send(t, req, token)
}

// importCases uploads n fresh cases and returns their invoice numbers.
func (ts *testServer) importCases(t *testing.T, adminToken string, n int) []string {
	t.Helper()

	suffix := testhelper.UniqueSuffix()
	var sb strings.Builder
	sb.WriteString("invoiceNumber,customerName,amount,daysOverdue,serviceType,pastDefaults\n")
	invoices := make([]string, n)
	for i := range invoices {
		invoices[i] = fmt.Sprintf("E2E-%s-%d", suffix, i)
		fmt.Fprintf(&sb, "%s,Customer %d,%d.50,%d,GROUND,%d\n", invoices[i], i, 1000*(i+1), 10*(i+1), i%3)
	}

	status, raw := ts.uploadCSV(t, adminToken, "e2e.csv", sb.String())
	require.Equal(t, http.StatusOK, status, string(raw))

	var res struct {
		Imported int `json:"imported"`
		Failed   int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(raw, &res))
	require.Equal(t, n, res.Imported)
	require.Zero(t, res.Failed)
	return invoices
}
