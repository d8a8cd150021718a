package aikido_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/domain/types"
	"github.com/secmon-lab/aikomment/pkg/service/aikido"
)

const (
	testClientID     = "client-id"
	testClientSecret = "client-secret"
	testAccessToken  = "test-access-token"
)

type fakeAikido struct {
	repos        int
	tokenCalls   atomic.Int32
	pageRequests atomic.Int32
	failGroups   bool
}

func (f *fakeAikido) router(t *testing.T) http.Handler {
	r := chi.NewRouter()

	r.Post("/api/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		id, secret, ok := r.BasicAuth()
		if !ok || id != testClientID || secret != testClientSecret {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		if err := r.ParseForm(); err != nil || r.Form.Get("grant_type") != "client_credentials" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"` + testAccessToken + `","token_type":"bearer","expires_in":3600}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer "+testAccessToken {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r)
			})
		})

		r.Get("/api/public/v1/repositories/code", func(w http.ResponseWriter, r *http.Request) {
			f.pageRequests.Add(1)
			perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))

			var repos []map[string]any
			for i := page * perPage; i < (page+1)*perPage && i < f.repos; i++ {
				repos = append(repos, map[string]any{
					"id":   1000 + i,
					"name": fmt.Sprintf("repo-%d", i),
				})
			}
			writeJSON(t, w, repos)
		})

		r.Get("/api/public/v1/open-issue-groups", func(w http.ResponseWriter, r *http.Request) {
			if f.failGroups {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("boom"))
				return
			}
			gt.Equal(t, "1005", r.URL.Query().Get("filter_code_repo_id"))
			writeJSON(t, w, []map[string]any{
				{"id": 1, "type": "open_source", "title": "Vulnerable lodash", "severity": "high", "severity_score": 75},
				{"id": 2, "type": "sast", "title": "SQL injection", "description": "Unsanitized input", "severity": "critical", "severity_score": 95},
			})
		})

		r.Get("/api/public/v1/issues/export", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			gt.Equal(t, "1005", q.Get("filter_code_repo_id"))
			gt.Equal(t, "open", q.Get("filter_status"))
			writeJSON(t, w, []map[string]any{
				{
					"id":               10,
					"group_id":         q.Get("filter_issue_group_id"),
					"severity":         "high",
					"attack_surface":   "backend",
					"affected_package": "lodash",
					"affected_file":    "package-lock.json",
				},
			})
		})
	})

	return r
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	gt.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestClient(t *testing.T, f *fakeAikido, clientSecret string) *aikido.Client {
	srv := httptest.NewServer(f.router(t))
	t.Cleanup(srv.Close)

	return aikido.New(testClientID, clientSecret,
		aikido.WithBaseURL(srv.URL+"/"),
		aikido.WithHTTPClient(srv.Client()),
	)
}

func TestClientAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		f := &fakeAikido{}
		client := newTestClient(t, f, testClientSecret)
		gt.NoError(t, client.Authenticate(ctx))
		gt.Equal(t, int32(1), f.tokenCalls.Load())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		f := &fakeAikido{}
		client := newTestClient(t, f, "wrong")
		err := client.Authenticate(ctx)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("unable to retrieve access token")
	})

	t.Run("token is reused across calls", func(t *testing.T) {
		f := &fakeAikido{repos: 3}
		client := newTestClient(t, f, testClientSecret)
		gt.NoError(t, client.Authenticate(ctx))
		_, err := client.ListCodeRepositories(ctx)
		gt.NoError(t, err)
		gt.Equal(t, int32(1), f.tokenCalls.Load())
	})
}

func TestClientListCodeRepositories(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		repos         int
		expectedPages int32
	}{
		{"No repository", 0, 1},
		{"Less than one page", 7, 1},
		{"Exactly one page", 10, 2},
		{"Several pages", 23, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeAikido{repos: tc.repos}
			client := newTestClient(t, f, testClientSecret)

			repos, err := client.ListCodeRepositories(ctx)
			gt.NoError(t, err).Required()
			gt.A(t, repos).Length(tc.repos)
			gt.Equal(t, tc.expectedPages, f.pageRequests.Load())

			if tc.repos > 0 {
				gt.Equal(t, types.AikidoID("1000"), repos[0].ID)
				gt.Equal(t, "repo-0", repos[0].Name)
			}
		})
	}
}

func TestClientListOpenIssueGroups(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes issue groups", func(t *testing.T) {
		client := newTestClient(t, &fakeAikido{}, testClientSecret)

		groups, err := client.ListOpenIssueGroups(ctx, "1005")
		gt.NoError(t, err).Required()
		if len(groups) != 2 {
			t.Fatalf("expected 2 issue groups, got %d", len(groups))
		}
		gt.Equal(t, types.AikidoID("2"), groups[1].ID)
		gt.Equal(t, model.SeverityCritical, groups[1].Severity)
		gt.Equal(t, "Unsanitized input", groups[1].Description)
		gt.Equal(t, 95, groups[1].SeverityScore)
	})

	t.Run("error response", func(t *testing.T) {
		client := newTestClient(t, &fakeAikido{failGroups: true}, testClientSecret)

		_, err := client.ListOpenIssueGroups(ctx, "1005")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to retrieve issue groups")
	})
}

func TestClientExportIssues(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, &fakeAikido{}, testClientSecret)

	issues, err := client.ExportIssues(ctx, "1005", "2")
	gt.NoError(t, err).Required()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	gt.Equal(t, types.AikidoID("2"), issues[0].GroupID)
	gt.Equal(t, "lodash", issues[0].AffectedPackage)
	gt.Equal(t, "package-lock.json", issues[0].AffectedFile)
}
