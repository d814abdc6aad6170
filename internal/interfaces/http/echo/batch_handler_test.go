package echo_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

func directoryWithUsers(n int) *listOnlyDirectory {
	users := make([]domain.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, domain.User{ID: i, Email: fmt.Sprintf("user%d@x.com", i)})
	}
	return &listOnlyDirectory{users: users}
}

func TestFetchBatchHandlerReportsContinuation(t *testing.T) {
	t.Parallel()

	e := newTestServer(&fakeProvisionUseCase{}, &fakeRevokeUseCase{}, &fakeShowUseCase{}, directoryWithUsers(45))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/batch?status=active", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Data struct {
			Results  []json.RawMessage `json:"results"`
			Page     int               `json:"page"`
			PageSize int               `json:"page_size"`
			Count    int               `json:"count"`
			HasNext  bool              `json:"has_next"`
			NextPage int               `json:"next_page"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if len(got.Data.Results) != 20 || got.Data.Count != 45 {
		t.Fatalf("unexpected batch shape: %d results, count %d", len(got.Data.Results), got.Data.Count)
	}
	if !got.Data.HasNext || got.Data.NextPage != 2 {
		t.Fatalf("expected continuation to page 2, got has_next=%v next_page=%d", got.Data.HasNext, got.Data.NextPage)
	}
}

func TestFetchBatchHandlerLastPageOmitsContinuation(t *testing.T) {
	t.Parallel()

	e := newTestServer(&fakeProvisionUseCase{}, &fakeRevokeUseCase{}, &fakeShowUseCase{}, directoryWithUsers(45))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/batch?status=active&page=3", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "next_page") {
		t.Fatalf("last page should omit next_page: %s", rec.Body.String())
	}
}

func TestSnapshotHandlerWithoutStore(t *testing.T) {
	t.Parallel()

	e := newTestServer(&fakeProvisionUseCase{}, &fakeRevokeUseCase{}, &fakeShowUseCase{}, directoryWithUsers(3))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/directory/snapshots", strings.NewReader(`{"status":"active"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGroupHandlerRestrictsUnknownOwner(t *testing.T) {
	t.Parallel()

	e := newTestServer(&fakeProvisionUseCase{}, &fakeRevokeUseCase{}, &fakeShowUseCase{}, directoryWithUsers(0))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups?platform_owner=someone@else.com", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"default"`) {
		t.Fatalf("restricted owner should only see the default group: %s", rec.Body.String())
	}
}

func TestMetadataHandler(t *testing.T) {
	t.Parallel()

	e := newTestServer(&fakeProvisionUseCase{}, &fakeRevokeUseCase{}, &fakeShowUseCase{}, directoryWithUsers(0))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metadata", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got struct {
		Data struct {
			Engine             string   `json:"engine"`
			SupportedExecution []string `json:"supported_execution"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if got.Data.Engine != "iamx-redash" {
		t.Fatalf("unexpected engine: %q", got.Data.Engine)
	}
	if len(got.Data.SupportedExecution) != 4 {
		t.Fatalf("unexpected supported executions: %v", got.Data.SupportedExecution)
	}
}
