package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"todoseed/internal/config"
	"todoseed/internal/service"
)

func TestWrapError(t *testing.T) {
	permission := "permission denied (check application default credentials)"

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"deadline", context.DeadlineExceeded, "request timed out"},
		{"wrapped deadline", fmt.Errorf("rpc: %w", context.DeadlineExceeded), "request timed out"},
		{"grpc deadline", status.Error(codes.DeadlineExceeded, "slow"), "request timed out"},
		{"grpc unauthenticated", status.Error(codes.Unauthenticated, "no creds"), permission},
		{"grpc permission", status.Error(codes.PermissionDenied, "missing role"), permission},
		{"grpc not found", status.Error(codes.NotFound, "gone"), "not found"},
		{"grpc missing index", status.Error(codes.FailedPrecondition, "The query requires an index. You can create it here: https://console"),
			"query requires a composite index: The query requires an index. You can create it here: https://console"},
		{"http 403", &googleapi.Error{Code: http.StatusForbidden}, permission},
		{"http 404", &googleapi.Error{Code: http.StatusNotFound}, "not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapError(tc.err)
			if got == nil || got.Error() != tc.want {
				t.Errorf("expected %q, got %v", tc.want, got)
			}
		})
	}
}

func TestWrapError_PassThrough(t *testing.T) {
	if wrapError(nil) != nil {
		t.Error("expected nil for nil error")
	}

	orig := status.Error(codes.Unavailable, "connection refused")
	if got := wrapError(orig); got != orig {
		t.Errorf("expected unavailable error unchanged, got %v", got)
	}

	other := errors.New("boom")
	if got := wrapError(other); got != other {
		t.Errorf("expected plain error unchanged, got %v", got)
	}
}

func TestTaskDocRoundTrip(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	task := service.Task{
		ID:          "ignored",
		Content:     "Secret Team Task (P2)",
		Priority:    2,
		IsSecret:    true,
		IsCompleted: false,
		CreatedBy:   "user-1",
		TeamID:      "team-1",
		CreatedAt:   created,
	}

	doc := fromTask(task)
	if !doc.CreatedAt.IsZero() {
		t.Errorf("createdAt must be left for the server, got %v", doc.CreatedAt)
	}

	doc.CreatedAt = created
	got := doc.toTask("doc-1")
	want := task
	want.ID = "doc-1"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("task mismatch (-want +got):\n%s", diff)
	}
}

func TestClientOptions_CredentialFailureFallsBack(t *testing.T) {
	t.Setenv("FIRESTORE_EMULATOR_HOST", "")
	core, logs := observer.New(zapcore.DebugLevel)

	cfg := &config.Config{
		ProjectID:       "motodo-app",
		CredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
	}

	opts, creds := clientOptions(context.Background(), cfg, zap.New(core))

	if opts != nil || creds != nil {
		t.Errorf("expected no credential options after failure, got %v %v", opts, creds)
	}
	errLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errLogs) != 1 {
		t.Fatalf("expected 1 error log, got %d", len(errLogs))
	}
	if errLogs[0].Message != "error initializing firestore credentials" {
		t.Errorf("unexpected log message %q", errLogs[0].Message)
	}
}

func TestClientOptions_Emulator(t *testing.T) {
	t.Setenv("FIRESTORE_EMULATOR_HOST", "localhost:8681")
	core, logs := observer.New(zapcore.DebugLevel)

	cfg := &config.Config{
		ProjectID:       "motodo-app",
		CredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
	}

	opts, creds := clientOptions(context.Background(), cfg, zap.New(core))

	if opts != nil || creds != nil {
		t.Errorf("expected no credential options for emulator, got %v %v", opts, creds)
	}
	if n := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); n != 0 {
		t.Errorf("expected no error logs with emulator, got %d", n)
	}
}

func TestNew_Emulator(t *testing.T) {
	t.Setenv("FIRESTORE_EMULATOR_HOST", "localhost:8681")

	cfg := &config.Config{ProjectID: "motodo-app", Collection: "todos"}
	c, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}

func TestWriteSheet(t *testing.T) {
	var gotMethod, gotPath, gotInput string
	var gotBody struct {
		Values [][]interface{} `json:"values"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotInput = r.URL.Query().Get("valueInputOption")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"spreadsheetId":"sheet-123","updatedRows":2}`)
	}))
	defer srv.Close()

	c, err := NewWithSheetsHTTPClient(context.Background(), srv.Client(), srv.URL+"/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := [][]interface{}{
		{"Created At", "Content"},
		{"2026-01-02T03:04:05.000Z", "Urgent Team Task (P1)"},
	}
	if err := c.WriteSheet(context.Background(), "sheet-123", "Sheet1!A1", rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("expected PUT, got %s", gotMethod)
	}
	if !strings.HasSuffix(gotPath, "/spreadsheets/sheet-123/values/Sheet1!A1") {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotInput != "RAW" {
		t.Errorf("expected RAW input option, got %q", gotInput)
	}
	if diff := cmp.Diff(rows, gotBody.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSheet_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"The caller does not have permission"}}`)
	}))
	defer srv.Close()

	c, err := NewWithSheetsHTTPClient(context.Background(), srv.Client(), srv.URL+"/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = c.WriteSheet(context.Background(), "sheet-123", "Sheet1!A1", [][]interface{}{{"x"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("expected permission denied, got %v", err)
	}
}
