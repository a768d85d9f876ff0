// Package firebase implements the service.Service interface using Cloud
// Firestore and the Google Sheets API.
package firebase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"todoseed/internal/config"
	"todoseed/internal/service"
)

const (
	// APITimeout is the timeout for a single API call.
	APITimeout = 10 * time.Second

	// OAuth scopes
	datastoreScope = "https://www.googleapis.com/auth/datastore"
	sheetsScope    = "https://www.googleapis.com/auth/spreadsheets"
)

// Client implements service.Service using Firestore and Sheets.
type Client struct {
	fs    *firestore.Client
	cfg   *config.Config
	log   *zap.Logger
	creds *google.Credentials // nil when running on ambient auth

	sheets *sheets.Service // created on first WriteSheet
}

// New creates a new Firestore client for cfg.ProjectID.
//
// Credentials come from cfg.CredentialsFile or application-default
// credentials. If they cannot be loaded the error is logged and the client
// is still built with the SDK's own default lookup; whether that works is
// only known at the first call.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	opts, creds := clientOptions(ctx, cfg, log)

	fs, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	log.Debug("firestore client ready",
		zap.String("project", cfg.ProjectID),
		zap.String("collection", cfg.Collection))

	return &Client{
		fs:    fs,
		cfg:   cfg,
		log:   log,
		creds: creds,
	}, nil
}

// NewWithSheetsHTTPClient creates a client whose Sheets calls go through
// httpClient (for testing). Firestore calls are not available.
func NewWithSheetsHTTPClient(ctx context.Context, httpClient *http.Client, endpoint string) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, err
	}
	return &Client{log: zap.NewNop(), sheets: svc}, nil
}

// clientOptions returns the credential options for the Firestore client.
// Credential errors are logged, not returned: the client then falls back to
// the SDK's ambient lookup. The emulator needs no credentials at all.
func clientOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) ([]option.ClientOption, *google.Credentials) {
	if host := os.Getenv("FIRESTORE_EMULATOR_HOST"); host != "" {
		log.Debug("using firestore emulator", zap.String("host", host))
		return nil, nil
	}

	creds, err := loadCredentials(ctx, cfg, datastoreScope, sheetsScope)
	if err != nil {
		log.Error("error initializing firestore credentials", zap.Error(err))
		return nil, nil
	}
	return []option.ClientOption{option.WithCredentials(creds)}, creds
}

// loadCredentials resolves explicit or application-default credentials.
func loadCredentials(ctx context.Context, cfg *config.Config, scopes ...string) (*google.Credentials, error) {
	if cfg.HasCredentialsFile() {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
		if err != nil {
			return nil, fmt.Errorf("invalid credentials file: %w", err)
		}
		return creds, nil
	}
	creds, err := google.FindDefaultCredentials(ctx, scopes...)
	if err != nil {
		return nil, fmt.Errorf("application default credentials: %w", err)
	}
	return creds, nil
}

// CreateTask writes a new task document with a generated ID.
func (c *Client) CreateTask(ctx context.Context, t service.Task) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	ref := c.fs.Collection(c.cfg.Collection).NewDoc()
	if _, err := ref.Set(ctx, fromTask(t)); err != nil {
		return "", wrapError(err)
	}
	c.log.Debug("created document", zap.String("collection", c.cfg.Collection), zap.String("id", ref.ID))
	return ref.ID, nil
}

// ListUserTasks returns the user's own tasks, secret ones included.
func (c *Client) ListUserTasks(ctx context.Context, userID string) ([]service.Task, error) {
	q := c.fs.Collection(c.cfg.Collection).
		Where("createdBy", "==", userID).
		OrderBy("priority", firestore.Desc).
		OrderBy("createdAt", firestore.Desc)
	return c.query(ctx, q)
}

// ListTeamTasks returns the team's tasks with secret ones filtered out
// by the query itself.
func (c *Client) ListTeamTasks(ctx context.Context, teamID string) ([]service.Task, error) {
	q := c.fs.Collection(c.cfg.Collection).
		Where("teamId", "==", teamID).
		Where("isSecret", "==", false).
		OrderBy("priority", firestore.Desc).
		OrderBy("createdAt", firestore.Desc)
	return c.query(ctx, q)
}

// AllTeamTasks returns every task of the team, newest first.
func (c *Client) AllTeamTasks(ctx context.Context, teamID string) ([]service.Task, error) {
	q := c.fs.Collection(c.cfg.Collection).
		Where("teamId", "==", teamID).
		OrderBy("createdAt", firestore.Desc)
	return c.query(ctx, q)
}

func (c *Client) query(ctx context.Context, q firestore.Query) ([]service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	iter := q.Documents(ctx)
	defer iter.Stop()

	var result []service.Task
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, wrapError(err)
		}
		var doc taskDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", snap.Ref.ID, err)
		}
		result = append(result, doc.toTask(snap.Ref.ID))
	}
	c.log.Debug("query finished", zap.Int("documents", len(result)))
	return result, nil
}

// UserDisplayName reads users/{uid}.displayName.
func (c *Client) UserDisplayName(ctx context.Context, uid string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	snap, err := c.fs.Collection(c.cfg.UsersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", service.ErrNotFound
		}
		return "", wrapError(err)
	}
	var u userDoc
	if err := snap.DataTo(&u); err != nil {
		return "", fmt.Errorf("decode user %s: %w", uid, err)
	}
	return u.DisplayName, nil
}

// WriteSheet overwrites cellRange with rows using RAW input.
func (c *Client) WriteSheet(ctx context.Context, spreadsheetID, cellRange string, rows [][]interface{}) error {
	if c.sheets == nil {
		var opts []option.ClientOption
		if c.creds != nil {
			opts = append(opts, option.WithCredentials(c.creds))
		}
		svc, err := sheets.NewService(ctx, opts...)
		if err != nil {
			return fmt.Errorf("failed to create sheets service: %w", err)
		}
		c.sheets = svc
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.sheets.Spreadsheets.Values.Update(spreadsheetID, cellRange, &sheets.ValueRange{
		Values: rows,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	c.log.Debug("sheet updated", zap.String("spreadsheet", spreadsheetID), zap.Int("rows", len(rows)))
	return nil
}

// Close closes the Firestore connection.
func (c *Client) Close() error {
	if c.fs == nil {
		return nil
	}
	return c.fs.Close()
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("permission denied (check application default credentials)")
		case http.StatusNotFound:
			return fmt.Errorf("not found")
		}
		return err
	}

	switch status.Code(err) {
	case codes.DeadlineExceeded:
		return fmt.Errorf("request timed out")
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("permission denied (check application default credentials)")
	case codes.NotFound:
		return fmt.Errorf("not found")
	case codes.FailedPrecondition:
		// Firestore includes the index creation link in the message.
		msg := status.Convert(err).Message()
		if strings.Contains(msg, "index") {
			return fmt.Errorf("query requires a composite index: %s", msg)
		}
	}

	return err
}
