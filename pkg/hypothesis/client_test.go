package hypothesis_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis/hypothesistest"
)

func newTestClient(t *testing.T) (*hypothesis.Client, *hypothesistest.Server) {
	t.Helper()
	server := hypothesistest.NewServer()
	t.Cleanup(server.Close)

	cfg := hypothesis.DefaultConfig()
	cfg.BaseURL = server.URL()
	cfg.Username = server.Username
	cfg.DeveloperKey = "test-key"
	client, err := hypothesis.NewClientWithConfig(cfg)
	require.NoError(t, err)
	return client, server
}

func TestAnnotationLifecycle(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateAnnotation(ctx, &hypothesis.InputAnnotation{
		URI:  "https://example.com",
		Text: "first draft",
		Tags: []string{"test"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, server.User(), created.User)
	assert.Equal(t, "__world__", created.Group)

	fetched, err := client.FetchAnnotation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "first draft", fetched.Text)

	updated, err := client.UpdateAnnotation(ctx, created.ID, &hypothesis.InputAnnotation{Text: "second draft"})
	require.NoError(t, err)
	assert.Equal(t, "second draft", updated.Text)
	assert.Equal(t, "https://example.com", updated.URI)
	assert.Equal(t, []string{"test"}, updated.Tags)

	deleted, err := client.DeleteAnnotation(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 0, server.AnnotationCount())

	_, err = client.FetchAnnotation(ctx, created.ID)
	var apiErr *hypothesis.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCreateAnnotationRequiresURI(t *testing.T) {
	client, _ := newTestClient(t)

	// Rejected locally, before any request is made.
	_, err := client.CreateAnnotation(context.Background(), &hypothesis.InputAnnotation{Text: "no uri"})
	require.Error(t, err)
	var apiErr *hypothesis.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestModeration(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()
	server.AddAnnotation(&hypothesis.Annotation{ID: "a1", URI: "https://example.com"})

	require.NoError(t, client.FlagAnnotation(ctx, "a1"))
	require.NoError(t, client.HideAnnotation(ctx, "a1"))

	a, err := client.FetchAnnotation(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, a.Flagged)
	assert.True(t, a.Hidden)

	require.NoError(t, client.ShowAnnotation(ctx, "a1"))
	a, err = client.FetchAnnotation(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, a.Hidden)
}

func seedAnnotations(server *hypothesistest.Server, n int, group string) {
	base := time.Date(2020, 6, 10, 5, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		server.AddAnnotation(&hypothesis.Annotation{
			ID:      fmt.Sprintf("%s-%03d", group, i),
			URI:     "https://example.com",
			Group:   group,
			Updated: base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func TestSearchAnnotations(t *testing.T) {
	client, server := newTestClient(t)
	seedAnnotations(server, 5, "g1")
	seedAnnotations(server, 3, "g2")

	query := hypothesis.NewSearchQuery()
	query.Group = []string{"g1"}
	rows, err := client.SearchAnnotations(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	for _, a := range rows {
		assert.Equal(t, "g1", a.Group)
	}
}

func TestSearchAnnotationsDefaultsOnNilQuery(t *testing.T) {
	client, server := newTestClient(t)
	seedAnnotations(server, 25, "g1")

	rows, err := client.SearchAnnotations(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, rows, 20)
	// Default order is descending by update time.
	assert.True(t, rows[0].Updated.After(rows[1].Updated))
}

func TestSearchAnnotationsAll(t *testing.T) {
	client, server := newTestClient(t)
	seedAnnotations(server, 7, "g1")

	query := hypothesis.NewSearchQuery()
	query.Limit = 3
	query.Order = hypothesis.OrderAsc
	rows, err := client.SearchAnnotationsAll(context.Background(), query)
	require.NoError(t, err)

	// Three pages (3+3+1), accumulated without duplicates, oldest first.
	require.Len(t, rows, 7)
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i].Updated.After(rows[i-1].Updated))
	}
	seen := make(map[string]bool)
	for _, a := range rows {
		assert.False(t, seen[a.ID])
		seen[a.ID] = true
	}
}

func TestGroupLifecycle(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateGroup(ctx, "Reading Club", "weekly papers")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Reading Club", created.Name)
	assert.Equal(t, hypothesis.GroupPrivate, created.Type)

	fetched, err := client.FetchGroup(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	updated, err := client.UpdateGroup(ctx, created.ID, "Journal Club", "")
	require.NoError(t, err)
	assert.Equal(t, "Journal Club", updated.Name)

	members, err := client.GetGroupMembers(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "testuser", members[0].Username)

	require.NoError(t, client.LeaveGroup(ctx, created.ID))
	members, err = client.GetGroupMembers(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestGetGroups(t *testing.T) {
	client, server := newTestClient(t)
	server.AddGroup(&hypothesis.Group{ID: "g1", Name: "One"}, nil)
	server.AddGroup(&hypothesis.Group{ID: "g2", Name: "Two"}, nil)

	groups, err := client.GetGroups(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "g1", groups[0].ID)
	assert.Equal(t, "g2", groups[1].ID)
}

func TestFetchUserProfile(t *testing.T) {
	client, server := newTestClient(t)

	profile, err := client.FetchUserProfile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, profile.UserID)
	assert.Equal(t, server.User(), *profile.UserID)
	assert.Equal(t, "hypothes.is", profile.Authority)
}

func TestFetchUserGroups(t *testing.T) {
	client, server := newTestClient(t)
	server.AddGroup(&hypothesis.Group{ID: "g1", Name: "One"}, nil)

	groups, err := client.FetchUserGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "g1", groups[0].ID)
}

func TestAPIErrorCarriesStatusAndReason(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()

	calls := []struct {
		op  string
		run func() error
	}{
		{"POST /annotations", func() error {
			_, err := client.CreateAnnotation(ctx, &hypothesis.InputAnnotation{URI: "https://example.com"})
			return err
		}},
		{"GET /search", func() error {
			_, err := client.SearchAnnotations(ctx, nil)
			return err
		}},
		{"GET /profile", func() error {
			_, err := client.FetchUserProfile(ctx)
			return err
		}},
		{"POST /groups", func() error {
			_, err := client.CreateGroup(ctx, "name", "")
			return err
		}},
	}
	for _, call := range calls {
		t.Run(call.op, func(t *testing.T) {
			server.FailWith(call.op, hypothesistest.Failure{
				StatusCode: http.StatusTeapot,
				Status:     "failure",
				Reason:     "brewing",
			})
			err := call.run()
			var apiErr *hypothesis.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusTeapot, apiErr.StatusCode)
			assert.Equal(t, "failure", apiErr.Status)
			assert.Equal(t, "brewing", apiErr.Reason)
			assert.Contains(t, apiErr.Error(), "brewing")
		})
	}
}

func TestGarbageBodyIsDecodeError(t *testing.T) {
	client, server := newTestClient(t)
	server.GarbageBody("GET /profile")

	_, err := client.FetchUserProfile(context.Background())
	var decodeErr *hypothesis.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Raw, "definitely not json")
}

func TestUnreachableServerIsTransportError(t *testing.T) {
	client, server := newTestClient(t)
	server.Close()

	_, err := client.FetchUserProfile(context.Background())
	var transportErr *hypothesis.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "GET /profile", transportErr.Op)
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchUserProfile(ctx)
	require.Error(t, err)
}
