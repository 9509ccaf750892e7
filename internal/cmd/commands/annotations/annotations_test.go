package annotations

import (
	"context"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis/hypothesistest"
)

func testBase(t *testing.T) (*base.Command, *hypothesistest.Server, *cli.MockUi, afero.Fs) {
	t.Helper()
	server := hypothesistest.NewServer()
	t.Cleanup(server.Close)

	ui := cli.NewMockUi()
	fs := afero.NewMemMapFs()
	b := &base.Command{
		UI: ui,
		Fs: fs,
		Factory: func(ctx context.Context, configPath string) (*hypothesis.Client, error) {
			cfg := hypothesis.DefaultConfig()
			cfg.BaseURL = server.URL()
			cfg.Username = server.Username
			cfg.DeveloperKey = "test-key"
			return hypothesis.NewClientWithConfig(cfg)
		},
	}
	return b, server, ui, fs
}

func TestCreateCommand(t *testing.T) {
	b, server, ui, _ := testBase(t)

	cmd := &CreateCommand{Command: b}
	code := cmd.Run([]string{"-text", "a note", "-tags", "one,two", "https://example.com"})

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "created")
	assert.Equal(t, 1, server.AnnotationCount())
}

func TestCreateCommandRequiresURI(t *testing.T) {
	b, _, ui, _ := testBase(t)

	cmd := &CreateCommand{Command: b}
	code := cmd.Run([]string{"-text", "a note"})

	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "URI")
}

func TestUpdateCommand(t *testing.T) {
	b, server, ui, _ := testBase(t)
	server.AddAnnotation(&hypothesis.Annotation{ID: "a1", URI: "https://example.com", Text: "old"})

	cmd := &UpdateCommand{Command: b}
	code := cmd.Run([]string{"-text", "new", "a1"})

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "updated")
}

func TestSearchCommandWritesFile(t *testing.T) {
	b, server, ui, fs := testBase(t)
	server.AddAnnotation(&hypothesis.Annotation{ID: "a1", URI: "https://example.com"})
	server.AddAnnotation(&hypothesis.Annotation{ID: "a2", URI: "https://example.com"})

	cmd := &SearchCommand{Command: b}
	code := cmd.Run([]string{"-output", "/results.jsonl"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	raw, err := afero.ReadFile(fs, "/results.jsonl")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"a1"`)
	assert.Contains(t, string(raw), `"a2"`)
}

func TestSearchCommandBadSearchAfter(t *testing.T) {
	b, _, ui, _ := testBase(t)

	cmd := &SearchCommand{Command: b}
	code := cmd.Run([]string{"-search-after", "not a date"})

	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "search-after")
}

func TestFetchCommand(t *testing.T) {
	b, server, ui, _ := testBase(t)
	server.AddAnnotation(&hypothesis.Annotation{ID: "a1", URI: "https://example.com", Text: "the body"})

	cmd := &FetchCommand{Command: b}
	code := cmd.Run([]string{"a1"})

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "the body")
}

func TestDeleteCommand(t *testing.T) {
	b, server, ui, _ := testBase(t)
	server.AddAnnotation(&hypothesis.Annotation{ID: "a1", URI: "https://example.com"})

	code := NewDeleteCommand(b).Run([]string{"a1"})

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "Annotation a1 deleted")
	assert.Equal(t, 0, server.AnnotationCount())
}

func TestDeleteCommandMissing(t *testing.T) {
	b, _, ui, _ := testBase(t)

	code := NewDeleteCommand(b).Run([]string{"missing"})

	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "not found")
}

func TestModerationCommands(t *testing.T) {
	b, server, ui, _ := testBase(t)
	server.AddAnnotation(&hypothesis.Annotation{ID: "a1", URI: "https://example.com"})

	require.Equal(t, 0, NewFlagCommand(b).Run([]string{"a1"}), ui.ErrorWriter.String())
	require.Equal(t, 0, NewHideCommand(b).Run([]string{"a1"}), ui.ErrorWriter.String())
	require.Equal(t, 0, NewShowCommand(b).Run([]string{"a1"}), ui.ErrorWriter.String())

	out := ui.OutputWriter.String()
	assert.Contains(t, out, "Annotation a1 flagged")
	assert.Contains(t, out, "Annotation a1 hidden")
	assert.Contains(t, out, "Annotation a1 unhidden")
}

func TestIDCommandsRequireArgument(t *testing.T) {
	b, _, ui, _ := testBase(t)

	code := NewFlagCommand(b).Run(nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "annotation ID")
}
