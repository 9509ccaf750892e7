package base

import (
	"testing"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"a"}, SplitList("a"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a, b"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,,b,"))
}

func TestWriteRecordsToUI(t *testing.T) {
	ui := cli.NewMockUi()
	c := &Command{UI: ui}

	require.NoError(t, c.WriteRecords(map[string]string{"id": "a1"}, map[string]string{"id": "a2"}))
	assert.Equal(t, "{\"id\":\"a1\"}\n{\"id\":\"a2\"}\n", ui.OutputWriter.String())
}

func TestWriteRecordsToFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := &Command{UI: cli.NewMockUi(), Fs: fs, flagOutput: "/out.jsonl"}

	require.NoError(t, c.WriteRecords(map[string]string{"id": "a1"}))

	raw, err := afero.ReadFile(fs, "/out.jsonl")
	require.NoError(t, err)
	assert.Equal(t, "{\"id\":\"a1\"}\n", string(raw))
}
