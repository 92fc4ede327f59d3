package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nupmerge/gen/go/nupmerge"
	"nupmerge/gen/go/nupmergeconnect"
	"nupmerge/internal/config"
	"nupmerge/internal/imposition"
	"nupmerge/internal/pdfdoc/pdftest"
	"nupmerge/internal/session"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])

	buf.Reset()
	newLogger("bogus", "text", &buf).Debug("nope")
	assert.Empty(t, buf.String())
}

func TestNewRejectsBadStore(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Type = "s3"
	_, err := New(&bytes.Buffer{}, cfg)
	assert.ErrorContains(t, err, "output store")
}

func TestHandlerServesRPC(t *testing.T) {
	a, err := New(&bytes.Buffer{}, nil, WithPDFService(&pdftest.Fake{}))
	require.NoError(t, err)
	defer a.Close()

	ts := httptest.NewServer(a.Handler())
	defer ts.Close()

	client := nupmergeconnect.NewMergeServiceClient(ts.Client(), ts.URL)
	res, err := client.ListPresets(context.Background(), connect.NewRequest(&nupmerge.ListPresetsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, len(a.Config().Presets), len(res.Msg.Presets))
}

func TestHandlerEnforcesUploadLimit(t *testing.T) {
	cfg := config.Default()
	cfg.MaxUploadBytes = 512
	a, err := New(&bytes.Buffer{}, cfg, WithPDFService(&pdftest.Fake{}))
	require.NoError(t, err)
	defer a.Close()

	ts := httptest.NewServer(a.Handler())
	defer ts.Close()

	ctx := context.Background()
	client := nupmergeconnect.NewMergeServiceClient(ts.Client(), ts.URL)
	created, err := client.CreateSession(ctx, connect.NewRequest(&nupmerge.CreateSessionRequest{}))
	require.NoError(t, err)

	_, err = client.AddFiles(ctx, connect.NewRequest(&nupmerge.AddFilesRequest{
		SessionId: created.Msg.GetSessionId(),
		Files:     []*nupmerge.FileUpload{{Name: "big.pdf", Data: bytes.Repeat([]byte{'x'}, 4096)}},
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeResourceExhausted, connect.CodeOf(err))
}

func TestMergeFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, data, 0o600))
		return p
	}
	paths := []string{
		write("one.pdf", pdftest.FakeDoc(pdftest.A4Portrait, pdftest.A4Portrait)),
		write("readme.txt", []byte("not a pdf")),
		write("two.pdf", pdftest.FakeDoc(pdftest.A4Landscape)),
	}

	a, err := New(&bytes.Buffer{}, nil, WithPDFService(&pdftest.Fake{}))
	require.NoError(t, err)
	defer a.Close()

	layout := a.Config().Defaults
	merged, rejected, err := a.MergeFiles(context.Background(), paths, layout, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"readme.txt"}, rejected)
	assert.Equal(t, 2, merged.PageCount)
	require.Len(t, merged.Placements, 3)
	assert.Equal(t, "two.pdf", merged.Placements[2].Source.Name)

	_, _, err = a.MergeFiles(context.Background(), []string{filepath.Join(dir, "missing.pdf")}, layout, nil)
	assert.ErrorContains(t, err, "failed to read")

	_, _, err = a.MergeFiles(context.Background(), paths[1:2], layout, nil)
	assert.ErrorIs(t, err, session.ErrNoPDFFiles)

	layout.Grid.Rows = 0
	_, _, err = a.MergeFiles(context.Background(), paths, layout, imposition.NopProgress)
	var layoutErr *imposition.InvalidLayoutError
	assert.ErrorAs(t, err, &layoutErr)
}
