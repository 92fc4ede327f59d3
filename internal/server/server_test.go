package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/go-cmp/cmp"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	"nupmerge/gen/go/nupmerge"
	"nupmerge/gen/go/nupmergeconnect"
	"nupmerge/internal/config"
	"nupmerge/internal/imposition"
	"nupmerge/internal/outputstore"
	"nupmerge/internal/pdfdoc"
	"nupmerge/internal/pdfdoc/pdftest"
	"nupmerge/internal/session"
)

type testEnv struct {
	client nupmergeconnect.MergeServiceClient
	server *httptest.Server
	svc    *MergeService
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, &pdftest.Fake{}, outputstore.NewMemory(0))
}

func newTestEnvWith(t *testing.T, pdf pdfdoc.Service, store outputstore.Store) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewMergeService(
		config.Default(),
		session.NewRegistry(),
		imposition.New(pdf, imposition.WithLogger(logger)),
		pdf,
		store,
		logger,
	)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }

	ts := httptest.NewServer(NewMux(svc))
	t.Cleanup(ts.Close)
	return &testEnv{client: nupmergeconnect.NewMergeServiceClient(ts.Client(), ts.URL), server: ts, svc: svc}
}

func (e *testEnv) newSession(t *testing.T, files ...*nupmerge.FileUpload) string {
	t.Helper()
	ctx := context.Background()
	res, err := e.client.CreateSession(ctx, connect.NewRequest(&nupmerge.CreateSessionRequest{}))
	require.NoError(t, err)
	id := res.Msg.GetSessionId()
	require.NotEmpty(t, id)
	if len(files) > 0 {
		_, err := e.client.AddFiles(ctx, connect.NewRequest(&nupmerge.AddFilesRequest{SessionId: id, Files: files}))
		require.NoError(t, err)
	}
	return id
}

func pdfUpload(name string, pages ...pdftest.Page) *nupmerge.FileUpload {
	return &nupmerge.FileUpload{Name: name, ContentType: "application/pdf", Data: pdftest.FakeDoc(pages...)}
}

func names(files []*nupmerge.FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func collect(t *testing.T, stream *connect.ServerStreamForClient[nupmerge.MergeEvent]) ([]*nupmerge.MergeEvent, error) {
	t.Helper()
	var events []*nupmerge.MergeEvent
	for stream.Receive() {
		events = append(events, stream.Msg())
	}
	err := stream.Err()
	_ = stream.Close()
	return events, err
}

func TestFileListOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.newSession(t)

	added, err := env.client.AddFiles(ctx, connect.NewRequest(&nupmerge.AddFilesRequest{
		SessionId: id,
		Files: []*nupmerge.FileUpload{
			pdfUpload("a.pdf", pdftest.A4Portrait),
			{Name: "notes.txt", ContentType: "text/plain", Data: []byte("hello")},
			pdfUpload("b.PDF", pdftest.A4Portrait),
			{Name: "c.pdf", Data: pdftest.FakeDoc(pdftest.Square)},
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt"}, added.Msg.Rejected)
	assert.Equal(t, []string{"a.pdf", "b.PDF", "c.pdf"}, names(added.Msg.Files))
	assert.NotEmpty(t, added.Msg.Files[0].SizeLabel)

	moved, err := env.client.MoveFile(ctx, connect.NewRequest(&nupmerge.MoveFileRequest{SessionId: id, Index: 2, Direction: "up"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "c.pdf", "b.PDF"}, names(moved.Msg.Files))

	// Boundary moves are no-ops.
	moved, err = env.client.MoveFile(ctx, connect.NewRequest(&nupmerge.MoveFileRequest{SessionId: id, Index: 0, Direction: "up"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "c.pdf", "b.PDF"}, names(moved.Msg.Files))

	to := int32(0)
	moved, err = env.client.MoveFile(ctx, connect.NewRequest(&nupmerge.MoveFileRequest{SessionId: id, Index: 2, To: &to}))
	require.NoError(t, err)
	assert.Equal(t, []string{"b.PDF", "a.pdf", "c.pdf"}, names(moved.Msg.Files))

	reordered, err := env.client.ReorderFiles(ctx, connect.NewRequest(&nupmerge.ReorderFilesRequest{SessionId: id, Order: []int32{2, 0, 1}}))
	require.NoError(t, err)
	assert.Equal(t, []string{"c.pdf", "b.PDF", "a.pdf"}, names(reordered.Msg.Files))

	removed, err := env.client.RemoveFile(ctx, connect.NewRequest(&nupmerge.RemoveFileRequest{SessionId: id, Index: 1}))
	require.NoError(t, err)
	assert.Equal(t, "b.PDF", removed.Msg.Removed.Name)

	listed, err := env.client.ListFiles(ctx, connect.NewRequest(&nupmerge.ListFilesRequest{SessionId: id}))
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"c.pdf", "a.pdf"}, names(listed.Msg.Files)); diff != "" {
		t.Errorf("file order mismatch (-want +got):\n%s", diff)
	}
	for i, f := range listed.Msg.Files {
		assert.Equal(t, int32(i), f.Index)
	}
}

func TestFileListErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.newSession(t, pdfUpload("a.pdf", pdftest.A4Portrait))

	_, err := env.client.ListFiles(ctx, connect.NewRequest(&nupmerge.ListFilesRequest{SessionId: "nope"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = env.client.AddFiles(ctx, connect.NewRequest(&nupmerge.AddFilesRequest{
		SessionId: id,
		Files:     []*nupmerge.FileUpload{{Name: "x.png", ContentType: "image/png", Data: []byte{1}}},
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = env.client.RemoveFile(ctx, connect.NewRequest(&nupmerge.RemoveFileRequest{SessionId: id, Index: 5}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = env.client.ReorderFiles(ctx, connect.NewRequest(&nupmerge.ReorderFilesRequest{SessionId: id, Order: []int32{0, 0}}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = env.client.MoveFile(ctx, connect.NewRequest(&nupmerge.MoveFileRequest{SessionId: id, Direction: "sideways"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = env.client.MoveFile(ctx, connect.NewRequest(&nupmerge.MoveFileRequest{SessionId: id}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestMergeStreamsProgressThenResult(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.newSession(t,
		pdfUpload("first.pdf", pdftest.A4Portrait),
		pdfUpload("second.pdf", pdftest.A4Portrait),
		pdfUpload("third.pdf", pdftest.A4Portrait),
	)

	stream, err := env.client.Merge(ctx, connect.NewRequest(&nupmerge.MergeRequest{SessionId: id, Rows: 2, Cols: 1}))
	require.NoError(t, err)
	events, err := collect(t, stream)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	last := events[len(events)-1]
	require.NotNil(t, last.Result)
	for _, ev := range events[:len(events)-1] {
		assert.Nil(t, ev.Result)
	}
	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(t, events[i].Percent, events[i-1].Percent, "progress went backwards at event %d", i)
	}
	assert.Equal(t, int32(100), last.Percent)
	for _, ev := range events[:len(events)-1] {
		assert.Less(t, ev.Percent, int32(100), "only the result event reports completion")
	}

	res := last.Result
	assert.Equal(t, int32(2), res.PageCount)
	assert.Equal(t, "merged_20240309_140507.pdf", res.Filename)
	assert.Equal(t, "/download/"+id, res.DownloadUrl)
	require.Len(t, res.Pages, 2)
	assert.Equal(t, "Page 1 (595×842pt)", res.Pages[0].Label)

	preview, err := env.client.Preview(ctx, connect.NewRequest(&nupmerge.PreviewRequest{SessionId: id}))
	require.NoError(t, err)
	if diff := cmp.Diff(res.Pages, preview.Msg.Pages, protocmp.Transform()); diff != "" {
		t.Errorf("preview pages mismatch (-merge +preview):\n%s", diff)
	}
	assert.Equal(t, res.Filename, preview.Msg.Filename)

	resp, err := env.server.Client().Get(env.server.URL + res.DownloadUrl)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), res.Filename)
	assert.Equal(t, res.Size, int64(len(body)))
}

func TestMergeTitleNamesDownload(t *testing.T) {
	env := newTestEnv(t)
	id := env.newSession(t, pdfUpload("a.pdf", pdftest.A4Portrait))

	stream, err := env.client.Merge(context.Background(), connect.NewRequest(&nupmerge.MergeRequest{SessionId: id, Title: "Week 12: handouts", Preset: "4-up"}))
	require.NoError(t, err)
	events, err := collect(t, stream)
	require.NoError(t, err)
	require.NotNil(t, events[len(events)-1].Result)
	assert.Equal(t, "Week 12_ handouts.pdf", events[len(events)-1].Result.Filename)
}

func TestMergeErrors(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name  string
		files []*nupmerge.FileUpload
		req   *nupmerge.MergeRequest
		code  connect.Code
		msg   string
	}{
		{name: "unknown session", req: &nupmerge.MergeRequest{SessionId: "missing"}, code: connect.CodeNotFound},
		{name: "empty session", code: connect.CodeInvalidArgument, msg: "no source files"},
		{
			name:  "unknown preset",
			files: []*nupmerge.FileUpload{pdfUpload("a.pdf", pdftest.A4Portrait)},
			req:   &nupmerge.MergeRequest{Preset: "16-up"},
			code:  connect.CodeInvalidArgument,
		},
		{
			name:  "bad grid",
			files: []*nupmerge.FileUpload{pdfUpload("a.pdf", pdftest.A4Portrait)},
			req:   &nupmerge.MergeRequest{Rows: -1},
			code:  connect.CodeInvalidArgument,
			msg:   "invalid layout",
		},
		{
			name: "corrupt document",
			files: []*nupmerge.FileUpload{
				pdfUpload("a.pdf", pdftest.A4Portrait),
				{Name: "broken.pdf", Data: []byte("%PDF-garbage")},
			},
			code: connect.CodeInvalidArgument,
			msg:  "broken.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			if req == nil {
				req = &nupmerge.MergeRequest{}
			}
			if req.SessionId == "" {
				req.SessionId = env.newSession(t, tt.files...)
			}
			stream, err := env.client.Merge(context.Background(), connect.NewRequest(req))
			if err == nil {
				var events []*nupmerge.MergeEvent
				events, err = collect(t, stream)
				for _, ev := range events {
					assert.Nil(t, ev.Result)
				}
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, connect.CodeOf(err))
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestPreviewAndDownloadBeforeMerge(t *testing.T) {
	env := newTestEnv(t)
	id := env.newSession(t, pdfUpload("a.pdf", pdftest.A4Portrait))

	_, err := env.client.Preview(context.Background(), connect.NewRequest(&nupmerge.PreviewRequest{SessionId: id}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	resp, err := env.server.Client().Get(env.server.URL + downloadURL(id))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClearSessionDropsOutput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.newSession(t, pdfUpload("a.pdf", pdftest.A4Portrait))

	stream, err := env.client.Merge(ctx, connect.NewRequest(&nupmerge.MergeRequest{SessionId: id}))
	require.NoError(t, err)
	_, err = collect(t, stream)
	require.NoError(t, err)

	_, err = env.client.ClearSession(ctx, connect.NewRequest(&nupmerge.ClearSessionRequest{SessionId: id}))
	require.NoError(t, err)

	listed, err := env.client.ListFiles(ctx, connect.NewRequest(&nupmerge.ListFilesRequest{SessionId: id}))
	require.NoError(t, err)
	assert.Empty(t, listed.Msg.Files)

	_, err = env.client.Preview(ctx, connect.NewRequest(&nupmerge.PreviewRequest{SessionId: id}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
}

// gatedPDF holds Save until released so tests can act mid-merge.
type gatedPDF struct {
	*pdftest.Fake
	saving  chan struct{}
	release chan struct{}
}

func (g *gatedPDF) Save(doc pdfdoc.Document) ([]byte, error) {
	close(g.saving)
	<-g.release
	return g.Fake.Save(doc)
}

func TestClearDuringMergeAbortsAndStoresNothing(t *testing.T) {
	pdf := &gatedPDF{Fake: &pdftest.Fake{}, saving: make(chan struct{}), release: make(chan struct{})}
	env := newTestEnvWith(t, pdf, outputstore.NewMemory(0))
	ctx := context.Background()
	id := env.newSession(t, pdfUpload("a.pdf", pdftest.A4Portrait))

	type result struct {
		events []*nupmerge.MergeEvent
		err    error
	}
	done := make(chan result, 1)
	go func() {
		stream, err := env.client.Merge(ctx, connect.NewRequest(&nupmerge.MergeRequest{SessionId: id}))
		if err != nil {
			done <- result{err: err}
			return
		}
		events, err := collect(t, stream)
		done <- result{events, err}
	}()

	select {
	case <-pdf.saving:
	case <-time.After(5 * time.Second):
		t.Fatal("merge did not reach save")
	}
	_, err := env.client.ClearSession(ctx, connect.NewRequest(&nupmerge.ClearSessionRequest{SessionId: id}))
	require.NoError(t, err)
	close(pdf.release)

	var res result
	select {
	case res = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("merge did not finish")
	}
	require.Error(t, res.err)
	assert.Equal(t, connect.CodeAborted, connect.CodeOf(res.err))
	for _, ev := range res.events {
		assert.Nil(t, ev.Result)
	}

	_, err = env.client.Preview(ctx, connect.NewRequest(&nupmerge.PreviewRequest{SessionId: id}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	resp, err := env.server.Client().Get(env.server.URL + downloadURL(id))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type failingStore struct {
	outputstore.Store
	putErr error
}

func (f failingStore) Put(context.Context, string, outputstore.Entry) error { return f.putErr }

func TestStoreFailureLeavesNoResult(t *testing.T) {
	env := newTestEnvWith(t, &pdftest.Fake{}, failingStore{Store: outputstore.NewMemory(0), putErr: errors.New("redis unavailable")})
	ctx := context.Background()
	id := env.newSession(t, pdfUpload("a.pdf", pdftest.A4Portrait))

	stream, err := env.client.Merge(ctx, connect.NewRequest(&nupmerge.MergeRequest{SessionId: id}))
	require.NoError(t, err)
	events, err := collect(t, stream)
	require.Error(t, err)
	assert.Equal(t, connect.CodeInternal, connect.CodeOf(err))
	for _, ev := range events {
		assert.Nil(t, ev.Result)
	}

	_, err = env.client.Preview(ctx, connect.NewRequest(&nupmerge.PreviewRequest{SessionId: id}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
}

func TestMergeEncryptedUpload(t *testing.T) {
	env := newTestEnvWith(t, pdfdoc.NewPDFCPU(), outputstore.NewMemory(0))
	ctx := context.Background()

	var locked bytes.Buffer
	conf := model.NewAESConfiguration("reader", "owner", 256)
	require.NoError(t, pdfapi.Encrypt(bytes.NewReader(pdftest.Build(pdftest.A4Portrait)), &locked, conf))

	tests := []struct {
		name     string
		password string
		code     connect.Code
	}{
		{name: "right password", password: "reader"},
		{name: "wrong password", password: "guess", code: connect.CodeInvalidArgument},
		{name: "missing password", code: connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := env.newSession(t, &nupmerge.FileUpload{Name: "locked.pdf", Data: locked.Bytes(), Password: tt.password})
			stream, err := env.client.Merge(ctx, connect.NewRequest(&nupmerge.MergeRequest{SessionId: id}))
			require.NoError(t, err)
			events, err := collect(t, stream)
			if tt.code == 0 {
				require.NoError(t, err)
				require.NotEmpty(t, events)
				assert.Equal(t, int32(1), events[len(events)-1].Result.GetPageCount())
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, connect.CodeOf(err))
			assert.Contains(t, err.Error(), `wrong password for "locked.pdf"`)
		})
	}
}

func TestListPresets(t *testing.T) {
	env := newTestEnv(t)
	res, err := env.client.ListPresets(context.Background(), connect.NewRequest(&nupmerge.ListPresetsRequest{}))
	require.NoError(t, err)

	assert.Equal(t, "A4", res.Msg.Paper)
	assert.Equal(t, "portrait", res.Msg.Orientation)
	assert.Equal(t, int32(2), res.Msg.Rows)
	assert.Equal(t, int32(1), res.Msg.Cols)
	assert.Equal(t, 10.0, res.Msg.Padding)
	assert.Equal(t, []string{"A3", "A4", "A5", "Legal", "Letter"}, res.Msg.PaperSizes)
	require.NotEmpty(t, res.Msg.Presets)
	want := &nupmerge.PresetInfo{Name: "2-up", Rows: 2, Cols: 1, Orientation: "portrait"}
	assert.True(t, proto.Equal(want, res.Msg.Presets[0]), "got %v", res.Msg.Presets[0])
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)
	req, err := http.NewRequest(http.MethodOptions, env.server.URL+nupmergeconnect.MergeServiceAddFilesProcedure, nil)
	require.NoError(t, err)
	resp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Connect-Protocol-Version")
}

func TestExpireIdle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.newSession(t, pdfUpload("a.pdf", pdftest.A4Portrait))
	require.NoError(t, env.svc.store.Put(ctx, id, outputstore.Entry{Data: []byte("x")}))

	env.svc.cfg.SessionIdle = time.Hour
	env.svc.ExpireIdle(ctx)
	_, err := env.svc.sessions.Get(id)
	require.NoError(t, err)

	env.svc.cfg.SessionIdle = -time.Second
	env.svc.ExpireIdle(ctx)
	_, err = env.svc.sessions.Get(id)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, found, err := env.svc.store.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeriveFilename(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		title string
		want  string
	}{
		{"", "merged_20250102_030405.pdf"},
		{"   ", "merged_20250102_030405.pdf"},
		{"...", "merged_20250102_030405.pdf"},
		{"handouts", "handouts.pdf"},
		{"handouts.PDF", "handouts.PDF"},
		{`a/b\c:d`, "a_b_c_d.pdf"},
		{" .hidden. ", "hidden.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deriveFilename(tt.title, at), "title %q", tt.title)
	}
}

func TestConnectErrorCodes(t *testing.T) {
	tests := []struct {
		err  error
		want connect.Code
	}{
		{session.ErrNotFound, connect.CodeNotFound},
		{session.ErrMergeInProgress, connect.CodeAborted},
		{session.ErrMergeDiscarded, connect.CodeAborted},
		{&imposition.InvalidDocumentError{File: "a.pdf", Err: pdfcpu.ErrWrongPassword}, connect.CodeInvalidArgument},
		{fmt.Errorf("load: %w", pdfcpu.ErrWrongPassword), connect.CodeInvalidArgument},
		{errNoMergedOutput, connect.CodeFailedPrecondition},
		{imposition.ErrEmptyInput, connect.CodeInvalidArgument},
		{&imposition.InvalidDocumentError{File: "a.pdf", Err: errors.New("bad")}, connect.CodeInvalidArgument},
		{&imposition.InvalidLayoutError{Reason: "rows"}, connect.CodeInvalidArgument},
		{fmt.Errorf("wrapped: %w", session.ErrIndexOutOfRange), connect.CodeInvalidArgument},
		{&imposition.SerializationError{Err: errors.New("disk")}, connect.CodeInternal},
		{context.Canceled, connect.CodeCanceled},
		{errors.New("boom"), connect.CodeInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, connectError(tt.err).Code(), "%v", tt.err)
	}
}
