// Package server exposes merge sessions over connect RPC, plus a plain HTTP
// download route for the merged PDF.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"nupmerge/gen/go/nupmerge"
	"nupmerge/gen/go/nupmergeconnect"
	"nupmerge/internal/config"
	"nupmerge/internal/imposition"
	"nupmerge/internal/outputstore"
	"nupmerge/internal/pdfdoc"
	"nupmerge/internal/session"
)

var _ nupmergeconnect.MergeServiceHandler = (*MergeService)(nil)

type MergeService struct {
	cfg      *config.Config
	sessions *session.Registry
	engine   *imposition.Engine
	pdf      pdfdoc.Service
	store    outputstore.Store
	logger   *slog.Logger
	now      func() time.Time
}

func NewMergeService(cfg *config.Config, sessions *session.Registry, engine *imposition.Engine, pdf pdfdoc.Service, store outputstore.Store, logger *slog.Logger) *MergeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MergeService{
		cfg:      cfg,
		sessions: sessions,
		engine:   engine,
		pdf:      pdf,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

func fileInfos(files []imposition.SourceFile) []*nupmerge.FileInfo {
	infos := make([]*nupmerge.FileInfo, len(files))
	for i, f := range files {
		infos[i] = fileInfo(i, f)
	}
	return infos
}

func fileInfo(i int, f imposition.SourceFile) *nupmerge.FileInfo {
	return &nupmerge.FileInfo{
		Index:     int32(i),
		Id:        f.ID,
		Name:      f.Name,
		Size:      f.Size,
		SizeLabel: session.FormatSize(f.Size),
	}
}

func pageInfos(pages []imposition.PagePreview) []*nupmerge.PageInfo {
	infos := make([]*nupmerge.PageInfo, len(pages))
	for i, p := range pages {
		infos[i] = &nupmerge.PageInfo{Number: int32(p.Number), Width: p.Width, Height: p.Height, Label: p.Label()}
	}
	return infos
}

func downloadURL(sessionID string) string {
	return "/download/" + sessionID
}

func (s *MergeService) CreateSession(
	ctx context.Context,
	req *connect.Request[nupmerge.CreateSessionRequest],
) (*connect.Response[nupmerge.CreateSessionResponse], error) {
	sess := s.sessions.Create()
	s.logger.Info("session created", "session", sess.ID, "live", s.sessions.Len())
	return connect.NewResponse(&nupmerge.CreateSessionResponse{SessionId: sess.ID}), nil
}

func (s *MergeService) AddFiles(
	ctx context.Context,
	req *connect.Request[nupmerge.AddFilesRequest],
) (*connect.Response[nupmerge.AddFilesResponse], error) {
	sess, err := s.sessions.Get(req.Msg.GetSessionId())
	if err != nil {
		return nil, connectError(err)
	}

	uploads := make([]session.Upload, len(req.Msg.GetFiles()))
	for i, f := range req.Msg.GetFiles() {
		uploads[i] = session.Upload{Name: f.GetName(), ContentType: f.GetContentType(), Data: f.GetData(), Password: f.GetPassword()}
	}
	added, rejected, err := sess.AddUploads(uploads)
	s.logger.Info("AddFiles request", "session", sess.ID, "files", len(uploads), "added", len(added), "rejected", len(rejected))
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&nupmerge.AddFilesResponse{
		Message:  fmt.Sprintf("added %d PDF file(s)", len(added)),
		Rejected: rejected,
		Files:    fileInfos(sess.Files()),
	}), nil
}

func (s *MergeService) ListFiles(
	ctx context.Context,
	req *connect.Request[nupmerge.ListFilesRequest],
) (*connect.Response[nupmerge.ListFilesResponse], error) {
	sess, err := s.sessions.Get(req.Msg.GetSessionId())
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&nupmerge.ListFilesResponse{Files: fileInfos(sess.Files())}), nil
}

func (s *MergeService) MoveFile(
	ctx context.Context,
	req *connect.Request[nupmerge.MoveFileRequest],
) (*connect.Response[nupmerge.MoveFileResponse], error) {
	sess, err := s.sessions.Get(req.Msg.GetSessionId())
	if err != nil {
		return nil, connectError(err)
	}

	index := int(req.Msg.GetIndex())
	switch req.Msg.GetDirection() {
	case "up":
		sess.MoveUp(index)
	case "down":
		sess.MoveDown(index)
	case "":
		if req.Msg.To == nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("move needs a direction or a target index"))
		}
		if err := sess.Move(index, int(req.Msg.GetTo())); err != nil {
			return nil, connectError(err)
		}
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown direction %q", req.Msg.GetDirection()))
	}
	return connect.NewResponse(&nupmerge.MoveFileResponse{Files: fileInfos(sess.Files())}), nil
}

func (s *MergeService) RemoveFile(
	ctx context.Context,
	req *connect.Request[nupmerge.RemoveFileRequest],
) (*connect.Response[nupmerge.RemoveFileResponse], error) {
	sess, err := s.sessions.Get(req.Msg.GetSessionId())
	if err != nil {
		return nil, connectError(err)
	}
	index := int(req.Msg.GetIndex())
	removed, err := sess.Remove(index)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&nupmerge.RemoveFileResponse{
		Removed: fileInfo(index, removed),
		Files:   fileInfos(sess.Files()),
	}), nil
}

func (s *MergeService) ReorderFiles(
	ctx context.Context,
	req *connect.Request[nupmerge.ReorderFilesRequest],
) (*connect.Response[nupmerge.ReorderFilesResponse], error) {
	sess, err := s.sessions.Get(req.Msg.GetSessionId())
	if err != nil {
		return nil, connectError(err)
	}
	order := make([]int, len(req.Msg.GetOrder()))
	for i, idx := range req.Msg.GetOrder() {
		order[i] = int(idx)
	}
	if err := sess.ReorderTo(order); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&nupmerge.ReorderFilesResponse{Files: fileInfos(sess.Files())}), nil
}

func (s *MergeService) ClearSession(
	ctx context.Context,
	req *connect.Request[nupmerge.ClearSessionRequest],
) (*connect.Response[nupmerge.ClearSessionResponse], error) {
	sess, err := s.sessions.Get(req.Msg.GetSessionId())
	if err != nil {
		return nil, connectError(err)
	}
	sess.Clear()
	if err := s.store.Delete(ctx, sess.ID); err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&nupmerge.ClearSessionResponse{}), nil
}

// Merge streams progress events while the session's files are imposed, then a
// final event carrying the result. The merged PDF is kept in the output store
// for Preview and the download route.
func (s *MergeService) Merge(
	ctx context.Context,
	req *connect.Request[nupmerge.MergeRequest],
	stream *connect.ServerStream[nupmerge.MergeEvent],
) error {
	msg := req.Msg
	sess, err := s.sessions.Get(msg.GetSessionId())
	if err != nil {
		return connectError(err)
	}
	layout, err := s.cfg.Resolve(config.LayoutRequest{
		Preset:      msg.GetPreset(),
		Paper:       msg.GetPaper(),
		Orientation: msg.GetOrientation(),
		Rows:        int(msg.GetRows()),
		Cols:        int(msg.GetCols()),
		Padding:     msg.Padding,
	})
	if err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	s.logger.Info("Merge request",
		"session", sess.ID,
		"files", sess.Len(),
		"paper", layout.Paper.String(),
		"rows", layout.Grid.Rows,
		"cols", layout.Grid.Cols,
		"padding", layout.Grid.Padding,
	)

	var sendErr error
	progress := imposition.ProgressFunc(func(message string, percent int) {
		s.logger.Debug("merge progress", "session", sess.ID, "message", message, "percent", percent)
		// 100% goes out with the result.
		if sendErr == nil && percent < 100 {
			sendErr = stream.Send(&nupmerge.MergeEvent{Message: message, Percent: int32(percent)})
		}
	})

	start := s.now()
	filename := deriveFilename(msg.GetTitle(), start)
	merged, err := sess.MergeAndPublish(ctx, s.engine, layout.Grid, layout.Paper, progress, func(merged *imposition.MergedDocument) error {
		return s.store.Put(ctx, sess.ID, outputstore.Entry{
			Data:      merged.Data,
			PageCount: merged.PageCount,
			Filename:  filename,
			CreatedAt: start,
		})
	})
	if err != nil {
		s.logger.Warn("merge failed", "session", sess.ID, "error", err)
		return connectError(err)
	}
	if sendErr != nil {
		return sendErr
	}

	pages, err := imposition.Preview(s.pdf, merged.Data)
	if err != nil {
		return connectError(err)
	}
	s.logger.Info("merge finished", "session", sess.ID, "pages", merged.PageCount, "bytes", len(merged.Data), "took", s.now().Sub(start))

	return stream.Send(&nupmerge.MergeEvent{
		Message: "Done!",
		Percent: 100,
		Result: &nupmerge.MergeResult{
			Filename:    filename,
			DownloadUrl: downloadURL(sess.ID),
			PageCount:   int32(merged.PageCount),
			Size:        int64(len(merged.Data)),
			SizeLabel:   session.FormatSize(int64(len(merged.Data))),
			Pages:       pageInfos(pages),
		},
	})
}

func (s *MergeService) Preview(
	ctx context.Context,
	req *connect.Request[nupmerge.PreviewRequest],
) (*connect.Response[nupmerge.PreviewResponse], error) {
	entry, found, err := s.store.Get(ctx, req.Msg.GetSessionId())
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if !found {
		return nil, connectError(errNoMergedOutput)
	}
	pages, err := imposition.Preview(s.pdf, entry.Data)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&nupmerge.PreviewResponse{Filename: entry.Filename, Pages: pageInfos(pages)}), nil
}

func (s *MergeService) ListPresets(
	ctx context.Context,
	req *connect.Request[nupmerge.ListPresetsRequest],
) (*connect.Response[nupmerge.ListPresetsResponse], error) {
	res := &nupmerge.ListPresetsResponse{
		Paper:       string(s.cfg.Defaults.Paper.Size),
		Orientation: string(s.cfg.Defaults.Paper.Orientation),
		Rows:        int32(s.cfg.Defaults.Grid.Rows),
		Cols:        int32(s.cfg.Defaults.Grid.Cols),
		Padding:     s.cfg.Defaults.Grid.Padding,
	}
	for _, p := range s.cfg.Presets {
		res.Presets = append(res.Presets, &nupmerge.PresetInfo{
			Name:        p.Name,
			Rows:        int32(p.Rows),
			Cols:        int32(p.Cols),
			Orientation: string(p.Orientation),
		})
	}
	for _, size := range imposition.PaperSizes() {
		res.PaperSizes = append(res.PaperSizes, string(size))
	}
	return connect.NewResponse(res), nil
}

// ExpireIdle drops sessions idle for longer than the configured limit along
// with their stored output.
func (s *MergeService) ExpireIdle(ctx context.Context) {
	for _, id := range s.sessions.Expire(s.cfg.SessionIdle) {
		if err := s.store.Delete(ctx, id); err != nil {
			s.logger.Warn("failed to drop merged output", "session", id, "error", err)
			continue
		}
		s.logger.Info("session expired", "session", id)
	}
}

// RunJanitor calls ExpireIdle every interval until ctx is done.
func (s *MergeService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ExpireIdle(ctx)
		}
	}
}
