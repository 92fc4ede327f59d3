package server

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"nupmerge/internal/imposition"
	"nupmerge/internal/session"
)

var errNoMergedOutput = errors.New("no merged output yet, run Merge first")

// connectError maps package errors onto connect codes.
func connectError(err error) *connect.Error {
	var (
		invalidDoc    *imposition.InvalidDocumentError
		invalidLayout *imposition.InvalidLayoutError
		serialization *imposition.SerializationError
	)
	switch {
	case errors.Is(err, pdfcpu.ErrWrongPassword):
		if errors.As(err, &invalidDoc) {
			return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("wrong password for %q", invalidDoc.File))
		}
		return connect.NewError(connect.CodeInvalidArgument, errors.New("wrong PDF password"))
	case errors.Is(err, session.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, session.ErrMergeInProgress),
		errors.Is(err, session.ErrMergeDiscarded):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, errNoMergedOutput):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, imposition.ErrEmptyInput),
		errors.Is(err, session.ErrNoPDFFiles),
		errors.Is(err, session.ErrIndexOutOfRange),
		errors.Is(err, session.ErrInvalidPermutation),
		errors.As(err, &invalidDoc),
		errors.As(err, &invalidLayout):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.As(err, &serialization):
		return connect.NewError(connect.CodeInternal, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
