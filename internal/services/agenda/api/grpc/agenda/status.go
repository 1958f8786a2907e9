package agenda

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/pestebani/tonic-server/internal/platform/errors"
)

// grpcCode maps an error kind to the status code clients see.
func grpcCode(code apperrors.Code) codes.Code {
	switch code {
	case apperrors.CodeNotFound:
		return codes.NotFound
	case apperrors.CodeAlreadyExists:
		return codes.AlreadyExists
	case apperrors.CodeConnection:
		return codes.Unavailable
	case apperrors.CodeUnimplemented:
		return codes.Unimplemented
	case apperrors.CodeEmptyInput:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// statusFromError converts a storage or mapping error into a gRPC status
// carrying an ErrorInfo detail. Errors outside the taxonomy are Internal.
// A cancelled or expired caller context wins over the taxonomy.
func statusFromError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(grpcCode(appErr.Code), appErr.Message)
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   string(appErr.Code),
		Domain:   apperrors.Domain,
		Metadata: appErr.Metadata,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}
