package agenda

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/pestebani/tonic-server/internal/platform/errors"
)

func TestStatusFromErrorMapsEveryKind(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "not found", err: apperrors.NotFound(4), code: codes.NotFound},
		{name: "already exists", err: apperrors.NameAlreadyExists("a", nil), code: codes.AlreadyExists},
		{name: "unknown", err: apperrors.Unknown(errors.New("boom")), code: codes.Internal},
		{name: "connection", err: apperrors.Connection(errors.New("refused")), code: codes.Unavailable},
		{name: "unimplemented", err: apperrors.Unimplemented(), code: codes.Unimplemented},
		{name: "empty input", err: apperrors.EmptyInput(), code: codes.InvalidArgument},
		{name: "foreign", err: errors.New("raw"), code: codes.Internal},
		{name: "canceled caller", err: apperrors.Unknown(context.Canceled), code: codes.Canceled},
		{name: "expired caller", err: apperrors.Unknown(fmt.Errorf("query: %w", context.DeadlineExceeded)), code: codes.DeadlineExceeded},
		{name: "bare deadline", err: context.DeadlineExceeded, code: codes.DeadlineExceeded},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := statusFromError(tc.err)
			if got := status.Code(err); got != tc.code {
				t.Fatalf("code = %v, want %v", got, tc.code)
			}
			if got := status.Convert(err).Message(); got != tc.err.Error() {
				t.Fatalf("message = %q, want %q", got, tc.err.Error())
			}
		})
	}
}

func TestStatusFromErrorAttachesErrorInfo(t *testing.T) {
	st := status.Convert(statusFromError(apperrors.NotFound(12)))

	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		if d, ok := detail.(*errdetails.ErrorInfo); ok {
			info = d
		}
	}
	if info == nil {
		t.Fatal("expected ErrorInfo detail")
	}
	if info.GetReason() != string(apperrors.CodeNotFound) {
		t.Fatalf("reason = %q", info.GetReason())
	}
	if info.GetDomain() != apperrors.Domain {
		t.Fatalf("domain = %q", info.GetDomain())
	}
	if info.GetMetadata()[apperrors.MetadataID] != "12" {
		t.Fatalf("metadata = %v", info.GetMetadata())
	}
}

func TestStatusFromErrorNil(t *testing.T) {
	if err := statusFromError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
