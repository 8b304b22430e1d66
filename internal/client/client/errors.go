package client

import (
	"fmt"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorFromStatus translates a gRPC status returned by the verifier back
// into the error kinds the rest of the client works with.
func errorFromStatus(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrInvalidArgument, st.Message())
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", common.ErrInvalidProof, st.Message())
	default:
		return fmt.Errorf("%w: %s", common.ErrInternal, st.Message())
	}
}
