package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// loggingInterceptor records every unary call with its duration and outcome.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	started := time.Now()

	resp, err := handler(ctx, req)

	if err != nil {
		s.logger.Error(ctx, "request failed", "method", info.FullMethod, "duration", time.Since(started), "error", err.Error())
	} else {
		s.logger.Info(ctx, "request handled", "method", info.FullMethod, "duration", time.Since(started))
	}

	return resp, err
}
