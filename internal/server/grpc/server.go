package grpc

import (
	"context"
	"math/big"
	"net"

	"github.com/dmitrijs2005/zkpauth/internal/logging"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"google.golang.org/grpc"
)

// authSvc is the slice of the coordinator the transport needs.
type authSvc interface {
	Register(ctx context.Context, name string, y1, y2 *big.Int) error
	CreateChallenge(ctx context.Context, name string, r1, r2 *big.Int) (string, *big.Int, error)
	VerifyAnswer(ctx context.Context, authID string, s *big.Int) (string, error)
	Params() *zkp.Params
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, svc authSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    svc,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	// registers service
	pb.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
