package grpc

import (
	"context"
	"errors"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError maps the closed error taxonomy onto gRPC codes. Every
// kind is matched explicitly; anything that escapes the taxonomy is a bug
// and surfaces as Internal without detail.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidProof):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrInternal):
		return status.Error(codes.Internal, "internal error")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) parseGroupValue(b []byte, max *big.Int, field string) (*big.Int, error) {
	v, err := zkp.ParseBytes(b, max)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: %s", field, err.Error())
	}
	return v, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "user", req.GetUser())

	if req.GetUser() == "" {
		return nil, status.Error(codes.InvalidArgument, "user must not be empty")
	}

	zp := s.auth.Params()
	y1, err := s.parseGroupValue(req.GetY1(), zp.P, "y1")
	if err != nil {
		return nil, err
	}
	y2, err := s.parseGroupValue(req.GetY2(), zp.P, "y2")
	if err != nil {
		return nil, err
	}

	if err := s.auth.Register(ctx, req.GetUser(), y1, y2); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Registered", "user", req.GetUser())
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) CreateAuthenticationChallenge(ctx context.Context, req *pb.AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {

	s.logger.Info(ctx, "Challenge request", "user", req.GetUser())

	zp := s.auth.Params()
	r1, err := s.parseGroupValue(req.GetR1(), zp.P, "r1")
	if err != nil {
		return nil, err
	}
	r2, err := s.parseGroupValue(req.GetR2(), zp.P, "r2")
	if err != nil {
		return nil, err
	}

	authID, c, err := s.auth.CreateChallenge(ctx, req.GetUser(), r1, r2)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.AuthenticationChallengeResponse{
		AuthId: authID,
		C:      zkp.EncodeBytes(c),
	}, nil
}

func (s *GRPCServer) VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {

	zp := s.auth.Params()
	answer, err := s.parseGroupValue(req.GetS(), zp.Q, "s")
	if err != nil {
		return nil, err
	}

	sessionID, err := s.auth.VerifyAnswer(ctx, req.GetAuthId(), answer)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Proof verified", "auth_id", req.GetAuthId())
	return &pb.AuthenticationAnswerResponse{SessionId: sessionID}, nil
}
