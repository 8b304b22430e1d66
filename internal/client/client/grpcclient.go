// Package client provides the gRPC transport used by the prover CLI to
// talk to the verifier.
package client

import (
	"context"

	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is the transport-level API the prover service works against.
// All integer arguments travel as big-endian unsigned byte strings.
type Client interface {
	Register(ctx context.Context, user string, y1, y2 []byte) error
	CreateChallenge(ctx context.Context, user string, r1, r2 []byte) (authID string, c []byte, err error)
	VerifyAnswer(ctx context.Context, authID string, s []byte) (sessionID string, err error)
	Close() error
}

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.AuthClient
}

func NewGRPCClient(endpointAddr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpointAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn, client: pb.NewAuthClient(conn)}, nil
}

func (c *GRPCClient) Register(ctx context.Context, user string, y1, y2 []byte) error {
	_, err := c.client.Register(ctx, &pb.RegisterRequest{User: user, Y1: y1, Y2: y2})
	return errorFromStatus(err)
}

func (c *GRPCClient) CreateChallenge(ctx context.Context, user string, r1, r2 []byte) (string, []byte, error) {
	resp, err := c.client.CreateAuthenticationChallenge(ctx, &pb.AuthenticationChallengeRequest{
		User: user,
		R1:   r1,
		R2:   r2,
	})
	if err != nil {
		return "", nil, errorFromStatus(err)
	}
	return resp.GetAuthId(), resp.GetC(), nil
}

func (c *GRPCClient) VerifyAnswer(ctx context.Context, authID string, s []byte) (string, error) {
	resp, err := c.client.VerifyAuthentication(ctx, &pb.AuthenticationAnswerRequest{AuthId: authID, S: s})
	if err != nil {
		return "", errorFromStatus(err)
	}
	return resp.GetSessionId(), nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
