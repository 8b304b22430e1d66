// Package cli implements the interactive prover CLI: a small REPL with
// register and login commands on top of the prover service.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/client/config"
	"github.com/dmitrijs2005/zkpauth/internal/client/services"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// proverService is the command surface the CLI needs. The real
// services.ProverService satisfies it; tests provide a stub.
type proverService interface {
	Register(ctx context.Context, user string, password []byte) error
	Login(ctx context.Context, user string, password []byte) (string, error)
}

type App struct {
	config  *config.Config
	prover  proverService
	closeFn func() error
	reader  *bufio.Reader
	out     io.Writer

	userName  string
	sessionID string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	svc := services.NewProverService(apiClient, zkp.DefaultParams())

	return &App{
		config:  c,
		prover:  svc,
		closeFn: apiClient.Close,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if a.closeFn != nil {
		defer a.closeFn()
	}
	a.repl(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessionID != ""
}

// requestCtx bounds one server round trip with the configured timeout.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
