// Package cli implements the interactive Cookenu client: a small REPL over
// the HTTP API for browsing users and recipes and managing your own.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"cookenu/internal/client/api"
	"cookenu/internal/client/config"
)

type App struct {
	config *config.Config
	api    *api.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.New(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

// Run starts the REPL on stdin and returns when the user exits or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "logged in"
	}
	return "anonymous"
}
