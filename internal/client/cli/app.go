// Package cli is a small interactive client for the auth service, meant for
// development and manual poking: register an account, log in, and check the
// session token the service hands back.
package cli

import (
	"bufio"
	"os"

	"github.com/dpetrov/authms/internal/client/client"
	"github.com/dpetrov/authms/internal/client/config"
)

type App struct {
	config  *config.Config
	client  *client.AuthClient
	session *client.Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.New(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}
