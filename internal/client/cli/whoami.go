package cli

import (
	"context"
	"errors"
	"log"

	"github.com/dpetrov/authms/internal/common"
)

// WhoAmI verifies the current session token against the server and keeps the
// renewed token the service returns.
func (a *App) WhoAmI(ctx context.Context) {

	if !a.isLoggedIn() {
		log.Println("Not logged in")
		return
	}

	session, err := a.client.VerifyToken(ctx, a.session.Token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			log.Println("Session expired, please log in again")
		} else {
			log.Printf("Session check failed: %v", err)
		}
		a.session = nil
		return
	}

	a.session = session
	log.Printf("You are %s <%s>", session.User.Name, session.User.Email)
}
