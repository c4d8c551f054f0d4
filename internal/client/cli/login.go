package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dpetrov/authms/internal/common"
	"github.com/dpetrov/authms/internal/shared"
)

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	session, err := a.client.Login(ctx, email, string(password))
	shared.WipeByteArray(password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			log.Println("Invalid email or password")
		} else {
			log.Printf("Login failed: %v", err)
		}
		return
	}

	a.session = session
	log.Printf("Logged in as %s", session.User.Email)
}
