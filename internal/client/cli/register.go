package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dpetrov/authms/internal/common"
	"github.com/dpetrov/authms/internal/shared"
)

func (a *App) Register(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

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

	session, err := a.client.Register(ctx, name, email, string(password))
	shared.WipeByteArray(password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			log.Println("An account with this email already exists")
		} else {
			log.Printf("Registration failed: %v", err)
		}
		return
	}

	a.session = session
	log.Printf("Registered as %s", session.User.Email)
}
