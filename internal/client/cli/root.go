package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.User.Email)
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	log.Println("authms CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("authms %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: whoami, ping, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, ping, exit")
			}

		case "register":
			a.Register(ctx)

		case "login":
			a.Login(ctx)

		case "whoami":
			a.WhoAmI(ctx)

		case "logout":
			a.session = nil
			log.Println("Logged out")

		case "ping":
			if err := a.client.Ping(ctx); err != nil {
				log.Printf("server unreachable: %v", err)
			} else {
				log.Println("OK")
			}

		case "exit":
			return

		default:
			fmt.Println("Unknown command, type 'help'")
		}
	}
}
