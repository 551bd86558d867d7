package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/talentumplus/talentum/internal/client/models"
	"github.com/talentumplus/talentum/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates the account. It does not
// establish a session; the user logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	nombre, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	rol, err := getSimpleText(a.reader, "Enter role (candidato/empresa, empty for candidato)", os.Stdout)
	if err != nil {
		return err
	}

	a.Navigate(models.ViewRegister)

	if _, err := a.session.Register(ctx, email, string(password), nombre, rol); err != nil {
		log.Printf("Registration unsuccessfull: %s\n", err.Error())
		return err
	}

	fmt.Println("Success! Now log in with your new account.")
	a.Navigate(models.ViewLogin)
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// store persists the token and the CLI moves to the dashboard view.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessfull: %s\n", err.Error())
		return err
	}

	log.Printf("Login successfull\n")
	a.Navigate(models.ViewDashboard)
	return nil
}

// Logout clears the session; the store navigates back to the login view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// Me prints the identity behind the current session.
func (a *App) Me(ctx context.Context) error {
	if !a.requireRole("") {
		return nil
	}
	user := a.session.User()
	fmt.Printf("%s <%s> [%s]\n", user.Nombre, user.Email, user.Rol)
	return nil
}
