package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// Login prompts for the email (unless given as an argument) and the
// password, then signs in. A credential mismatch is reported, not returned.
func (a *App) Login(ctx context.Context, args []string) error {
	email := strings.Join(args, " ")
	if email == "" {
		var err error
		if email, err = a.ask("Enter email"); err != nil {
			return err
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.core.Access.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Invalid email or password.")
		return nil
	}
	who, _ := a.core.Access.Identity()
	printlnFn(fmt.Sprintf("Logged in as %s (%s)", who.Email, who.Role))
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	if err := a.core.Access.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the signed-in identity and what it may do.
func (a *App) Whoami(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	who, _ := a.core.Access.Identity()
	printlnFn(fmt.Sprintf("%s  id=%s  role=%s", who.Email, who.ID, who.Role))

	var allowed []string
	for _, h := range commandHelp {
		if a.can(h.perm) {
			allowed = append(allowed, strings.Fields(h.usage)[0])
		}
	}
	printlnFn("Allowed:", strings.Join(allowed, ", "))
	return nil
}
