package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/peerreview/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a wallet address, an optional education
// string and a password, and attempts to create a new account.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	wallet, err := getSimpleText(a.reader, "Enter wallet address", os.Stdout)
	if err != nil {
		return err
	}

	education, err := getSimpleText(a.reader, "Enter education (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, wallet, education, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate against
// the server. On success it remembers the wallet and switches to ModeOnline.
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	wallet, err := getSimpleText(a.reader, "Enter wallet address", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, wallet, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		a.setMode(ModeDisabled)
		return err
	}

	log.Printf("Login successful")
	a.wallet = wallet
	a.setMode(ModeOnline)
	return nil
}

// Logout forgets the current wallet. Tokens die with the session.
func (a *App) Logout(ctx context.Context) error {
	a.wallet = ""
	return nil
}
