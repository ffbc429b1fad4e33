package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/client/services"
	"github.com/dmitrijs2005/heritagewatch/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readCredentials prompts for the login form and checks it locally. Nothing
// is sent when a field is empty or the address is malformed.
func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}

	if err := (models.Credentials{Email: email, Password: string(password)}).Validate(); err != nil {
		common.WipeByteArray(password)
		fmt.Fprintln(a.out, formMessage(err))
		return "", nil, err
	}
	return email, password, nil
}

func formMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyField):
		return services.EmptyFieldMessage
	case errors.Is(err, models.ErrInvalidEmail):
		return services.InvalidEmailMessage
	}
	return err.Error()
}

// Register creates an account; it does not log in.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.Register(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Registration failed.")
		return err
	}

	fmt.Fprintln(a.out, "Success! You can log in now.")
	return nil
}

// Login authenticates and loads the report list. A rejected password is
// reported by the session manager through Alert.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.sessions.Login(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	_, _ = a.reports.FetchReportList(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.drafts.Discard()
	a.sessions.Logout(ctx)
	return nil
}
