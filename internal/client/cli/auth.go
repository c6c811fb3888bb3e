package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/weatherdesk/internal/client/forms"
	"github.com/dmitrijs2005/weatherdesk/internal/client/models"
	"github.com/dmitrijs2005/weatherdesk/internal/client/session"
	"github.com/dmitrijs2005/weatherdesk/internal/client/state"
	"github.com/dmitrijs2005/weatherdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in. On success the login scope is
// closed and the home screen opens, which starts loading the user list.
// Failures stay on the login screen with an alert.
func (a *App) Login(ctx context.Context) error {
	a.screen = ScreenLogin

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	done, err := a.auth.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		a.reportStartError(err, loginAlert)
		return nil
	}

	a.println("Signing in...")
	if err := a.await(ctx, done); err != nil {
		return err
	}

	snap := a.auth.LoginState()
	if snap.Status != state.Success {
		a.log.Info(ctx, "login failed", "error", snap.Err)
		a.println(loginAlert(snap.Err))
		return nil
	}

	acc := snap.Data
	a.println("Welcome, " + acc.DisplayName() + "!")
	if !acc.ExpiresAt.IsZero() {
		a.println("Session valid until " + acc.ExpiresAt.Local().Format("15:04 Jan 02"))
	}

	a.auth.Close()
	a.auth.Wait()
	a.auth = nil

	a.home = session.NewHome(ctx, a.client, a.log, acc)
	a.screen = ScreenHome
	return nil
}

// Signup walks through forms.SignupFields and posts the profile. On success
// it goes back to the login screen; otherwise the signup screen stays.
func (a *App) Signup(ctx context.Context) error {
	a.screen = ScreenSignup
	a.println("Create an account (* marks required fields)")

	values := make(map[string]string, len(forms.SignupFields))
	for _, f := range forms.SignupFields {
		prompt := f.Label + " [" + f.Placeholder + "]"

		if f.Kind == forms.KindPassword {
			pw, err := getPassword(a.reader, f.Label, a.out)
			if err != nil {
				return err
			}
			values[f.ID] = string(pw)
			common.WipeByteArray(pw)
			continue
		}

		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		values[f.ID] = v
	}

	done, err := a.auth.Signup(ctx, values)
	if err != nil {
		a.reportStartError(err, signupAlert)
		return nil
	}

	a.println("Creating account...")
	if err := a.await(ctx, done); err != nil {
		return err
	}

	snap := a.auth.SignupState()
	if snap.Status != state.Success {
		a.log.Info(ctx, "signup failed", "error", snap.Err)
		a.println(signupAlert(snap.Err))
		return nil
	}

	a.log.Debug(ctx, "account created", "id", snap.Data)
	a.println(alert{Title: "Success", Body: "Account created successfully!"})
	a.screen = ScreenLogin
	return nil
}

// Back leaves the signup screen.
func (a *App) Back(context.Context) error {
	a.screen = ScreenLogin
	return nil
}

// Logout closes the home scope, dropping any result still in flight, and
// returns to a fresh login screen.
func (a *App) Logout(ctx context.Context) error {
	if a.home != nil {
		a.home.Close()
		a.home.Wait()
		a.home = nil
	}
	a.auth = session.NewAuth(a.client, a.log)
	a.screen = ScreenLogin
	a.log.Debug(ctx, "logged out")
	a.println("Logged out")
	return nil
}

// reportStartError explains why a request was not started.
func (a *App) reportStartError(err error, toAlert func(error) alert) {
	if errors.Is(err, state.ErrInFlight) {
		a.println("Please wait, a request is already in progress")
		return
	}
	a.println(toAlert(err))
}
