package session

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/dmitrijs2005/weatherdesk/internal/client/client"
	"github.com/dmitrijs2005/weatherdesk/internal/client/forms"
	"github.com/dmitrijs2005/weatherdesk/internal/client/models"
	"github.com/dmitrijs2005/weatherdesk/internal/client/state"
	"github.com/dmitrijs2005/weatherdesk/internal/common"
	"github.com/dmitrijs2005/weatherdesk/internal/logging"
)

// Auth is the state behind the login and signup screens.
type Auth struct {
	client client.Client
	log    logging.Logger

	login  state.RequestState[*models.AuthSession]
	signup state.RequestState[int]

	wg conc.WaitGroup
}

func NewAuth(c client.Client, log logging.Logger) *Auth {
	return &Auth{client: c, log: log.With("scope", "auth")}
}

// Login starts a login attempt. Empty username or password fail with
// common.ErrValidation before anything changes. The password is copied, so
// the caller may wipe creds as soon as Login returns.
func (a *Auth) Login(ctx context.Context, creds models.Credentials) (<-chan struct{}, error) {
	if creds.Username == "" || len(creds.Password) == 0 {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	username := creds.Username
	password := append([]byte(nil), creds.Password...)

	return launch(ctx, &a.wg, a.log, "login", &a.login, func(ctx context.Context) (*models.AuthSession, error) {
		defer common.WipeByteArray(password)
		return a.client.Login(ctx, models.Credentials{Username: username, Password: password})
	})
}

// Signup validates the collected form values and, if they pass, posts the
// resulting profile. Validation failures are returned as *forms.FieldError.
func (a *Auth) Signup(ctx context.Context, values map[string]string) (<-chan struct{}, error) {
	profile, err := forms.ParseSignup(values)
	if err != nil {
		return nil, err
	}

	return launch(ctx, &a.wg, a.log, "signup", &a.signup, func(ctx context.Context) (int, error) {
		return a.client.Signup(ctx, profile)
	})
}

func (a *Auth) LoginState() state.Snapshot[*models.AuthSession] {
	return a.login.Snapshot()
}

// SignupState carries the created user id on success.
func (a *Auth) SignupState() state.Snapshot[int] {
	return a.signup.Snapshot()
}

func (a *Auth) Close() {
	a.login.Close()
	a.signup.Close()
}

func (a *Auth) Wait() {
	a.wg.Wait()
}
