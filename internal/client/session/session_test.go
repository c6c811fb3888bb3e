package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/weatherdesk/internal/client/forms"
	"github.com/dmitrijs2005/weatherdesk/internal/client/models"
	"github.com/dmitrijs2005/weatherdesk/internal/client/state"
	"github.com/dmitrijs2005/weatherdesk/internal/common"
	"github.com/dmitrijs2005/weatherdesk/internal/logging"
)

// ---- fake gateway ----

type weatherResult struct {
	report *models.WeatherReport
	err    error
}

// fakeClient implements client.Client. When a gate channel is set the
// corresponding call blocks until the test sends on it.
type fakeClient struct {
	mu sync.Mutex

	loginCalls   atomic.Int32
	signupCalls  atomic.Int32
	usersCalls   atomic.Int32
	weatherCalls atomic.Int32

	lastCreds   models.Credentials
	lastProfile models.SignupProfile
	lastCity    string

	loginRet *models.AuthSession
	loginErr error

	signupID  int
	signupErr error

	users     []models.User
	usersErr  error
	usersGate chan struct{}

	weather     map[string]weatherResult
	weatherGate chan struct{}
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (*models.AuthSession, error) {
	f.loginCalls.Add(1)
	f.mu.Lock()
	f.lastCreds = models.Credentials{Username: creds.Username, Password: append([]byte(nil), creds.Password...)}
	f.mu.Unlock()
	return f.loginRet, f.loginErr
}

func (f *fakeClient) Signup(_ context.Context, p models.SignupProfile) (int, error) {
	f.signupCalls.Add(1)
	f.mu.Lock()
	f.lastProfile = p
	f.mu.Unlock()
	return f.signupID, f.signupErr
}

func (f *fakeClient) Users(_ context.Context) ([]models.User, error) {
	f.usersCalls.Add(1)
	if f.usersGate != nil {
		<-f.usersGate
	}
	return f.users, f.usersErr
}

func (f *fakeClient) Weather(_ context.Context, city string) (*models.WeatherReport, error) {
	f.weatherCalls.Add(1)
	f.mu.Lock()
	f.lastCity = city
	f.mu.Unlock()
	if f.weatherGate != nil {
		<-f.weatherGate
	}
	r, ok := f.weather[city]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r.report, r.err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("request did not finish")
	}
}

func threeUsers() []models.User {
	return []models.User{
		{ID: 1, FirstName: "Emily", LastName: "Johnson", Age: 28, Gender: "female"},
		{ID: 2, FirstName: "Daniel", LastName: "Cook", Age: 31, Gender: "male"},
		{ID: 3, FirstName: "Sophia", LastName: "Brown", Age: 42, Gender: "female"},
	}
}

func parisReport() *models.WeatherReport {
	return &models.WeatherReport{
		CityName: "Paris", TemperatureCelsius: 18.2, ConditionDescription: "clear sky",
		HumidityPercent: 60, WindSpeed: 3.1,
	}
}

// ---- Auth ----

func TestAuth_LoginScenario(t *testing.T) {
	fc := &fakeClient{loginRet: &models.AuthSession{UserID: 1, Username: "emilys"}}
	a := NewAuth(fc, testLogger())
	defer a.Wait()

	pw := []byte("emilyspass")
	done, err := a.Login(context.Background(), models.Credentials{Username: "emilys", Password: pw})
	require.NoError(t, err)
	common.WipeByteArray(pw)
	wait(t, done)

	snap := a.LoginState()
	require.Equal(t, state.Success, snap.Status)
	assert.Equal(t, "emilys", snap.Data.Username)

	assert.Equal(t, "emilys", fc.lastCreds.Username)
	assert.Equal(t, "emilyspass", string(fc.lastCreds.Password), "caller wiping must not affect the request")
}

func TestAuth_LoginValidation(t *testing.T) {
	fc := &fakeClient{}
	a := NewAuth(fc, testLogger())

	tests := []models.Credentials{
		{Username: "", Password: []byte("p")},
		{Username: "emilys", Password: nil},
		{},
	}
	for _, creds := range tests {
		done, err := a.Login(context.Background(), creds)
		require.ErrorIs(t, err, common.ErrValidation)
		assert.Nil(t, done)
	}

	assert.Equal(t, state.Idle, a.LoginState().Status)
	assert.Zero(t, fc.loginCalls.Load())
}

func TestAuth_LoginRejected(t *testing.T) {
	fc := &fakeClient{loginErr: common.ErrInvalidCredentials}
	a := NewAuth(fc, testLogger())

	done, err := a.Login(context.Background(), models.Credentials{Username: "emilys", Password: []byte("bad")})
	require.NoError(t, err)
	wait(t, done)

	snap := a.LoginState()
	assert.Equal(t, state.Failure, snap.Status)
	assert.ErrorIs(t, snap.Err, common.ErrInvalidCredentials)
	assert.Nil(t, snap.Data)
}

func TestAuth_Signup(t *testing.T) {
	fc := &fakeClient{signupID: 209}
	a := NewAuth(fc, testLogger())

	done, err := a.Signup(context.Background(), map[string]string{
		forms.FieldFirstName: "Ali",
		forms.FieldLastName:  "Raza",
		forms.FieldUsername:  "aliraza",
		forms.FieldPassword:  "pw",
		forms.FieldAge:       "27",
	})
	require.NoError(t, err)
	wait(t, done)

	snap := a.SignupState()
	require.Equal(t, state.Success, snap.Status)
	assert.Equal(t, 209, snap.Data)
	assert.Equal(t, 27, fc.lastProfile.Age)
}

func TestAuth_SignupValidationBlocksNetwork(t *testing.T) {
	fc := &fakeClient{}
	a := NewAuth(fc, testLogger())

	_, err := a.Signup(context.Background(), map[string]string{
		forms.FieldFirstName: "Ali",
		forms.FieldLastName:  "Raza",
		forms.FieldUsername:  "aliraza",
		forms.FieldPassword:  "pw",
		forms.FieldAge:       "abc",
	})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, state.Idle, a.SignupState().Status)
	assert.Zero(t, fc.signupCalls.Load())
}

func TestAuth_CloseDropsLateLogin(t *testing.T) {
	gate := make(chan struct{})
	fc := &blockingLogin{fakeClient: &fakeClient{loginRet: &models.AuthSession{Username: "emilys"}}, gate: gate}
	a := NewAuth(fc, testLogger())

	done, err := a.Login(context.Background(), models.Credentials{Username: "emilys", Password: []byte("emilyspass")})
	require.NoError(t, err)

	a.Close()
	close(gate)
	wait(t, done)
	a.Wait()

	assert.Equal(t, state.Loading, a.LoginState().Status, "outcome after teardown must not be applied")
}

type blockingLogin struct {
	*fakeClient
	gate chan struct{}
}

func (b *blockingLogin) Login(ctx context.Context, creds models.Credentials) (*models.AuthSession, error) {
	<-b.gate
	return b.fakeClient.Login(ctx, creds)
}

// ---- Home ----

func newHome(t *testing.T, fc *fakeClient) *Home {
	t.Helper()
	h := NewHome(context.Background(), fc, testLogger(), &models.AuthSession{Username: "emilys"})
	t.Cleanup(func() {
		h.Close()
		h.Wait()
	})
	return h
}

func TestHome_FetchesUsersOnce(t *testing.T) {
	fc := &fakeClient{users: threeUsers()}
	h := newHome(t, fc)
	wait(t, h.UsersLoaded())

	v := h.View()
	assert.Equal(t, state.Success, v.Users.Status)
	assert.Equal(t, threeUsers(), v.Filtered)
	assert.Equal(t, "emilys", v.Account.Username)

	h.SetQuery("em")
	h.SetQuery("")
	assert.Equal(t, int32(1), fc.usersCalls.Load())
}

func TestHome_UsersLoadingAndFailureHaveNoProjection(t *testing.T) {
	gate := make(chan struct{})
	fc := &fakeClient{usersGate: gate, usersErr: common.ErrUnavailable}
	h := newHome(t, fc)

	v := h.View()
	assert.Equal(t, state.Loading, v.Users.Status)
	assert.Nil(t, v.Filtered)

	close(gate)
	wait(t, h.UsersLoaded())

	v = h.View()
	assert.Equal(t, state.Failure, v.Users.Status)
	assert.ErrorIs(t, v.Users.Err, common.ErrUnavailable)
	assert.Nil(t, v.Filtered, "a failed fetch is not an empty list")
}

func TestHome_EmptyListIsNotFailure(t *testing.T) {
	fc := &fakeClient{users: []models.User{}}
	h := newHome(t, fc)
	wait(t, h.UsersLoaded())

	v := h.View()
	assert.Equal(t, state.Success, v.Users.Status)
	assert.NotNil(t, v.Filtered)
	assert.Empty(t, v.Filtered)
}

func TestHome_ProgressiveSearch(t *testing.T) {
	fc := &fakeClient{users: threeUsers()}
	h := newHome(t, fc)
	wait(t, h.UsersLoaded())

	afterA := h.SetQuery("a")
	assert.Equal(t, []int{2, 3}, userIDs(afterA), "Daniel and Sophia contain 'a'")

	afterAn := h.SetQuery("an")
	assert.Equal(t, []int{2}, userIDs(afterAn), "only Daniel contains 'an'")
	assert.Equal(t, "an", h.Query())
	assert.Equal(t, afterAn, h.FilteredUsers())

	assert.Empty(t, h.SetQuery("xyz"))
	assert.Equal(t, threeUsers(), h.SetQuery(""))
}

func userIDs(users []models.User) []int {
	out := make([]int, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestHome_WeatherScenarios(t *testing.T) {
	fc := &fakeClient{
		users:   threeUsers(),
		weather: map[string]weatherResult{"Paris": {report: parisReport()}},
	}
	h := newHome(t, fc)

	done, err := h.LookupWeather(context.Background(), "  Paris ")
	require.NoError(t, err)
	wait(t, done)

	snap := h.Weather()
	require.Equal(t, state.Success, snap.Status)
	assert.Equal(t, parisReport(), snap.Data)
	assert.Equal(t, 18, snap.Data.RoundedTemperature())
	assert.Equal(t, "Paris", fc.lastCity, "city is sent trimmed")

	done, err = h.LookupWeather(context.Background(), "Zzzznotacity")
	require.NoError(t, err)
	wait(t, done)

	snap = h.Weather()
	assert.Equal(t, state.Failure, snap.Status)
	assert.ErrorIs(t, snap.Err, common.ErrNotFound)
	assert.Nil(t, snap.Data, "failed lookup clears the previous report")
}

func TestHome_WeatherValidation(t *testing.T) {
	fc := &fakeClient{users: threeUsers(), weather: map[string]weatherResult{"Paris": {report: parisReport()}}}
	h := newHome(t, fc)

	done, err := h.LookupWeather(context.Background(), "Paris")
	require.NoError(t, err)
	wait(t, done)
	calls := fc.weatherCalls.Load()

	for _, city := range []string{"", " ", "\t\n"} {
		done, err := h.LookupWeather(context.Background(), city)
		require.ErrorIs(t, err, common.ErrValidation)
		assert.Nil(t, done)
	}

	assert.Equal(t, calls, fc.weatherCalls.Load(), "no network call for a blank city")
	snap := h.Weather()
	assert.Equal(t, state.Success, snap.Status, "previous state is untouched")
	assert.Equal(t, "Paris", snap.Data.CityName)
}

func TestHome_WeatherRejectsReentrantStart(t *testing.T) {
	gate := make(chan struct{})
	fc := &fakeClient{
		users:       threeUsers(),
		weather:     map[string]weatherResult{"Paris": {report: parisReport()}},
		weatherGate: gate,
	}
	h := newHome(t, fc)

	done, err := h.LookupWeather(context.Background(), "Paris")
	require.NoError(t, err)

	_, err = h.LookupWeather(context.Background(), "Rome")
	require.ErrorIs(t, err, state.ErrInFlight)
	assert.Equal(t, state.Loading, h.Weather().Status)

	close(gate)
	wait(t, done)

	assert.Equal(t, int32(1), fc.weatherCalls.Load())
	assert.Equal(t, "Paris", h.Weather().Data.CityName)
}

func TestHome_WeatherAndUsersRunConcurrently(t *testing.T) {
	usersGate := make(chan struct{})
	fc := &fakeClient{
		users:     threeUsers(),
		usersGate: usersGate,
		weather:   map[string]weatherResult{"Paris": {report: parisReport()}},
	}
	h := newHome(t, fc)

	done, err := h.LookupWeather(context.Background(), "Paris")
	require.NoError(t, err)
	wait(t, done)

	assert.Equal(t, state.Success, h.Weather().Status)
	assert.Equal(t, state.Loading, h.Users().Status)

	close(usersGate)
	wait(t, h.UsersLoaded())
	assert.Equal(t, state.Success, h.Users().Status)
}

func TestHome_CloseDropsInFlightResults(t *testing.T) {
	usersGate := make(chan struct{})
	fc := &fakeClient{users: threeUsers(), usersGate: usersGate}
	h := NewHome(context.Background(), fc, testLogger(), &models.AuthSession{})

	h.Close()
	close(usersGate)
	wait(t, h.UsersLoaded())
	h.Wait()

	assert.Equal(t, state.Loading, h.Users().Status)
	_, err := h.LookupWeather(context.Background(), "Paris")
	assert.ErrorIs(t, err, state.ErrClosed)
}
