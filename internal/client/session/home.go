package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/dmitrijs2005/weatherdesk/internal/client/client"
	"github.com/dmitrijs2005/weatherdesk/internal/client/models"
	"github.com/dmitrijs2005/weatherdesk/internal/client/search"
	"github.com/dmitrijs2005/weatherdesk/internal/client/state"
	"github.com/dmitrijs2005/weatherdesk/internal/common"
	"github.com/dmitrijs2005/weatherdesk/internal/logging"
)

// Home is the state behind the home screen: the signed-in account, the
// weather lookup, the user list and the search box.
type Home struct {
	client  client.Client
	log     logging.Logger
	account *models.AuthSession

	weather state.RequestState[*models.WeatherReport]
	users   state.RequestState[[]models.User]

	mu    sync.Mutex
	query string

	usersDone <-chan struct{}
	wg        conc.WaitGroup
}

// View is everything the home screen draws, read in one go.
type View struct {
	Account *models.AuthSession
	Weather state.Snapshot[*models.WeatherReport]
	Users   state.Snapshot[[]models.User]
	Query   string
	// Filtered is nil unless Users is in Success.
	Filtered []models.User
}

// NewHome opens the home screen for account and starts the one user-list
// fetch this session makes.
func NewHome(ctx context.Context, c client.Client, log logging.Logger, account *models.AuthSession) *Home {
	h := &Home{
		client:  c,
		log:     log.With("scope", "home"),
		account: account,
	}

	// A fresh RequestState always accepts its first Start.
	h.usersDone, _ = launch(ctx, &h.wg, h.log, "users", &h.users, c.Users)
	return h
}

func (h *Home) Account() *models.AuthSession {
	return h.account
}

// UsersLoaded is closed once the initial user fetch has an outcome.
func (h *Home) UsersLoaded() <-chan struct{} {
	return h.usersDone
}

// LookupWeather starts a weather fetch for city. A city that is empty after
// trimming fails with common.ErrValidation and leaves the weather state as it
// was. A failed fetch clears the previously shown report.
func (h *Home) LookupWeather(ctx context.Context, city string) (<-chan struct{}, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("%w: city name is required", common.ErrValidation)
	}

	return launch(ctx, &h.wg, h.log, "weather", &h.weather, func(ctx context.Context) (*models.WeatherReport, error) {
		return h.client.Weather(ctx, city)
	})
}

func (h *Home) Weather() state.Snapshot[*models.WeatherReport] {
	return h.weather.Snapshot()
}

func (h *Home) Users() state.Snapshot[[]models.User] {
	return h.users.Snapshot()
}

// SetQuery replaces the search text, as on every keystroke, and returns the
// recomputed projection.
func (h *Home) SetQuery(q string) []models.User {
	h.mu.Lock()
	h.query = q
	h.mu.Unlock()
	return h.FilteredUsers()
}

func (h *Home) Query() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.query
}

// FilteredUsers applies the current query to the fetched list. It is nil
// while the list is loading or failed; an empty non-nil slice means nothing
// matched.
func (h *Home) FilteredUsers() []models.User {
	return h.View().Filtered
}

func (h *Home) View() View {
	v := View{
		Account: h.account,
		Weather: h.weather.Snapshot(),
		Users:   h.users.Snapshot(),
		Query:   h.Query(),
	}
	if v.Users.Status == state.Success {
		v.Filtered = search.Filter(v.Users.Data, v.Query)
		if v.Filtered == nil {
			v.Filtered = []models.User{}
		}
	}
	return v
}

func (h *Home) Close() {
	h.weather.Close()
	h.users.Close()
}

func (h *Home) Wait() {
	h.wg.Wait()
}
