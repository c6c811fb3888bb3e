package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weatherdesk/internal/client/state"
)

var errNoHome = errors.New("not signed in")

// Weather looks up city, asking for it when empty, and prints the card or
// an alert. A failed lookup also removes the card shown before.
func (a *App) Weather(ctx context.Context, city string) error {
	if a.home == nil {
		return errNoHome
	}

	if city == "" {
		var err error
		city, err = getSimpleText(a.reader, "Enter city name", a.out)
		if err != nil {
			return err
		}
	}

	done, err := a.home.LookupWeather(ctx, city)
	if err != nil {
		a.reportStartError(err, weatherAlert)
		return nil
	}

	a.println("Fetching weather...")
	if err := a.await(ctx, done); err != nil {
		return err
	}

	snap := a.home.Weather()
	switch snap.Status {
	case state.Success:
		renderWeather(a.out, snap.Data, a.now())
	case state.Failure:
		a.log.Info(ctx, "weather lookup failed", "city", city, "error", snap.Err)
		a.println(weatherAlert(snap.Err))
	}
	return nil
}

// Users prints the user table, waiting for the initial fetch if it is still
// running.
func (a *App) Users(ctx context.Context) error {
	if a.home == nil {
		return errNoHome
	}

	if a.home.Users().Status == state.Loading {
		a.println("Loading users...")
		if err := a.await(ctx, a.home.UsersLoaded()); err != nil {
			return err
		}
	}

	renderUsers(a.out, a.home.View())
	return nil
}

// Search replaces the search text with text and prints the table.
func (a *App) Search(ctx context.Context, text string) error {
	if a.home == nil {
		return errNoHome
	}
	a.home.SetQuery(text)
	return a.Users(ctx)
}

// Type feeds chars into the search box one rune at a time, reporting the
// match count after every keystroke, then prints the table.
func (a *App) Type(ctx context.Context, chars string) error {
	if a.home == nil {
		return errNoHome
	}

	q := a.home.Query()
	for _, r := range chars {
		q += string(r)
		matches := a.home.SetQuery(q)
		if matches == nil {
			a.println(fmt.Sprintf("%q: users not loaded", q))
			continue
		}
		a.println(fmt.Sprintf("%q: %d match(es)", q, len(matches)))
	}
	return a.Users(ctx)
}
