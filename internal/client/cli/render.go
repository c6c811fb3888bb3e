package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/weatherdesk/internal/client/models"
	"github.com/dmitrijs2005/weatherdesk/internal/client/session"
	"github.com/dmitrijs2005/weatherdesk/internal/client/state"
)

// dateLayout matches the card date, e.g. "Sat Oct 17 2026".
const dateLayout = "Mon Jan 02 2006"

func renderWeather(w io.Writer, r *models.WeatherReport, now time.Time) {
	fmt.Fprintln(w, "----------------------------")
	fmt.Fprintln(w, r.CityName)
	fmt.Fprintln(w, now.Format(dateLayout))
	fmt.Fprintf(w, "%d°C\n", r.RoundedTemperature())
	fmt.Fprintln(w, r.DisplayDescription())
	fmt.Fprintf(w, "Humidity: %d%%\n", r.HumidityPercent)
	fmt.Fprintf(w, "Wind: %s m/s\n", strconv.FormatFloat(r.WindSpeed, 'f', -1, 64))
	fmt.Fprintln(w, "----------------------------")
}

// renderUsers draws the user section of the home screen for v.
func renderUsers(w io.Writer, v session.View) {
	switch v.Users.Status {
	case state.Idle, state.Loading:
		fmt.Fprintln(w, "Loading users...")
		return
	case state.Failure:
		fmt.Fprintln(w, usersAlert(v.Users.Err))
		return
	}

	if len(v.Filtered) == 0 {
		if v.Query == "" {
			fmt.Fprintln(w, "No users yet")
		} else {
			fmt.Fprintf(w, "No users match %q\n", v.Query)
		}
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "First Name\tLast Name\tAge\tGender\tProfile")
	for _, u := range v.Filtered {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", u.FirstName, u.LastName, u.Age, u.Gender, u.ImageURL)
	}
	tw.Flush()

	if v.Query != "" {
		fmt.Fprintf(w, "%d of %d users match %q\n", len(v.Filtered), len(v.Users.Data), v.Query)
	}
}
