package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/weatherdesk/internal/client/client"
	"github.com/dmitrijs2005/weatherdesk/internal/client/config"
	"github.com/dmitrijs2005/weatherdesk/internal/client/session"
	"github.com/dmitrijs2005/weatherdesk/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	client   client.Client
	registry *prometheus.Registry

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	screen Screen
	auth   *session.Auth
	home   *session.Home
}

// NewApp builds the REST gateway from c and returns an App reading from
// stdin and writing to stdout.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	reg := prometheus.NewRegistry()

	api, err := client.NewRESTClient(client.Options{
		AuthBaseURL:    c.AuthBaseURL,
		WeatherBaseURL: c.WeatherBaseURL,
		WeatherAPIKey:  c.WeatherAPIKey,
		Timeout:        c.RequestTimeout,
		Logger:         log,
		Registerer:     reg,
	})
	if err != nil {
		return nil, err
	}

	if c.WeatherAPIKey == "" {
		log.Warn(context.Background(), "weather API key is not set; lookups will be rejected upstream")
	}

	a := newApp(api, log, reg, os.Stdin, os.Stdout)
	a.config = c
	return a, nil
}

func newApp(c client.Client, log logging.Logger, reg *prometheus.Registry, in io.Reader, out io.Writer) *App {
	return &App{
		log:      log,
		client:   c,
		registry: reg,
		reader:   bufio.NewReader(in),
		out:      out,
		now:      time.Now,
		screen:   ScreenLogin,
		auth:     session.NewAuth(c, log),
	}
}

// Run shows the login screen and serves commands until the user quits or
// input ends. Open scopes are torn down on the way out.
func (a *App) Run(ctx context.Context) {
	defer a.teardown()

	if a.config != nil {
		a.log.Debug(ctx, "starting", "auth_url", a.config.AuthBaseURL, "weather_url", a.config.WeatherBaseURL, "timeout", a.config.RequestTimeout)
	}

	a.println("Welcome to weatherdesk (type 'help' for commands)")
	a.println("Demo account: emilys / emilyspass")

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) currentScreen() Screen {
	return a.screen
}

func (a *App) getStatus() string {
	if a.home != nil {
		if acc := a.home.Account(); acc != nil && acc.Username != "" {
			return fmt.Sprintf("(%s %s)", acc.Username, a.screen)
		}
	}
	return fmt.Sprintf("(%s)", a.screen)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// await blocks until done is closed or ctx ends.
func (a *App) await(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *App) teardown() {
	if a.home != nil {
		a.home.Close()
		a.home.Wait()
		a.home = nil
	}
	if a.auth != nil {
		a.auth.Close()
		a.auth.Wait()
		a.auth = nil
	}
}
