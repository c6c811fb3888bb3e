package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/weatherdesk/internal/client/models"
	"github.com/dmitrijs2005/weatherdesk/internal/common"
	"github.com/dmitrijs2005/weatherdesk/internal/logging"
)

const (
	endpointLogin   = "login"
	endpointSignup  = "signup"
	endpointUsers   = "users"
	endpointWeather = "weather"

	// maxBodySize caps how much of an upstream response is read.
	maxBodySize = 4 << 20
)

// Options configures a RESTClient.
type Options struct {
	AuthBaseURL    string
	WeatherBaseURL string
	WeatherAPIKey  string
	// Timeout bounds each round trip. Zero means no client-side limit.
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored then.
	HTTPClient *http.Client
	Logger     logging.Logger
	// Registerer receives the upstream metrics. May be nil.
	Registerer prometheus.Registerer
}

// RESTClient implements Client over plain HTTP+JSON.
type RESTClient struct {
	authURL    *url.URL
	weatherURL *url.URL
	apiKey     string
	http       *http.Client
	log        logging.Logger
	metrics    *metrics
}

var _ Client = (*RESTClient)(nil)

func NewRESTClient(opts Options) (*RESTClient, error) {
	authURL, err := parseBaseURL(opts.AuthBaseURL)
	if err != nil {
		return nil, fmt.Errorf("auth base url: %w", err)
	}
	weatherURL, err := parseBaseURL(opts.WeatherBaseURL)
	if err != nil {
		return nil, fmt.Errorf("weather base url: %w", err)
	}
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	return &RESTClient{
		authURL:    authURL,
		weatherURL: weatherURL,
		apiKey:     opts.WeatherAPIKey,
		http:       hc,
		log:        opts.Logger,
		metrics:    newMetrics(opts.Registerer),
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute url", raw)
	}
	return u, nil
}

// call is one upstream request. classify maps the status code to nil or a
// sentinel; out, when non-nil, receives the decoded 2xx body.
type call struct {
	endpoint string
	method   string
	url      string
	body     any
	classify func(code int) error
	out      any
}

func (c *RESTClient) exec(ctx context.Context, cl call) error {
	start := time.Now()
	err := c.roundTrip(ctx, cl)
	c.metrics.observe(cl.endpoint, err, time.Since(start))
	return err
}

func (c *RESTClient) roundTrip(ctx context.Context, cl call) error {
	reqID := uuid.NewString()
	log := c.log.With("endpoint", cl.endpoint, "request_id", reqID)

	var payload io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", cl.endpoint, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, cl.url, payload)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", cl.endpoint, err)
	}
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("User-Agent", common.UserAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json;charset=utf-8")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "upstream request failed", "error", err)
		return &APIError{Op: cl.endpoint, Kind: common.ErrUnavailable, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Warn(ctx, "reading upstream response failed", "status", resp.StatusCode, "error", err)
		return &APIError{Op: cl.endpoint, StatusCode: resp.StatusCode, Kind: common.ErrUnavailable, Err: err}
	}

	if kind := cl.classify(resp.StatusCode); kind != nil {
		msg := messageOf(body)
		log.Info(ctx, "upstream rejected request", "status", resp.StatusCode, "message", msg)
		return &APIError{Op: cl.endpoint, StatusCode: resp.StatusCode, Message: msg, Kind: kind}
	}

	log.Debug(ctx, "upstream request done", "status", resp.StatusCode, "bytes", len(body))

	if cl.out == nil {
		return nil
	}
	if err := json.Unmarshal(body, cl.out); err != nil {
		log.Warn(ctx, "decoding upstream response failed", "error", err)
		return &APIError{Op: cl.endpoint, StatusCode: resp.StatusCode, Kind: common.ErrUnavailable, Err: err}
	}
	return nil
}

// Login posts the credentials to /auth/login.
func (c *RESTClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthSession, error) {
	var resp loginResponse

	err := c.exec(ctx, call{
		endpoint: endpointLogin,
		method:   http.MethodPost,
		url:      c.authURL.JoinPath("auth", "login").String(),
		body:     loginRequest{Username: creds.Username, Password: string(creds.Password)},
		classify: loginStatus,
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}

	token := resp.AccessToken
	if token == "" {
		token = resp.Token
	}

	s := &models.AuthSession{
		UserID:      resp.ID,
		Username:    resp.Username,
		FirstName:   resp.FirstName,
		LastName:    resp.LastName,
		AccessToken: token,
	}
	if token != "" {
		exp, err := tokenExpiry(token)
		if err != nil {
			c.log.Debug(ctx, "access token has no readable expiry", "error", err)
		}
		s.ExpiresAt = exp
	}
	return s, nil
}

// Signup posts the profile to /users/add.
func (c *RESTClient) Signup(ctx context.Context, profile models.SignupProfile) (int, error) {
	var resp signupResponse

	err := c.exec(ctx, call{
		endpoint: endpointSignup,
		method:   http.MethodPost,
		url:      c.authURL.JoinPath("users", "add").String(),
		body:     newSignupRequest(profile),
		classify: signupStatus,
		out:      &resp,
	})
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Users fetches the first page of /users as served by the directory.
func (c *RESTClient) Users(ctx context.Context) ([]models.User, error) {
	var env usersEnvelope

	err := c.exec(ctx, call{
		endpoint: endpointUsers,
		method:   http.MethodGet,
		url:      c.authURL.JoinPath("users").String(),
		classify: usersStatus,
		out:      &env,
	})
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(env.Users))
	for _, u := range env.Users {
		users = append(users, u.toModel())
	}
	return users, nil
}

// Weather fetches current conditions for city in metric units.
func (c *RESTClient) Weather(ctx context.Context, city string) (*models.WeatherReport, error) {
	var resp weatherResponse

	u := c.weatherURL.JoinPath("weather")
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	err := c.exec(ctx, call{
		endpoint: endpointWeather,
		method:   http.MethodGet,
		url:      u.String(),
		classify: weatherStatus,
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}
