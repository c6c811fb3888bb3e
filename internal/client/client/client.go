package client

import (
	"context"

	"github.com/dmitrijs2005/weatherdesk/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthSession, error)
	// Signup creates an account and returns the id assigned by the directory.
	Signup(ctx context.Context, profile models.SignupProfile) (int, error)
	Users(ctx context.Context) ([]models.User, error)
	Weather(ctx context.Context, city string) (*models.WeatherReport, error)
}
