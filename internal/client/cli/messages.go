package cli

import (
	"errors"

	"github.com/dmitrijs2005/weatherdesk/internal/client/client"
	"github.com/dmitrijs2005/weatherdesk/internal/client/forms"
	"github.com/dmitrijs2005/weatherdesk/internal/common"
)

const genericFailure = "Something went wrong"

// alert is a titled message, the terminal version of a dialog box.
type alert struct {
	Title string
	Body  string
}

func (a alert) String() string {
	if a.Body == "" {
		return a.Title
	}
	return a.Title + ": " + a.Body
}

func loginAlert(err error) alert {
	if errors.Is(err, common.ErrValidation) {
		return alert{Title: "Please fill all fields"}
	}
	if msg := client.UpstreamMessage(err); msg != "" {
		return alert{Title: "Login Failed", Body: msg}
	}
	if errors.Is(err, common.ErrInvalidCredentials) {
		return alert{Title: "Login Failed", Body: "Invalid username or password"}
	}
	return alert{Title: "Login Failed", Body: genericFailure}
}

func signupAlert(err error) alert {
	var fe *forms.FieldError
	switch {
	case forms.IsMissingRequired(err):
		return alert{Title: "Please fill in all required fields"}
	case errors.As(err, &fe):
		return alert{Title: "Invalid " + fe.Field.ID, Body: fe.Error()}
	}
	if msg := client.UpstreamMessage(err); msg != "" {
		return alert{Title: "Signup Failed", Body: msg}
	}
	return alert{Title: "Signup Failed", Body: genericFailure}
}

func weatherAlert(err error) alert {
	switch {
	case errors.Is(err, common.ErrValidation):
		return alert{Title: "Missing City", Body: "Please enter a city name."}
	case errors.Is(err, common.ErrNotFound):
		return alert{Title: "City Not Found", Body: "Please enter a valid city name."}
	default:
		return alert{Title: "Error", Body: "Something went wrong while fetching weather."}
	}
}

func usersAlert(error) alert {
	return alert{Title: "Could not load users", Body: "Please check your connection and log in again."}
}
