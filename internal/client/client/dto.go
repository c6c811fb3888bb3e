package client

import "github.com/dmitrijs2005/weatherdesk/internal/client/models"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	AccessToken string `json:"accessToken"`
	// Token is the field name used by older directory versions.
	Token string `json:"token"`
}

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Age       int    `json:"age"`
	Gender    string `json:"gender,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type signupResponse struct {
	ID int `json:"id"`
}

type userDTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

type usersEnvelope struct {
	Users []userDTO `json:"users"`
	Total int       `json:"total"`
}

type weatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func newSignupRequest(p models.SignupProfile) signupRequest {
	return signupRequest{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Username:  p.Username,
		Password:  p.Password,
		Age:       p.Age,
		Gender:    p.Gender,
		Email:     p.Email,
		Phone:     p.Phone,
	}
}

func (u userDTO) toModel() models.User {
	return models.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Gender:    u.Gender,
		ImageURL:  u.Image,
	}
}

func (w weatherResponse) toModel() *models.WeatherReport {
	r := &models.WeatherReport{
		CityName:           w.Name,
		TemperatureCelsius: w.Main.Temp,
		HumidityPercent:    w.Main.Humidity,
		WindSpeed:          w.Wind.Speed,
	}
	if len(w.Weather) > 0 {
		r.ConditionDescription = w.Weather[0].Description
	}
	return r
}
