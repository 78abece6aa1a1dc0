package openweather

import "github.com/ewilliams-labs/moodweather/internal/adapters/upstream"

// currentWeather is the subset of the /weather response we read. Error
// responses reuse the same envelope with "cod" and "message" only.
type currentWeather struct {
	Cod     upstream.FlexInt `json:"cod"`
	Message string           `json:"message,omitempty"`
	Name    string           `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}
