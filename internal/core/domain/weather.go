package domain

// WeatherObservation is the current weather for a city, normalized from the
// weather provider.
type WeatherObservation struct {
	City         string
	Condition    string // primary condition keyword, e.g. "Clear", "Rain"
	TemperatureC float64
}
