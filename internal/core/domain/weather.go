package domain

// WeatherCondition is a textual sky condition with its provider icon.
type WeatherCondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// CurrentWeather is the present conditions at a location.
type CurrentWeather struct {
	TempC      float64          `json:"tempC"`
	FeelsLikeC float64          `json:"feelsLikeC"`
	Humidity   int              `json:"humidity"`
	WindKph    float64          `json:"windKph"`
	PrecipMM   float64          `json:"precipMm"`
	UV         float64          `json:"uv"`
	Condition  WeatherCondition `json:"condition"`
}

// ForecastDay is one day of the forecast, reduced to the fields the
// agricultural dashboard renders.
type ForecastDay struct {
	Date         string           `json:"date"`
	MaxTempC     float64          `json:"maxTempC"`
	MinTempC     float64          `json:"minTempC"`
	AvgTempC     float64          `json:"avgTempC"`
	AvgHumidity  float64          `json:"avgHumidity"`
	ChanceOfRain int              `json:"chanceOfRain"`
	TotalPrecipMM float64         `json:"totalPrecipMm"`
	Condition    WeatherCondition `json:"condition"`
	Sunrise      string           `json:"sunrise"`
	Sunset       string           `json:"sunset"`
}

// WeatherLocation identifies the place a forecast applies to.
type WeatherLocation struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	LocalTime string  `json:"localtime"`
}

// Forecast is the reduced multi-day forecast served to clients.
type Forecast struct {
	Location WeatherLocation `json:"location"`
	Current  CurrentWeather  `json:"current"`
	Days     []ForecastDay   `json:"days"`
}
