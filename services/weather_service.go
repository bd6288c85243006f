package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rishabhc286/Vital-x/utils"
)

// WeatherService wraps the OpenWeather current-conditions and air-pollution
// endpoints and turns the raw readings into health advisories.
type WeatherService struct {
	apiKey string
	client *http.Client
}

func NewWeatherService() *WeatherService {
	return &WeatherService{
		apiKey: os.Getenv("OPENWEATHER_API_KEY"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type currentWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
}

type airPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// EnvironmentReport is the weather card payload.
type EnvironmentReport struct {
	City       string   `json:"city"`
	TempF      float64  `json:"temp_f"`
	Humidity   float64  `json:"humidity"`
	Conditions string   `json:"conditions"`
	HeatIndexF float64  `json:"heat_index_f"`
	HeatStatus string   `json:"heat_status"`
	AQI        int      `json:"aqi"`
	AQILevel   string   `json:"aqi_level"`
	HealthTips []string `json:"health_tips"`
}

// GetEnvironmentReport fetches conditions for the coordinates and derives
// the heat index and US AQI advisories.
func (s *WeatherService) GetEnvironmentReport(lat, lon float64) (*EnvironmentReport, error) {
	weather, err := s.fetchCurrent(lat, lon)
	if err != nil {
		return nil, err
	}

	report := &EnvironmentReport{
		City:     weather.Name,
		TempF:    weather.Main.Temp,
		Humidity: weather.Main.Humidity,
	}
	if len(weather.Weather) > 0 {
		report.Conditions = weather.Weather[0].Description
	}

	report.HeatIndexF = utils.HeatIndexF(weather.Main.Temp, weather.Main.Humidity)
	report.HeatStatus = utils.HeatStatus(report.HeatIndexF)

	// Air quality is best effort; a pollution API failure still returns the
	// weather half of the report.
	if euAQI, err := s.fetchAQI(lat, lon); err == nil {
		report.AQI = utils.AQIToUS(euAQI)
		report.AQILevel = utils.AQILevel(report.AQI)
	}

	report.HealthTips = environmentTips(report)
	return report, nil
}

func (s *WeatherService) fetchCurrent(lat, lon float64) (*currentWeatherResponse, error) {
	u := fmt.Sprintf(
		"https://api.openweathermap.org/data/2.5/weather?lat=%s&lon=%s&units=imperial&appid=%s",
		url.QueryEscape(fmt.Sprintf("%f", lat)),
		url.QueryEscape(fmt.Sprintf("%f", lon)),
		s.apiKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API error %d: %s", resp.StatusCode, string(body))
	}

	var wr currentWeatherResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return nil, fmt.Errorf("failed to parse weather JSON: %w", err)
	}
	return &wr, nil
}

func (s *WeatherService) fetchAQI(lat, lon float64) (int, error) {
	u := fmt.Sprintf(
		"https://api.openweathermap.org/data/2.5/air_pollution?lat=%f&lon=%f&appid=%s",
		lat, lon, s.apiKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return 0, fmt.Errorf("failed to call air pollution API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read air pollution response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("air pollution API error %d: %s", resp.StatusCode, string(body))
	}

	var ar airPollutionResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return 0, fmt.Errorf("failed to parse air pollution JSON: %w", err)
	}
	if len(ar.List) == 0 {
		return 0, fmt.Errorf("empty air pollution response")
	}
	return ar.List[0].Main.AQI, nil
}

func environmentTips(r *EnvironmentReport) []string {
	var tips []string
	switch r.HeatStatus {
	case "Caution":
		tips = append(tips, "Warm conditions: drink water regularly during outdoor activity.")
	case "Extreme Caution":
		tips = append(tips, "High heat index: limit strenuous outdoor exercise to mornings or evenings.")
	case "Danger":
		tips = append(tips, "Dangerous heat: avoid outdoor exertion and watch for heat exhaustion symptoms.")
	}
	if r.AQI > 100 {
		tips = append(tips, "Air quality is poor: consider indoor workouts today.")
	}
	if len(tips) == 0 {
		tips = append(tips, "Conditions look good for outdoor activity.")
	}
	return tips
}
