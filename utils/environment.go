package utils

import "math"

// HeatIndexF computes the NOAA heat-index regression from temperature in
// Fahrenheit and relative humidity in percent. Below 80F the regression is
// not defined and the input temperature passes through unchanged.
func HeatIndexF(tempF, humidity float64) float64 {
	if tempF < 80 {
		return tempF
	}
	t := tempF
	r := humidity
	hi := -42.379 +
		2.04901523*t +
		10.14333127*r -
		0.22475541*t*r -
		0.00683783*t*t -
		0.05481717*r*r +
		0.00122874*t*t*r +
		0.00085282*t*r*r -
		0.00000199*t*t*r*r
	return math.Round(hi*10) / 10
}

// HeatStatus labels a heat-index value with an advisory band.
func HeatStatus(heatIndexF float64) string {
	switch {
	case heatIndexF < 80:
		return "Comfortable"
	case heatIndexF < 90:
		return "Caution"
	case heatIndexF < 105:
		return "Extreme Caution"
	default:
		return "Danger"
	}
}

// aqiEUToUS maps the European 1-5 air-quality index onto representative US
// AQI values.
var aqiEUToUS = map[int]int{
	1: 25,
	2: 75,
	3: 125,
	4: 175,
	5: 250,
}

// AQIToUS converts a European AQI band to its US AQI midpoint. Unknown
// bands fall back to 50.
func AQIToUS(euIndex int) int {
	if v, ok := aqiEUToUS[euIndex]; ok {
		return v
	}
	return 50
}

// AQILevel labels a US AQI value with the standard EPA category.
func AQILevel(usAQI int) string {
	switch {
	case usAQI <= 50:
		return "Good"
	case usAQI <= 100:
		return "Moderate"
	case usAQI <= 150:
		return "Unhealthy for Sensitive Groups"
	case usAQI <= 200:
		return "Unhealthy"
	default:
		return "Very Unhealthy"
	}
}
