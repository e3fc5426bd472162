package risk

import (
	"math"

	"github.com/weatherintel/backend/pkg/utils"
)

// HeatIndex computes the Rothfusz heat index in °C. The regression is only
// meaningful above 80°F, so below that threshold the raw temperature is
// returned unchanged.
func HeatIndex(tempC, humidity float64) float64 {
	t := tempC*9/5 + 32
	rh := humidity
	if t < 80 {
		return tempC
	}

	hiF := -42.379 +
		2.04901523*t +
		10.14333127*rh -
		0.22475541*t*rh -
		0.00683783*t*t -
		0.05481717*rh*rh +
		0.00122874*t*t*rh +
		0.00085282*t*rh*rh -
		0.00000199*t*t*rh*rh

	return (hiF - 32) * 5 / 9
}

// WindChill computes the Canadian wind-chill index in °C. The formula is
// only defined below 10°C with wind of at least 4.8 km/h; outside that range
// the raw temperature is returned.
func WindChill(tempC, windKmh float64) float64 {
	if tempC >= 10 || windKmh < 4.8 {
		return tempC
	}
	v := math.Pow(windKmh, 0.16)
	return utils.RoundTo(13.12+0.6215*tempC-11.37*v+0.3965*tempC*v, 1)
}

// DewPoint approximates the dew point in °C via the Magnus formula.
// Humidity is floored at 1% to keep the log in its domain.
func DewPoint(tempC, humidity float64) float64 {
	const (
		a = 17.625
		b = 243.04
	)
	gamma := a*tempC/(b+tempC) + math.Log(math.Max(humidity, 1)/100.0)
	return b * gamma / (a - gamma)
}

// Humidex computes the humidex from temperature and relative humidity,
// returning the humidex and the underlying dew point (both °C). The vapor
// pressure term takes the dew point in kelvin.
func Humidex(tempC, humidity float64) (humidex, dewPoint float64) {
	dewPoint = DewPoint(tempC, humidity)
	dewK := dewPoint + 273.16
	e := 6.105 * math.Exp(25.22*(dewK-273.16)/dewK)
	humidex = tempC + (5.0/9.0)*(e-10)
	return humidex, dewPoint
}
