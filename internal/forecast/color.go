package forecast

import "fmt"

// TempStyle is the foreground/background color pair used to encode a
// temperature visually. The zero value is the "no temperature" style.
type TempStyle struct {
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
}

// tempDomain is the clamping range for one unit system.
type tempDomain struct {
	min, max float64
}

var tempDomains = map[Units]tempDomain{
	UnitsImperial: {min: -20, max: 110},
	UnitsMetric:   {min: -10, max: 45},
	UnitsStandard: {min: 260, max: 320},
}

// temperatureHue maps a temperature to a hue on the blue(220)→red(0) sweep,
// clamped to the unit system's domain. Unrecognized unit systems use the
// standard (Kelvin) domain.
func temperatureHue(temp float64, units Units) float64 {
	domain, ok := tempDomains[units]
	if !ok {
		domain = tempDomains[UnitsStandard]
	}

	if temp < domain.min {
		temp = domain.min
	}
	if temp > domain.max {
		temp = domain.max
	}

	ratio := (temp - domain.min) / (domain.max - domain.min)
	return (1 - ratio) * 220
}

// ColorizeTemperature returns a dark foreground and a light background at
// the temperature's hue, keeping the contrast legible across the sweep.
func ColorizeTemperature(temp float64, units Units) TempStyle {
	hue := temperatureHue(temp, units)
	return TempStyle{
		Color:      fmt.Sprintf("hsl(%.0f, 65%%, 30%%)", hue),
		Background: fmt.Sprintf("hsl(%.0f, 65%%, 88%%)", hue),
	}
}
