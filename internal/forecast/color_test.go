package forecast

import "testing"

func TestTemperatureHueEndpoints(t *testing.T) {
	if got := temperatureHue(-10, UnitsMetric); got != 220 {
		t.Errorf("expected hue 220 at the metric cold end, got %v", got)
	}
	if got := temperatureHue(45, UnitsMetric); got != 0 {
		t.Errorf("expected hue 0 at the metric hot end, got %v", got)
	}
	if got := temperatureHue(-20, UnitsImperial); got != 220 {
		t.Errorf("expected hue 220 at the imperial cold end, got %v", got)
	}
	if got := temperatureHue(320, UnitsStandard); got != 0 {
		t.Errorf("expected hue 0 at the standard hot end, got %v", got)
	}
}

func TestTemperatureHueMonotonic(t *testing.T) {
	prev := temperatureHue(-10, UnitsMetric)
	for temp := -9.0; temp <= 45; temp++ {
		hue := temperatureHue(temp, UnitsMetric)
		if hue > prev {
			t.Fatalf("hue increased from %v to %v at temp %v", prev, hue, temp)
		}
		prev = hue
	}
}

func TestTemperatureHueClamps(t *testing.T) {
	if below, min := temperatureHue(-300, UnitsMetric), temperatureHue(-10, UnitsMetric); below != min {
		t.Errorf("below-domain hue %v differs from min hue %v", below, min)
	}
	if above, max := temperatureHue(900, UnitsMetric), temperatureHue(45, UnitsMetric); above != max {
		t.Errorf("above-domain hue %v differs from max hue %v", above, max)
	}

	if got, want := ColorizeTemperature(-300, UnitsMetric), ColorizeTemperature(-10, UnitsMetric); got != want {
		t.Errorf("clamped style %+v differs from min style %+v", got, want)
	}
}

func TestTemperatureHueUnknownUnitsFallsBackToStandard(t *testing.T) {
	// Unrecognized unit systems use the standard (Kelvin) domain.
	if got, want := temperatureHue(290, Units("bogus")), temperatureHue(290, UnitsStandard); got != want {
		t.Errorf("fallback hue %v, expected standard-domain hue %v", got, want)
	}
}

func TestColorizeTemperatureContrast(t *testing.T) {
	for temp := -10.0; temp <= 45; temp += 5 {
		style := ColorizeTemperature(temp, UnitsMetric)
		if style.Color == "" || style.Background == "" {
			t.Fatalf("empty style at temp %v", temp)
		}
		if style.Color == style.Background {
			t.Errorf("foreground equals background at temp %v", temp)
		}
	}
}
