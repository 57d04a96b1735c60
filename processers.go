package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"k8s.io/utils/clock"
)

// Display is the Waybar custom module payload
type Display struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
}

// BuildDisplay assembles the status text and tooltip for a report. The
// current hour is read from clk once.
func BuildDisplay(r Report, clk clock.PassiveClock) Display {
	current := r.CurrentCondition.First()
	feelsLike := current.FeelsLikeC.Or("0")

	text := fmt.Sprintf("%s %s°", lookupWeatherIcon(current.WeatherCode.Or(defaultWeatherCode)), feelsLike)

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s %s</b>\n", current.WeatherDesc.First().Value.Or("Unknown"), current.TempC.Or("0"))
	fmt.Fprintf(&sb, "Feels like: %s°\n", feelsLike)
	fmt.Fprintf(&sb, "Wind: %sKm/h\n", current.WindspeedKmph.Or("0"))
	fmt.Fprintf(&sb, "Humidity: %s%%\n", current.Humidity.Or("0"))

	sb.WriteString(FormatForecast(r.Weather, clk.Now().Hour()))

	return Display{
		Text:    text,
		Tooltip: sb.String(),
	}
}

// MarshalDisplay encodes d as a single JSON line without HTML escaping
func MarshalDisplay(d Display) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("error encoding output: %w", err)
	}
	return buf.Bytes(), nil
}

// writeDisplay writes d to w either as the JSON line or as a terminal preview
func writeDisplay(w io.Writer, d Display, preview bool) error {
	if preview {
		_, err := io.WriteString(w, FormatPreview(d))
		return err
	}

	data, err := MarshalDisplay(d)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
