package main

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Color definitions using fatih/color
var (
	labelColor   = color.New(color.FgCyan)
	headingColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed)
)

var boldRegex = regexp.MustCompile(`<b>(.*?)</b>`)

// formatHourTime turns an hourly time code ("0", "300", "1200") into the
// displayed hour by removing every "00"
func formatHourTime(raw string) string {
	formatted := strings.ReplaceAll(raw, "00", "")
	if formatted == "" {
		return "0"
	}
	return formatted
}

// formatTemp appends a degree sign when the result fits in three characters.
// Wider values lose the sign and are cut to two characters, so "-15" shows
// as "-1".
func formatTemp(raw string) string {
	formatted := raw + "°"
	if utf8.RuneCountInString(formatted) <= 3 {
		return formatted
	}
	return string([]rune(raw)[:2])
}

// formatChances lists the non-zero probabilities of an hour, e.g.
// "Rain 80%, Sunshine 20%"
func formatChances(hour Hourly) string {
	var conditions []string
	for _, field := range chanceFields {
		value := hour.Chance(field.Key)
		if !value.IsSet() {
			continue
		}
		percent, err := strconv.Atoi(value.Or(""))
		if err != nil || percent <= 0 {
			continue
		}
		conditions = append(conditions, field.Label+" "+value.Or("")+"%")
	}
	return strings.Join(conditions, ", ")
}

// hourHidden reports whether today's hourly entry lies before the look-back
// window. Entries without a parseable time are never hidden.
func hourHidden(hour Hourly, currentHour int) bool {
	raw := hour.Time.Or("")
	if _, err := strconv.Atoi(raw); err != nil {
		return false
	}
	h, err := strconv.Atoi(formatHourTime(raw))
	if err != nil {
		return false
	}
	return h < currentHour-2
}

// formatDayHeader renders the heading and the temperature/sun line of a day
func formatDayHeader(sb *strings.Builder, index int, day Day) {
	sb.WriteString("\n<b>")
	switch index {
	case 0:
		sb.WriteString("Today, ")
	case 1:
		sb.WriteString("Tomorrow, ")
	}
	sb.WriteString(day.Date.Or(""))
	sb.WriteString("</b>\n")

	astronomy := day.Astronomy.First()
	sb.WriteString("⬆️ " + day.MaxTempC.Or("0") + "° ⬇️ " + day.MinTempC.Or("0") + "° ")
	sb.WriteString("🌅 " + astronomy.Sunrise.Or("") + " 🌆 " + astronomy.Sunset.Or("") + "\n")
}

// formatHour renders one hourly forecast line
func formatHour(sb *strings.Builder, hour Hourly) {
	sb.WriteString(formatHourTime(hour.Time.Or("")))
	sb.WriteString(" ")
	sb.WriteString(lookupWeatherIcon(hour.WeatherCode.Or(defaultWeatherCode)))
	sb.WriteString(" ")
	sb.WriteString(formatTemp(hour.FeelsLikeC.Or("0")))
	sb.WriteString(" ")
	sb.WriteString(hour.WeatherDesc.First().Value.Or(""))
	sb.WriteString(", ")
	sb.WriteString(formatChances(hour))
	sb.WriteString("\n")
}

// FormatForecast renders every forecast day with its hourly lines. On the
// first day, hours more than two hours before currentHour are left out.
func FormatForecast(days []Day, currentHour int) string {
	var sb strings.Builder

	for i, day := range days {
		formatDayHeader(&sb, i, day)

		for _, hour := range day.Hourly {
			if i == 0 && hourHidden(hour, currentHour) {
				continue
			}
			formatHour(&sb, hour)
		}
	}

	return sb.String()
}

// FormatPreview renders a Display for a terminal, turning <b> markup into
// colored headings
func FormatPreview(d Display) string {
	var sb strings.Builder

	labelColor.Fprint(&sb, "Text: ")
	sb.WriteString(d.Text)
	sb.WriteString("\n\n")

	sb.WriteString(boldRegex.ReplaceAllStringFunc(d.Tooltip, func(m string) string {
		return headingColor.Sprint(boldRegex.FindStringSubmatch(m)[1])
	}))

	if !strings.HasSuffix(d.Tooltip, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}
