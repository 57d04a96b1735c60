package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rmitchellscott/waybar-wttr/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func clockAt(hour int) *testingclock.FakeClock {
	return testingclock.NewFakeClock(time.Date(2025, 6, 14, hour, 13, 0, 0, time.Local))
}

func TestBuildDisplay_text(t *testing.T) {
	t.Parallel()

	r, err := DecodeReport([]byte(`{"current_condition":[{"weatherCode":"113","FeelsLikeC":"18"}]}`))
	require.NoError(t, err)

	d := BuildDisplay(r, clockAt(14))
	assert.Equal(t, "☀️ 18°", d.Text)
	assert.Equal(t, "<b>Unknown 0</b>\nFeels like: 18°\nWind: 0Km/h\nHumidity: 0%\n", d.Tooltip)
}

func TestBuildDisplay_emptyReport(t *testing.T) {
	t.Parallel()

	d := BuildDisplay(Report{}, clockAt(14))
	assert.Equal(t, "☀️ 0°", d.Text)
	assert.Equal(t, "<b>Unknown 0</b>\nFeels like: 0°\nWind: 0Km/h\nHumidity: 0%\n", d.Tooltip)
}

func TestBuildDisplay_unknownCode(t *testing.T) {
	t.Parallel()

	r, err := DecodeReport([]byte(`{"current_condition":[{"weatherCode":"42","FeelsLikeC":"-3"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "❓ -3°", BuildDisplay(r, clockAt(14)).Text)
}

func TestBuildDisplay_fixture(t *testing.T) {
	t.Parallel()

	r, err := DecodeReport(testdata.WttrJ1(t))
	require.NoError(t, err)

	d := BuildDisplay(r, clockAt(14))
	assert.Equal(t, "⛅️ 18°", d.Text)

	expectedHead := "<b>Partly cloudy 19</b>\n" +
		"Feels like: 18°\n" +
		"Wind: 15Km/h\n" +
		"Humidity: 63%\n" +
		"\n<b>Today, 2025-06-14</b>\n" +
		"⬆️ 21° ⬇️ 9° 🌅 05:47 AM 🌆 09:57 PM\n" +
		"12 ⛈ 14° Thundery outbreaks, Rain 40%, Sunshine 40%\n" +
		"15 🌧 15° Light drizzle, Rain 50%, Sunshine 30%\n" +
		"18 🌩 16° Moderate or heavy rain with thunder, Rain 60%, Sunshine 20%\n" +
		"21 ❓ 17° Mystery, Rain 70%, Sunshine 10%\n" +
		"\n<b>Tomorrow, 2025-06-15</b>\n" +
		"⬆️ 22° ⬇️ 10° 🌅 05:47 AM 🌆 09:57 PM\n" +
		"0 ☀️ 11° Sunny, Sunshine 80%\n"
	assert.True(t, strings.HasPrefix(d.Tooltip, expectedHead), d.Tooltip)

	assert.Contains(t, d.Tooltip, "\n<b>2025-06-16</b>\n")
	// 4 hours today, 8 tomorrow, 8 the day after
	assert.Equal(t, 20, strings.Count(d.Tooltip, "%\n")-1)
}

func TestBuildDisplay_todayFilterFollowsClock(t *testing.T) {
	t.Parallel()

	r, err := DecodeReport(testdata.WttrJ1(t))
	require.NoError(t, err)

	count := func(hour int) int {
		tooltip := BuildDisplay(r, clockAt(hour)).Tooltip
		today := tooltip[:strings.Index(tooltip, "<b>Tomorrow")]
		return strings.Count(today, "Sunshine")
	}

	assert.Equal(t, 8, count(0))
	assert.Equal(t, 8, count(2))
	assert.Equal(t, 7, count(5))
	assert.Equal(t, 4, count(14))
	assert.Equal(t, 1, count(23))
}

func TestBuildDisplay_idempotent(t *testing.T) {
	t.Parallel()

	data := testdata.WttrJ1(t)
	clk := clockAt(9)

	first, err := DecodeReport(data)
	require.NoError(t, err)
	second, err := DecodeReport(data)
	require.NoError(t, err)

	a, err := MarshalDisplay(BuildDisplay(first, clk))
	require.NoError(t, err)
	b, err := MarshalDisplay(BuildDisplay(second, clk))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMarshalDisplay(t *testing.T) {
	t.Parallel()

	out, err := MarshalDisplay(Display{
		Text:    "☀️ 18°",
		Tooltip: "<b>Sunny 19</b>\nWind & rain\n",
	})
	require.NoError(t, err)

	assert.Equal(t, `{"text":"☀️ 18°","tooltip":"<b>Sunny 19</b>\nWind & rain\n"}`+"\n", string(out))
	assert.Equal(t, 1, bytes.Count(out, []byte("\n")))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, "<b>Sunny 19</b>\nWind & rain\n", decoded["tooltip"])
}
