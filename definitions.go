package main

// defaultWeatherCode is used when a record carries no weather code
const defaultWeatherCode = "113"

// unknownIcon is shown for codes missing from weatherIcons
const unknownIcon = "❓"

// weatherIcon pairs a wttr.in condition code with its display glyph
type weatherIcon struct {
	Code string
	Icon string
}

// Condition code to glyph mapping used for the status text and hourly lines
var weatherIcons = []weatherIcon{
	{"113", "☀️"},
	{"116", "⛅️"},
	{"119", "☁️"},
	{"122", "☁️"},
	{"143", "🌧"},
	{"176", "🌧"},
	{"179", "🌧"},
	{"182", "🌧"},
	{"185", "🌧"},
	{"200", "⛈"},
	{"227", "🌨"},
	{"230", "❄️"},
	{"248", "🌫"},
	{"260", "🌫"},
	{"263", "🌧"},
	{"266", "🌧"},
	{"281", "🌧"},
	{"284", "🌧"},
	{"293", "🌧"},
	{"296", "🌧"},
	{"299", "🌧"},
	{"302", "🌧"},
	{"305", "🌧"},
	{"308", "🌧"},
	{"311", "🌧"},
	{"314", "🌧"},
	{"317", "🌧"},
	{"320", "🌧"},
	{"323", "🌧"},
	{"326", "🌧"},
	{"329", "❄️"},
	{"332", "❄️"},
	{"335", "❄️"},
	{"338", "❄️"},
	{"350", "🌧"},
	{"353", "🌧"},
	{"356", "🌧"},
	{"359", "🌧"},
	{"362", "🌧"},
	{"365", "🌧"},
	{"368", "🌧"},
	{"371", "❄️"},
	{"374", "🌧"},
	{"377", "🌧"},
	{"386", "⛈"},
	{"389", "🌩"},
	{"392", "⛈"},
	{"395", "❄️"},
}

// chanceField names one of the hourly chanceof* probability fields
type chanceField struct {
	Key   string
	Label string
}

// Probability fields in display order
var chanceFields = []chanceField{
	{"chanceoffog", "Fog"},
	{"chanceoffrost", "Frost"},
	{"chanceofovercast", "Overcast"},
	{"chanceofrain", "Rain"},
	{"chanceofsnow", "Snow"},
	{"chanceofsunshine", "Sunshine"},
	{"chanceofthunder", "Thunder"},
	{"chanceofwindy", "Wind"},
}

// lookupWeatherIcon returns the glyph for a condition code, or unknownIcon
func lookupWeatherIcon(code string) string {
	for _, wi := range weatherIcons {
		if wi.Code == code {
			return wi.Icon
		}
	}
	return unknownIcon
}
