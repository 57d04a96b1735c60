package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a string leaf of a wttr.in document. Missing keys, null and
// non-string values all decode to an unset Value.
type Value struct {
	s   string
	set bool
}

// NewValue returns a set Value holding s
func NewValue(s string) Value {
	return Value{s: s, set: true}
}

// UnmarshalJSON never fails; anything that is not a JSON string leaves v unset
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	v.s, v.set = s, true
	return nil
}

// Or returns the value when present and def otherwise
func (v Value) Or(def string) string {
	if !v.set {
		return def
	}
	return v.s
}

// IsSet reports whether the document carried a string for this field
func (v Value) IsSet() bool {
	return v.set
}

// List is an array of a wttr.in document. A non-array decodes to an empty
// list, and elements that fail to decode are kept as zero values so indexes
// still line up with the document.
type List[T any] []T

// UnmarshalJSON never fails
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}

	items := make([]T, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err == nil {
			items[i] = item
		}
	}
	*l = items
	return nil
}

// First returns the first element, or the zero value for an empty list
func (l List[T]) First() T {
	var zero T
	if len(l) == 0 {
		return zero
	}
	return l[0]
}

// Description is one entry of a weatherDesc array
type Description struct {
	Value Value `json:"value"`
}

// Astronomy holds the sun times of a forecast day
type Astronomy struct {
	Sunrise Value `json:"sunrise"`
	Sunset  Value `json:"sunset"`
}

// CurrentCondition is the observation record of a report
type CurrentCondition struct {
	WeatherCode   Value             `json:"weatherCode"`
	FeelsLikeC    Value             `json:"FeelsLikeC"`
	TempC         Value             `json:"temp_C"`
	WindspeedKmph Value             `json:"windspeedKmph"`
	Humidity      Value             `json:"humidity"`
	WeatherDesc   List[Description] `json:"weatherDesc"`
}

// Hourly is one 3-hour slot of a forecast day
type Hourly struct {
	Time        Value             `json:"time"`
	WeatherCode Value             `json:"weatherCode"`
	FeelsLikeC  Value             `json:"FeelsLikeC"`
	WeatherDesc List[Description] `json:"weatherDesc"`

	// Chances holds every chanceof* field keyed by its JSON name
	Chances map[string]Value `json:"-"`
}

// UnmarshalJSON decodes the named fields and collects the chanceof* fields
func (h *Hourly) UnmarshalJSON(data []byte) error {
	type hourly Hourly
	var aux hourly
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var fields map[string]Value
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, value := range fields {
		if !strings.HasPrefix(key, "chanceof") {
			continue
		}
		if aux.Chances == nil {
			aux.Chances = make(map[string]Value)
		}
		aux.Chances[key] = value
	}

	*h = Hourly(aux)
	return nil
}

// Chance returns the named probability field
func (h Hourly) Chance(key string) Value {
	return h.Chances[key]
}

// Day is one entry of the weather array
type Day struct {
	Date      Value           `json:"date"`
	MaxTempC  Value           `json:"maxtempC"`
	MinTempC  Value           `json:"mintempC"`
	Astronomy List[Astronomy] `json:"astronomy"`
	Hourly    List[Hourly]    `json:"hourly"`
}

// Report is a decoded wttr.in j1 document
type Report struct {
	CurrentCondition List[CurrentCondition] `json:"current_condition"`
	Weather          List[Day]              `json:"weather"`
}

// DecodeReport decodes a j1 document. Only a body that is not JSON at all is
// an error; missing or oddly typed fields fall back to their defaults later.
func DecodeReport(data []byte) (Report, error) {
	if !json.Valid(data) {
		return Report{}, fmt.Errorf("%w: response is not valid JSON", ErrParse)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		// valid JSON but not an object
		return Report{}, nil
	}
	return r, nil
}
