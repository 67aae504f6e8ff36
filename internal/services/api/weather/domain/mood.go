// Package domain decides an outfit mood from temperature and sky condition
package domain

import (
	"sync"

	"golang.org/x/text/cases"
)

// Moods
const (
	MoodExtremeWinter = "extreme winter protection"
	MoodCozy          = "cozy and warm"
	MoodRainy         = "rainy day outfit"
	MoodSnowy         = "snow appropriate"
	MoodCasual        = "casual"
	MoodCooling       = "minimal and cooling"
	MoodBreezy        = "light and breezy"
)

// Plausible temperature bounds in celsius, outside them we only warn
const (
	MinPlausible = -50
	MaxPlausible = 50
)

// a Caser may hold state, each goroutine takes its own from the pool
var folderPool = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

func foldString(s string) string {
	c := folderPool.Get().(*cases.Caser)
	c.Reset()
	out := c.String(s)
	folderPool.Put(c)
	return out
}

// WeatherInput is the POST /weather-mood body
// Temperature is a pointer so a missing field fails required instead of reading as 0
type WeatherInput struct {
	Temperature *int   `json:"temperature" validate:"required"          example:"15"`
	Condition   string `json:"condition"   validate:"required,notblank" example:"sunny"`
}

// MoodResponse is the 200 body
// swagger:model
type MoodResponse struct {
	Mood string `json:"mood" example:"casual"`
}

// DecideMood maps temperature and condition to a mood, the first matching rule wins
// temperature rules below 10 outrank the condition
func DecideMood(temperature int, condition string) string {
	c := foldString(condition)
	switch {
	case temperature < -10:
		return MoodExtremeWinter
	case temperature < 10:
		return MoodCozy
	case c == "rainy":
		return MoodRainy
	case c == "snowy":
		return MoodSnowy
	case temperature <= 20:
		return MoodCasual
	case temperature > 35:
		return MoodCooling
	default:
		return MoodBreezy
	}
}

// Plausible reports whether temperature lies within the checked range
func Plausible(temperature int) bool {
	return temperature >= MinPlausible && temperature <= MaxPlausible
}
