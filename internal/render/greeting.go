package render

import (
	"fmt"
	"time"
)

const (
	DefaultUTCOffset = 5 * time.Hour
	DefaultLocation  = "Chennai"
)

// GreetingFor picks the greeting for a local hour in [0,24).
// Night and late evening share the evening bucket.
func GreetingFor(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good Morning!"
	case hour >= 12 && hour < 17:
		return "Good Afternoon!"
	default:
		return "Good Evening!"
	}
}

// LocalHour shifts the UTC hour of now by offset, wrapping at 24.
func LocalHour(now time.Time, offset time.Duration) int {
	return now.UTC().Add(offset).Hour()
}

// Greeting is the banner line, e.g. "Good Morning! Welcome from Chennai!".
// An empty location drops the welcome part.
func Greeting(now time.Time, offset time.Duration, location string) string {
	g := GreetingFor(LocalHour(now, offset))
	if location == "" {
		return g
	}
	return fmt.Sprintf("%s Welcome from %s!", g, location)
}
