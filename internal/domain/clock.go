package domain

import "math"

// ClockTime splits a duration expressed in fractional hours.
type ClockTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Hours and minutes are truncated; seconds are rounded and carried upward
// so that 59.6 seconds never renders as 60.
func ClockFromHours(hours float64) ClockTime {
	if hours < 0 || math.IsNaN(hours) {
		return ClockTime{}
	}

	h := int(hours)
	remMinutes := (hours - float64(h)) * 60
	m := int(remMinutes)
	s := int(math.Round((remMinutes - float64(m)) * 60))

	if s == 60 {
		s = 0
		m++
	}
	if m == 60 {
		m = 0
		h++
	}

	return ClockTime{Hours: h, Minutes: m, Seconds: s}
}
