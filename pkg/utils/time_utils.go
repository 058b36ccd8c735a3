package utils

import (
	"fmt"
	"time"
)

const tripDateLayout = "2006-01-02"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// TripNights returns the number of nights between check-in and check-out,
// never negative. Unparseable dates count as zero.
func TripNights(checkIn, checkOut string) int {
	start, err := time.Parse(tripDateLayout, checkIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse(tripDateLayout, checkOut)
	if err != nil {
		return 0
	}
	nights := int(end.Sub(start).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// TripDays is the trip length used in the guide prompt: at least one day even
// for a same-day trip.
func TripDays(checkIn, checkOut string) int {
	if n := TripNights(checkIn, checkOut); n > 0 {
		return n
	}
	return 1
}

// DefaultPlanName builds the suggested display name for a saved plan, e.g.
// "Tokyo Expedition (Sep 1 - Sep 8)".
func DefaultPlanName(destination, checkIn, checkOut string) string {
	if destination == "" {
		return "Unnamed Plan"
	}
	return fmt.Sprintf("%s Expedition (%s - %s)",
		destination, shortTripDate(checkIn), shortTripDate(checkOut))
}

func shortTripDate(dateStr string) string {
	d, err := time.Parse(tripDateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format("Jan 2")
}
