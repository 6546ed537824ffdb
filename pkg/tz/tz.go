package tz

import "time"

// NewYork is the America/New_York location (EST/EDT with automatic DST),
// the default display zone for events that don't carry their own.
var NewYork *time.Location

func init() {
	var err error
	NewYork, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic("tz: load America/New_York: " + err.Error())
	}
}
