package models

import "time"

// RawLaunchRecord is one normalized entry from the primary launch listing:
// projected down to the fields the pipeline consumes, with the singleton
// payload and core lists already unwrapped.
type RawLaunchRecord struct {
	FlightNumber int
	DateUTC      string
	// Date is the plain launch date derived from DateUTC. It exists only
	// for the cutoff filter; the exported Date column carries DateUTC.
	Date        time.Time
	RocketID    string
	PayloadID   string
	LaunchpadID string
	Core        CoreUsage
}

// CoreUsage is the core-usage sub-record embedded in a launch entry.
// Pointer fields are nil when the API omitted the value.
type CoreUsage struct {
	CoreID         *string `json:"core"`
	Flight         *int    `json:"flight"`
	GridFins       *bool   `json:"gridfins"`
	Legs           *bool   `json:"legs"`
	Reused         *bool   `json:"reused"`
	LandingPad     *string `json:"landpad"`
	LandingSuccess *bool   `json:"landing_success"`
	LandingType    *string `json:"landing_type"`
}

// EnrichedLaunchRecord is a RawLaunchRecord joined with the dependent
// rocket, payload, launchpad and core look-ups. Every look-up-derived
// field is a pointer; nil means the look-up failed or the id was missing.
type EnrichedLaunchRecord struct {
	FlightNumber   int
	DateUTC        string
	BoosterVersion *string
	PayloadMass    *float64
	Orbit          *string
	LaunchSite     *string
	Outcome        string
	Flights        *int
	GridFins       *bool
	Reused         *bool
	Legs           *bool
	LandingPad     *string
	Block          *int
	ReusedCount    *int
	Serial         *string
	Longitude      *float64
	Latitude       *float64
}

// LaunchReport holds the computed analytics over the enriched dataset.
type LaunchReport struct {
	TotalLaunches      int
	LaunchesBySite     map[string]int
	LandingAttempts    int
	LandingSuccesses   int
	AveragePayloadMass float64
	MaxPayloadMass     float64
	HeaviestLaunch     *EnrichedLaunchRecord
}
