package services

import (
	"time"

	"spacex-scraper/models"
	"spacex-scraper/scraper/spacex"
	"spacex-scraper/utils"
)

// Normalizer flattens the primary launch listing into RawLaunchRecords.
//
// The data model only supports single-payload, single-core launches, so
// entries with any other cardinality are dropped before enrichment, as are
// entries dated after the cutoff.
type Normalizer struct {
	cutoff time.Time
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given inclusive cutoff date.
func NewNormalizer(cutoff time.Time, logger *utils.Logger) *Normalizer {
	return &Normalizer{cutoff: cutoff, logger: logger}
}

// Normalize is a pure function of its input and the cutoff: it projects
// each entry down to the consumed fields, drops entries whose core or
// payload list is not a singleton, unwraps the singletons, derives a plain
// date from the UTC timestamp and drops entries past the cutoff. Relative
// order is preserved.
func (n *Normalizer) Normalize(launches []spacex.Launch) []*models.RawLaunchRecord {
	records := make([]*models.RawLaunchRecord, 0, len(launches))

	for _, l := range launches {
		if len(l.Cores) != 1 || len(l.Payloads) != 1 {
			n.logger.Debug("[normalizer] Flight %d skipped: %d cores, %d payloads",
				l.FlightNumber, len(l.Cores), len(l.Payloads))
			continue
		}

		ts, err := time.Parse(time.RFC3339, l.DateUTC)
		if err != nil {
			n.logger.Warn("[normalizer] Flight %d skipped: bad date_utc %q: %v",
				l.FlightNumber, l.DateUTC, err)
			continue
		}
		ts = ts.UTC()
		date := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)

		if date.After(n.cutoff) {
			continue
		}

		records = append(records, &models.RawLaunchRecord{
			FlightNumber: l.FlightNumber,
			DateUTC:      l.DateUTC,
			Date:         date,
			RocketID:     l.Rocket,
			PayloadID:    l.Payloads[0],
			LaunchpadID:  l.Launchpad,
			Core:         l.Cores[0],
		})
	}

	n.logger.Info("[normalizer] Normalized %d → %d launch records (dropped %d)",
		len(launches), len(records), len(launches)-len(records))
	return records
}
