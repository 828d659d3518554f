package services

import (
	"strconv"

	"spacex-scraper/models"
	"spacex-scraper/scraper/spacex"
	"spacex-scraper/utils"
)

// excludedBooster is dropped from the final table at assembly time.
const excludedBooster = "Falcon 1"

// launchColumns is the fixed column order of the API pipeline's output.
var launchColumns = []string{
	"FlightNumber", "Date", "BoosterVersion", "PayloadMass", "Orbit",
	"LaunchSite", "Outcome", "Flights", "GridFins", "Reused", "Legs",
	"LandingPad", "Block", "ReusedCount", "Serial", "Longitude", "Latitude",
}

// LaunchAPI is the dependent look-up surface the enricher needs. Every
// method returns nil when the resource is absent.
type LaunchAPI interface {
	Rocket(id string) *spacex.Rocket
	Payload(id string) *spacex.Payload
	Launchpad(id string) *spacex.Launchpad
	Core(id string) *spacex.Core
}

// Enricher joins each RawLaunchRecord with its dependent look-ups. The
// per-record look-ups are independent, so they run through a worker pool;
// each record writes only its own output slot, which keeps the assembled
// sequence in the original record order.
type Enricher struct {
	api    LaunchAPI
	pool   *utils.WorkerPool
	logger *utils.Logger
}

// NewEnricher creates an Enricher running look-ups through the given pool.
func NewEnricher(api LaunchAPI, pool *utils.WorkerPool, logger *utils.Logger) *Enricher {
	return &Enricher{api: api, pool: pool, logger: logger}
}

// Enrich resolves every record's dependent look-ups. A failed look-up
// leaves that group's fields nil; the record itself always survives.
func (e *Enricher) Enrich(records []*models.RawLaunchRecord) []*models.EnrichedLaunchRecord {
	enriched := make([]*models.EnrichedLaunchRecord, len(records))

	for i, rec := range records {
		i, rec := i, rec
		e.pool.Submit(func() {
			enriched[i] = e.enrichOne(rec)
		})
	}
	e.pool.Wait()

	e.logger.Info("[enricher] Enriched %d launch records", len(enriched))
	return enriched
}

func (e *Enricher) enrichOne(rec *models.RawLaunchRecord) *models.EnrichedLaunchRecord {
	out := &models.EnrichedLaunchRecord{
		FlightNumber: rec.FlightNumber,
		DateUTC:      rec.DateUTC,

		// Core-usage pass-through, independent of the core look-up.
		Outcome:    formatBool(rec.Core.LandingSuccess) + " " + formatString(rec.Core.LandingType),
		Flights:    rec.Core.Flight,
		GridFins:   rec.Core.GridFins,
		Reused:     rec.Core.Reused,
		Legs:       rec.Core.Legs,
		LandingPad: rec.Core.LandingPad,
	}

	if rocket := e.api.Rocket(rec.RocketID); rocket != nil {
		out.BoosterVersion = rocket.Name
	}
	if payload := e.api.Payload(rec.PayloadID); payload != nil {
		out.PayloadMass = payload.MassKg
		out.Orbit = payload.Orbit
	}
	if pad := e.api.Launchpad(rec.LaunchpadID); pad != nil {
		out.LaunchSite = pad.Name
		out.Longitude = pad.Longitude
		out.Latitude = pad.Latitude
	}
	if rec.Core.CoreID != nil {
		if core := e.api.Core(*rec.Core.CoreID); core != nil {
			out.Block = core.Block
			out.ReusedCount = core.ReuseCount
			out.Serial = core.Serial
		}
	}

	return out
}

// Assemble renders the enriched records into the final table, dropping
// every record whose booster version is the excluded label.
func (e *Enricher) Assemble(records []*models.EnrichedLaunchRecord) *models.Table {
	t := &models.Table{Columns: launchColumns}
	for _, r := range records {
		if r.BoosterVersion != nil && *r.BoosterVersion == excludedBooster {
			continue
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.FlightNumber),
			r.DateUTC,
			formatString(r.BoosterVersion),
			formatFloat(r.PayloadMass),
			formatString(r.Orbit),
			formatString(r.LaunchSite),
			r.Outcome,
			formatInt(r.Flights),
			formatBool(r.GridFins),
			formatBool(r.Reused),
			formatBool(r.Legs),
			formatString(r.LandingPad),
			formatInt(r.Block),
			formatInt(r.ReusedCount),
			formatString(r.Serial),
			formatFloat(r.Longitude),
			formatFloat(r.Latitude),
		})
	}

	e.logger.Info("[enricher] Assembled final table: %d rows (filtered %d %q records)",
		len(t.Rows), len(records)-len(t.Rows), excludedBooster)
	return t
}

// Absent values render as empty cells everywhere in the output.

func formatString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func formatBool(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}

func formatInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
