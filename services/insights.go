package services

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"spacex-scraper/models"
	"spacex-scraper/utils"
)

// InsightService computes summary analytics over the enriched dataset.
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates an InsightService with the given logger.
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes a LaunchReport from the enriched records.
func (s *InsightService) Generate(records []*models.EnrichedLaunchRecord) *models.LaunchReport {
	report := &models.LaunchReport{
		LaunchesBySite: make(map[string]int),
	}
	if len(records) == 0 {
		return report
	}

	report.TotalLaunches = len(records)

	var massTotal float64
	var massCount int

	for _, r := range records {
		if r.LaunchSite != nil {
			report.LaunchesBySite[*r.LaunchSite]++
		}
		if strings.HasPrefix(r.Outcome, "true ") {
			report.LandingAttempts++
			report.LandingSuccesses++
		} else if strings.HasPrefix(r.Outcome, "false ") {
			report.LandingAttempts++
		}
		if r.PayloadMass != nil {
			massTotal += *r.PayloadMass
			massCount++
			if *r.PayloadMass > report.MaxPayloadMass {
				report.MaxPayloadMass = *r.PayloadMass
				report.HeaviestLaunch = r
			}
		}
	}

	if massCount > 0 {
		report.AveragePayloadMass = massTotal / float64(massCount)
	}

	return report
}

// Print renders the report to stdout.
func (s *InsightService) Print(r *models.LaunchReport) {
	summary := table.NewWriter()
	summary.SetOutputMirror(os.Stdout)
	summary.SetTitle("Launch Dataset Summary")
	summary.AppendRows([]table.Row{
		{"Total launches", r.TotalLaunches},
		{"Landing attempts", r.LandingAttempts},
		{"Landing successes", r.LandingSuccesses},
		{"Average payload mass (kg)", fmt.Sprintf("%.1f", r.AveragePayloadMass)},
		{"Max payload mass (kg)", fmt.Sprintf("%.1f", r.MaxPayloadMass)},
	})
	if r.HeaviestLaunch != nil {
		summary.AppendRow(table.Row{"Heaviest launch (flight no.)", r.HeaviestLaunch.FlightNumber})
	}
	summary.SetStyle(table.StyleRounded)
	summary.Render()

	if len(r.LaunchesBySite) == 0 {
		return
	}

	sites := make([]string, 0, len(r.LaunchesBySite))
	for site := range r.LaunchesBySite {
		sites = append(sites, site)
	}
	sort.Slice(sites, func(i, j int) bool {
		return r.LaunchesBySite[sites[i]] > r.LaunchesBySite[sites[j]]
	})

	bySite := table.NewWriter()
	bySite.SetOutputMirror(os.Stdout)
	bySite.AppendHeader(table.Row{"Launch Site", "Launches"})
	for _, site := range sites {
		bySite.AppendRow(table.Row{site, r.LaunchesBySite[site]})
	}
	bySite.SetStyle(table.StyleRounded)
	bySite.Render()
}
