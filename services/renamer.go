package services

import (
	"spacex-scraper/models"
	"spacex-scraper/utils"
)

// columnRenames maps scraped wiki header text to canonical output column
// names. Headers not listed here pass through unchanged.
var columnRenames = map[string]string{
	"Flight":          "Flight No.",
	"Launch site":     "Launch site",
	"Payload":         "Payload",
	"Payload mass":    "PayloadMass",
	"Orbit":           "Orbit",
	"Customer":        "Customer",
	"Launch outcome":  "Launch outcome",
	"Booster":         "Version Booster",
	"Booster landing": "Booster landing",
	"Date":            "Date",
	"Time":            "Time",
}

// Renamer applies the canonical column names to a scraped table.
type Renamer struct {
	logger *utils.Logger
}

// NewRenamer creates a Renamer.
func NewRenamer(logger *utils.Logger) *Renamer {
	return &Renamer{logger: logger}
}

// Rename returns a copy of the scraped table with known headers renamed.
// It is a pure rename: no reordering, no value transformation.
func (r *Renamer) Rename(scraped *models.ScrapedTable) *models.ScrapedTable {
	renamed := 0
	out := &models.ScrapedTable{
		Headers: make([]string, len(scraped.Headers)),
		Rows:    make([]models.ScrapedLaunchRow, 0, len(scraped.Rows)),
	}

	for i, h := range scraped.Headers {
		if canonical, ok := columnRenames[h]; ok {
			out.Headers[i] = canonical
			if canonical != h {
				renamed++
			}
			continue
		}
		out.Headers[i] = h
	}

	for _, row := range scraped.Rows {
		newRow := make(models.ScrapedLaunchRow, len(row))
		for h, cell := range row {
			if canonical, ok := columnRenames[h]; ok {
				newRow[canonical] = cell
				continue
			}
			newRow[h] = cell
		}
		out.Rows = append(out.Rows, newRow)
	}

	r.logger.Info("[renamer] Renamed %d of %d columns", renamed, len(scraped.Headers))
	return out
}
