package storage

import "spacex-scraper/models"

// TableWriter is the interface any export backend must satisfy.
type TableWriter interface {
	Write(table *models.Table, path string) error
}
