package services

import (
	"reflect"
	"testing"
	"time"

	"spacex-scraper/models"
	"spacex-scraper/scraper/spacex"
	"spacex-scraper/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

func testCutoff() time.Time {
	return time.Date(2020, 11, 13, 0, 0, 0, 0, time.UTC)
}

func coreUsage(id *string) models.CoreUsage {
	return models.CoreUsage{CoreID: id}
}

func launchEntry(flight int, date string, payloads int, cores int) spacex.Launch {
	l := spacex.Launch{
		Rocket:       "rocket-1",
		Launchpad:    "pad-1",
		FlightNumber: flight,
		DateUTC:      date,
	}
	for i := 0; i < payloads; i++ {
		l.Payloads = append(l.Payloads, "payload")
	}
	coreID := "core-1"
	for i := 0; i < cores; i++ {
		l.Cores = append(l.Cores, coreUsage(&coreID))
	}
	return l
}

func TestNormalizeDropsNonSingletonLists(t *testing.T) {
	n := NewNormalizer(testCutoff(), newTestLogger())

	input := []spacex.Launch{
		launchEntry(1, "2018-01-01T12:00:00.000Z", 1, 1),
		launchEntry(2, "2018-02-01T12:00:00.000Z", 2, 1),
		launchEntry(3, "2018-03-01T12:00:00.000Z", 1, 2),
		launchEntry(4, "2018-04-01T12:00:00.000Z", 0, 1),
		launchEntry(5, "2018-05-01T12:00:00.000Z", 1, 1),
	}

	records := n.Normalize(input)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].FlightNumber != 1 || records[1].FlightNumber != 5 {
		t.Errorf("wrong records kept: flights %d, %d", records[0].FlightNumber, records[1].FlightNumber)
	}
}

func TestNormalizeUnwrapsSingletons(t *testing.T) {
	n := NewNormalizer(testCutoff(), newTestLogger())

	records := n.Normalize([]spacex.Launch{launchEntry(7, "2019-06-12T09:30:00.000Z", 1, 1)})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.PayloadID != "payload" {
		t.Errorf("PayloadID: got %q, want %q", r.PayloadID, "payload")
	}
	if r.Core.CoreID == nil || *r.Core.CoreID != "core-1" {
		t.Errorf("Core.CoreID not unwrapped: %+v", r.Core)
	}
	if r.DateUTC != "2019-06-12T09:30:00.000Z" {
		t.Errorf("DateUTC: got %q", r.DateUTC)
	}
	want := time.Date(2019, 6, 12, 0, 0, 0, 0, time.UTC)
	if !r.Date.Equal(want) {
		t.Errorf("Date: got %v, want %v", r.Date, want)
	}
}

func TestNormalizeCutoffBoundary(t *testing.T) {
	n := NewNormalizer(testCutoff(), newTestLogger())

	input := []spacex.Launch{
		launchEntry(1, "2020-11-13T23:59:00.000Z", 1, 1), // exactly at cutoff: kept
		launchEntry(2, "2020-11-14T00:01:00.000Z", 1, 1), // one day after: dropped
	}

	records := n.Normalize(input)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].FlightNumber != 1 {
		t.Errorf("kept flight %d, want 1", records[0].FlightNumber)
	}
}

func TestNormalizeDropsBadDates(t *testing.T) {
	n := NewNormalizer(testCutoff(), newTestLogger())

	records := n.Normalize([]spacex.Launch{launchEntry(1, "not-a-date", 1, 1)})
	if len(records) != 0 {
		t.Fatalf("expected 0 records, got %d", len(records))
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := NewNormalizer(testCutoff(), newTestLogger())

	input := []spacex.Launch{
		launchEntry(1, "2018-01-01T12:00:00.000Z", 1, 1),
		launchEntry(2, "2018-02-01T12:00:00.000Z", 2, 1),
		launchEntry(3, "2018-03-01T12:00:00.000Z", 1, 1),
	}

	first := n.Normalize(input)
	second := n.Normalize(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization is not a pure function of its input")
	}
}
