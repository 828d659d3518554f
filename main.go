package main

import (
	"os"
	"time"

	"spacex-scraper/config"
	"spacex-scraper/scraper/spacex"
	"spacex-scraper/scraper/wiki"
	"spacex-scraper/services"
	"spacex-scraper/storage"
	"spacex-scraper/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== SpaceX Launch Data Collection starting ===")
	logger.Info("Config — cutoff: %s | concurrency: %d | rate: %dms",
		cfg.CutoffDate.Format("2006-01-02"), cfg.MaxConcurrency, cfg.RateLimitMs)

	csvWriter := storage.NewCSVWriter(logger)

	apiOK := runAPIPipeline(cfg, csvWriter, logger)
	wikiOK := runWikiPipeline(cfg, csvWriter, logger)

	if !apiOK && !wikiOK {
		os.Exit(1)
	}
}

// runAPIPipeline fetches the past-launch listing, normalizes and enriches
// it, and exports the assembled table. Returns false when the pipeline
// halted before producing output.
func runAPIPipeline(cfg *config.Config, csvWriter storage.TableWriter, logger *utils.Logger) bool {
	logger.Info("[api-pipeline] Starting — source: %s", cfg.APIBaseURL)

	client := spacex.NewClient(cfg.APIBaseURL, logger)

	launches, err := client.Launches()
	if err != nil {
		logger.Error("[api-pipeline] Primary listing fetch failed: %v", err)
		return false
	}
	logger.Info("[api-pipeline] Fetched %d listing entries", len(launches))

	normalizer := services.NewNormalizer(cfg.CutoffDate, logger)
	records := normalizer.Normalize(launches)
	if len(records) == 0 {
		logger.Error("[api-pipeline] No launch records survived normalization. Halting.")
		return false
	}

	pool := utils.NewWorkerPool(cfg.MaxConcurrency, time.Duration(cfg.RateLimitMs)*time.Millisecond)
	enricher := services.NewEnricher(client, pool, logger)
	enriched := enricher.Enrich(records)
	table := enricher.Assemble(enriched)

	if err := csvWriter.Write(table, cfg.APIOutputPath); err != nil {
		return false
	}

	insightSvc := services.NewInsightService(logger)
	insightSvc.Print(insightSvc.Generate(enriched))

	return true
}

// runWikiPipeline fetches the Falcon 9 launch-list page, parses the first
// wikitable, renames its columns and exports the result. Returns false
// when the pipeline halted before producing output.
func runWikiPipeline(cfg *config.Config, csvWriter storage.TableWriter, logger *utils.Logger) bool {
	logger.Info("[wiki-pipeline] Starting — source: %s", cfg.WikiPageURL)

	scraper := wiki.New(logger)

	pageHTML, err := scraper.FetchPage(cfg.WikiPageURL)
	if err != nil {
		logger.Error("[wiki-pipeline] Page fetch failed: %v", err)
		return false
	}

	scraped, err := scraper.ParseLaunchTable(pageHTML)
	if err != nil {
		logger.Error("[wiki-pipeline] Table parse failed: %v", err)
		return false
	}

	renamer := services.NewRenamer(logger)
	renamed := renamer.Rename(scraped)

	if err := csvWriter.Write(renamed.Table(), cfg.WikiOutputPath); err != nil {
		return false
	}
	return true
}
