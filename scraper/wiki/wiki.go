package wiki

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"

	"spacex-scraper/models"
	"spacex-scraper/utils"
)

// DefaultPageURL is the Wikipedia page listing Falcon 9 launches.
const DefaultPageURL = "https://en.wikipedia.org/wiki/List_of_Falcon_9_launches"

const (
	launchTableSelector = "table.wikitable"

	// maxRowTextLen rejects merged/footnote rows: a real launch row's
	// joined cell text stays well under this.
	maxRowTextLen = 200
)

// Scraper fetches the wiki page and parses its first launch table into
// the scraped tabular shape.
type Scraper struct {
	http   *resty.Client
	logger *utils.Logger
}

// New creates a wiki Scraper.
func New(logger *utils.Logger) *Scraper {
	return &Scraper{
		http:   resty.New(),
		logger: logger,
	}
}

// FetchPage performs a single GET for the page HTML. A failure here is
// terminal for the wiki pipeline.
func (s *Scraper) FetchPage(url string) (string, error) {
	res, err := s.http.R().Get(url)
	if err != nil {
		return "", fmt.Errorf("wiki: fetch %s: %w", url, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("wiki: fetch %s: status %d", url, res.StatusCode())
	}
	return res.String(), nil
}

// ParseLaunchTable extracts the first wikitable from the page HTML.
//
// Header names come from the first row's th cells. Every later row is
// rejected when it has fewer cells than there are headers or when its
// joined text exceeds maxRowTextLen characters; the length guard wins
// over the padding fallback below, so only rows with exactly the header
// cell count ever reach the pad step.
func (s *Scraper) ParseLaunchTable(pageHTML string) (*models.ScrapedTable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("wiki: parse document: %w", err)
	}

	table := doc.Find(launchTableSelector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("wiki: no %s element found", launchTableSelector)
	}

	rows := table.Find("tr")
	var headers []string
	rows.First().Find("th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, cellText(th))
	})
	if len(headers) == 0 {
		return nil, fmt.Errorf("wiki: launch table has no header row")
	}

	scraped := &models.ScrapedTable{Headers: headers}
	dropped := 0

	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cellText(cell))
		})
		if len(cells) == 0 {
			return
		}

		if len(cells) < len(headers) || utf8.RuneCountInString(strings.Join(cells, " ")) > maxRowTextLen {
			dropped++
			return
		}

		// Unreachable after the < check above; kept so a row with a
		// trailing gap is padded rather than mis-zipped.
		for len(cells) < len(headers) {
			cells = append(cells, "")
		}

		launchRow := make(models.ScrapedLaunchRow, len(headers))
		for i, h := range headers {
			launchRow[h] = cells[i]
		}
		scraped.Rows = append(scraped.Rows, launchRow)
	})

	s.logger.Info("[wiki] Parsed launch table: %d columns, %d rows (%d rejected)",
		len(headers), len(scraped.Rows), dropped)
	return scraped, nil
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// cellText extracts a cell's visible text: each text node is trimmed,
// empty nodes are skipped, and the survivors are joined with single
// spaces.
func cellText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(node *html.Node, parts *[]string) {
	if node.Type == html.TextNode {
		text := strings.TrimSpace(innerWhitespace.ReplaceAllString(node.Data, " "))
		if text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}
