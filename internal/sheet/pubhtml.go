package sheet

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PublishedClient fetches the "publish to web" HTML rendition of the sheet.
// It is the fallback source for deployments without an API key: the
// published page needs no credentials.
type PublishedClient struct {
	client *http.Client
	url    string
}

// NewPublishedClient creates a client for a published-sheet URL.
func NewPublishedClient(url string) *PublishedClient {
	return &PublishedClient{
		client: &http.Client{Timeout: Timeout},
		url:    url,
	}
}

// FetchTable fetches the published page and extracts its data table.
func (c *PublishedClient) FetchTable() (*Table, error) {
	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching published sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ParsePublishedHTML(resp.Body)
}

// ParsePublishedHTML extracts the first HTML table as a header row plus data
// rows. Google's published pages prepend a spreadsheet-style row-number
// column; cells marked as row headers are skipped.
func ParsePublishedHTML(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var rows [][]string
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		empty := true
		tr.Find("td, th").Each(func(_ int, td *goquery.Selection) {
			if td.HasClass("row-headers-background") || td.HasClass("freezebar-cell") {
				return
			}
			text := strings.TrimSpace(td.Text())
			if text != "" {
				empty = false
			}
			cells = append(cells, text)
		})
		if len(cells) > 0 && !empty {
			rows = append(rows, cells)
		}
	})

	if len(rows) < 2 {
		return nil, ErrNoData
	}

	return &Table{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}
