package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"creator-toolkit/internal/config"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Client talks to the unofficial Google Trends widget API. The endpoint is an
// informal contract: responses carry an XSSI prefix before the JSON body, and
// a session cookie must be primed before the first query.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tz         int
	primeOnce  sync.Once
}

func NewClient(cfg *config.TrendsConfig) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second, Jar: jar},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tz:         cfg.Timezone,
	}
}

type exploreRequest struct {
	ComparisonItem []comparisonItem `json:"comparisonItem"`
	Category       int              `json:"category"`
	Property       string           `json:"property"`
}

type comparisonItem struct {
	Keyword string `json:"keyword"`
	Geo     string `json:"geo"`
	Time    string `json:"time"`
}

type exploreResponse struct {
	Widgets []struct {
		ID      string          `json:"id"`
		Token   string          `json:"token"`
		Request json.RawMessage `json:"request"`
	} `json:"widgets"`
}

type multilineResponse struct {
	Default struct {
		TimelineData []struct {
			Value []int `json:"value"`
		} `json:"timelineData"`
	} `json:"default"`
}

// Score returns a 0-10 popularity estimate for keyword over the last twelve
// months of video search interest. ok is false when the service has no data
// or any step fails; the caller falls back to its own estimate.
func (c *Client) Score(ctx context.Context, keyword string) (int, bool) {
	c.primeOnce.Do(func() { c.prime(ctx) })

	token, widgetReq, err := c.explore(ctx, keyword)
	if err != nil {
		return 0, false
	}

	values, err := c.interestOverTime(ctx, token, widgetReq)
	if err != nil || len(values) == 0 {
		return 0, false
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	avg := sum / len(values)

	return int(math.Round(math.Min(float64(avg)/10, 10))), true
}

// prime fetches the landing page once so the API calls carry a valid cookie.
func (c *Client) prime(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/trends/?geo=US", nil)
	if err != nil {
		return
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func (c *Client) explore(ctx context.Context, keyword string) (string, json.RawMessage, error) {
	payload, err := json.Marshal(exploreRequest{
		ComparisonItem: []comparisonItem{{Keyword: keyword, Geo: "", Time: "today 12-m"}},
		Category:       0,
		Property:       "youtube",
	})
	if err != nil {
		return "", nil, err
	}

	q := url.Values{}
	q.Set("hl", "en-US")
	q.Set("tz", fmt.Sprintf("%d", c.tz))
	q.Set("req", string(payload))

	body, err := c.get(ctx, c.baseURL+"/trends/api/explore?"+q.Encode())
	if err != nil {
		return "", nil, err
	}

	var parsed exploreResponse
	if err := json.Unmarshal(stripXSSIPrefix(body), &parsed); err != nil {
		return "", nil, fmt.Errorf("unexpected explore response shape: %w", err)
	}

	for _, w := range parsed.Widgets {
		if w.ID == "TIMESERIES" {
			return w.Token, w.Request, nil
		}
	}
	return "", nil, fmt.Errorf("no timeseries widget for %q", keyword)
}

func (c *Client) interestOverTime(ctx context.Context, token string, widgetReq json.RawMessage) ([]int, error) {
	q := url.Values{}
	q.Set("hl", "en-US")
	q.Set("tz", fmt.Sprintf("%d", c.tz))
	q.Set("req", string(widgetReq))
	q.Set("token", token)

	body, err := c.get(ctx, c.baseURL+"/trends/api/widgetdata/multiline?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var parsed multilineResponse
	if err := json.Unmarshal(stripXSSIPrefix(body), &parsed); err != nil {
		return nil, fmt.Errorf("unexpected widgetdata response shape: %w", err)
	}

	var values []int
	for _, point := range parsed.Default.TimelineData {
		if len(point.Value) > 0 {
			values = append(values, point.Value[0])
		}
	}
	return values, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends request returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// stripXSSIPrefix drops the ")]}'," guard Google prepends to API responses.
func stripXSSIPrefix(body []byte) []byte {
	idx := strings.IndexByte(string(body), '{')
	if idx < 0 {
		return body
	}
	return body[idx:]
}
