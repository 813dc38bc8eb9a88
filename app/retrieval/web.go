package retrieval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const maxFetchSize = 5 << 20

var _ Source = &Web{}

// Web gathers material by fetching a fixed set of pages and extracting
// their readable text.
type Web struct {
	urls       []string
	httpClient *http.Client
}

func NewWeb(urls []string) *Web {
	return &Web{
		urls:       urls,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

func (w *Web) Gather(ctx context.Context, topic string) (string, error) {
	if len(w.urls) == 0 {
		return "", errors.New("web source has no urls configured")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Web Search Results for: %s\n", topic))
	for i, u := range w.urls {
		text, err := w.fetchText(ctx, u)
		if err != nil {
			return "", fmt.Errorf("gather %s: %w", u, err)
		}
		sb.WriteString(fmt.Sprintf("\nSource %d: %s\n%s\n", i+1, u, text))
	}
	return sb.String(), nil
}

func (w *Web) fetchText(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("invalid url: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ Error fetching URL content %s: %v\n", rawURL, err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("⚠️ URL %s returned status code: %d\n", rawURL, resp.StatusCode)
		return "", fmt.Errorf("failed to fetch URL content: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	limited := io.LimitReader(resp.Body, maxFetchSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return "", err
	}

	return extractText(string(body))
}

func extractText(rawHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			t := strings.TrimSpace(n.Data)
			if t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " "), nil
}
