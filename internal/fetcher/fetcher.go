package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"phyrexian-cardlist/internal/config"
	"phyrexian-cardlist/internal/observability"
)

type Fetcher struct {
	client *http.Client
	cfg    *config.Config
	logger *observability.Logger
}

type FetchResponse struct {
	StatusCode int
	Body       []byte
	URL        string
	Headers    http.Header
}

func NewFetcher(cfg *config.Config, logger *observability.Logger) *Fetcher {
	client := &http.Client{
		Timeout: cfg.GetTimeout(),
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &Fetcher{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// PageURL строит адрес страницы листинга. sort передаётся только со второй страницы.
func PageURL(site config.SiteConfig, page int) (string, error) {
	u, err := url.Parse(site.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	q := u.Query()
	q.Set("cardSet", site.CardSet)
	q.Set("booster", site.Booster)
	q.Set("page", strconv.Itoa(page))
	if page > 1 && site.Sort != "" {
		q.Set("sort", site.Sort)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// FetchPage делает ровно один GET без повторов. Статус не проверяется:
// страница с ошибкой обычно просто не содержит карточек.
func (f *Fetcher) FetchPage(ctx context.Context, page int) (*FetchResponse, error) {
	pageURL, err := PageURL(f.cfg.Site, page)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", f.cfg.HTTP.UserAgent)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.Warn("Failed to close response body", "error", err.Error())
		}
	}()

	reader := resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer func() { _ = gzipReader.Close() }()
		reader = gzipReader
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	body, encodingName, err := decodeBody(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", encodingName, err)
	}

	f.logger.Debug("Response received",
		"url", pageURL,
		"status", resp.StatusCode,
		"content_type", resp.Header.Get("Content-Type"),
		"encoding", encodingName,
		"body_size", len(body),
	)

	return &FetchResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		URL:        resp.Request.URL.String(),
		Headers:    resp.Header,
	}, nil
}

// decodeBody приводит тело к UTF-8: заголовок, <meta charset>, затем эвристика.
// Эвристика смотрит только первые 1024 байта, поэтому без явной кодировки
// валидный UTF-8 во всём теле оставляем как есть.
func decodeBody(raw []byte, contentType string) ([]byte, string, error) {
	enc, name, certain := charset.DetermineEncoding(raw, contentType)
	if name == "utf-8" {
		return raw, name, nil
	}
	if !certain && utf8.Valid(raw) {
		return raw, "utf-8", nil
	}
	body, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, name, err
	}
	return body, name, nil
}
