package fetcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"phyrexian-cardlist/internal/config"
	"phyrexian-cardlist/internal/observability"
)

// RodFetcher отдаёт HTML после отрисовки страницы в headless Chromium.
// Браузер запускается при первом запросе и живёт до Close.
type RodFetcher struct {
	cfg    *config.Config
	logger *observability.Logger

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

func NewRodFetcher(cfg *config.Config, logger *observability.Logger) *RodFetcher {
	return &RodFetcher{
		cfg:    cfg,
		logger: logger,
	}
}

func (r *RodFetcher) FetchPage(ctx context.Context, pageNum int) (*FetchResponse, error) {
	pageURL, err := PageURL(r.cfg.Site, pageNum)
	if err != nil {
		return nil, err
	}

	browser, err := r.connect()
	if err != nil {
		return nil, err
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open tab: %w", err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			r.logger.Warn("Failed to close tab", "error", err.Error())
		}
	}()

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: r.cfg.HTTP.UserAgent}); err != nil {
		return nil, fmt.Errorf("set user agent: %w", err)
	}

	timed := page.Timeout(r.cfg.GetRodPageTimeout())
	if err := timed.Navigate(pageURL); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", pageURL, err)
	}
	if err := timed.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load %s: %w", pageURL, err)
	}

	if delay := r.cfg.GetRodLazyLoadDelay(); delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	html, err := timed.HTML()
	if err != nil {
		return nil, fmt.Errorf("read html %s: %w", pageURL, err)
	}

	r.logger.Debug("Page rendered", "url", pageURL, "body_size", len(html))

	// Статус ответа браузер не сообщает, 0 означает "неизвестен"
	return &FetchResponse{
		Body: []byte(html),
		URL:  pageURL,
	}, nil
}

func (r *RodFetcher) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().Headless(true)
	if r.cfg.Rod.ChromePath != "" {
		l = l.Bin(r.cfg.Rod.ChromePath)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	r.launcher = l
	r.browser = browser
	return browser, nil
}

func (r *RodFetcher) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}

	err := r.browser.Close()
	r.launcher.Kill()
	r.browser = nil
	r.launcher = nil
	return err
}
