package app

import (
	"context"
	"errors"
	"fmt"

	"phyrexian-cardlist/internal/checksum"
	"phyrexian-cardlist/internal/config"
	"phyrexian-cardlist/internal/fetcher"
	"phyrexian-cardlist/internal/observability"
	"phyrexian-cardlist/internal/scraper"
	"phyrexian-cardlist/internal/storage"
)

// ErrFetch оборачивает любые транспортные ошибки загрузки страницы
var ErrFetch = errors.New("fetch failed")

// PageFetcher — HTTP или headless загрузчик страницы листинга
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (*fetcher.FetchResponse, error)
}

type Outcome int

const (
	OutcomeRecords Outcome = iota
	OutcomeEmpty
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRecords:
		return "records"
	case OutcomeEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// PageResult — нефатальный итог страницы. Пустая страница тоже успех.
type PageResult struct {
	Page       int
	Outcome    Outcome
	Fragments  int
	Records    []*scraper.CardRecord
	Duplicates int
}

// PageError — фатальная ошибка страницы, после неё прогон останавливается
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

type RunStats struct {
	PagesProcessed int
	EmptyPages     int
	CardsWritten   int
	Duplicates     int
	StoppedReason  string
}

type Orchestrator struct {
	cfg     *config.Config
	logger  *observability.Logger
	console *observability.Console
	fetcher PageFetcher
	scraper *scraper.Scraper
	pacer   *fetcher.Pacer
	seen    *checksum.Seen
}

func NewOrchestrator(
	cfg *config.Config,
	logger *observability.Logger,
	console *observability.Console,
	f PageFetcher,
	s *scraper.Scraper,
	p *fetcher.Pacer,
) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		logger:  logger,
		console: console,
		fetcher: f,
		scraper: s,
		pacer:   p,
		seen:    checksum.NewSeen(checksum.NewGenerator()),
	}
}

// Run обходит страницы 1..site.pages строго по порядку.
// Первая *PageError останавливает прогон; записанное в sink остаётся.
func (o *Orchestrator) Run(ctx context.Context, sink storage.Sink) (*RunStats, error) {
	maxPages := o.cfg.Site.Pages

	o.logger.Info("Starting pagination",
		"base_url", o.cfg.Site.BaseURL,
		"card_set", o.cfg.Site.CardSet,
		"max_pages", maxPages,
		"output", sink.Path(),
	)

	stats := &RunStats{}

	for pageNum := 1; pageNum <= maxPages; pageNum++ {
		o.console.PageStarted(pageNum)
		o.logger.Info("Processing page", "page", pageNum)

		result, err := o.ProcessPage(ctx, pageNum, sink)
		if result != nil {
			stats.CardsWritten += len(result.Records)
			stats.Duplicates += result.Duplicates
		}
		if err != nil {
			o.console.Failed(err)
			o.logger.Error("Page failed, stopping",
				"page", pageNum,
				"error", err.Error(),
			)
			stats.StoppedReason = fmt.Sprintf("error at page %d: %v", pageNum, err)
			return stats, err
		}

		stats.PagesProcessed++

		if result.Outcome == OutcomeEmpty {
			stats.EmptyPages++
			o.console.PageEmpty(pageNum)
			o.logger.Warn("No cards found on page", "page", pageNum)
			continue
		}

		o.logger.Info("Page analysis",
			"page", pageNum,
			"fragments", result.Fragments,
			"cards", len(result.Records),
			"duplicates", result.Duplicates,
		)

		if pageNum == maxPages {
			break
		}
		if err := o.pacer.Wait(ctx); err != nil {
			stats.StoppedReason = fmt.Sprintf("interrupted after page %d", pageNum)
			return stats, &PageError{Page: pageNum, Err: err}
		}
	}

	stats.StoppedReason = "completed"

	o.logger.Info("Pagination completed",
		"total_pages", stats.PagesProcessed,
		"empty_pages", stats.EmptyPages,
		"total_cards", stats.CardsWritten,
		"duplicates", stats.Duplicates,
	)

	return stats, nil
}

// ProcessPage загружает, разбирает и записывает одну страницу.
// При ошибке разбора карточки до сбойного фрагмента уже записаны и есть в результате.
func (o *Orchestrator) ProcessPage(ctx context.Context, pageNum int, sink storage.Sink) (*PageResult, error) {
	resp, err := o.fetcher.FetchPage(ctx, pageNum)
	if err != nil {
		return nil, &PageError{Page: pageNum, Err: fmt.Errorf("%w: %w", ErrFetch, err)}
	}

	if resp.StatusCode != 0 && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		o.logger.Warn("Unexpected status, parsing body anyway",
			"page", pageNum,
			"url", resp.URL,
			"status", resp.StatusCode,
		)
	}

	listing, parseErr := o.scraper.ParseListing(string(resp.Body))
	if listing == nil {
		return nil, &PageError{Page: pageNum, Err: parseErr}
	}

	result := &PageResult{
		Page:      pageNum,
		Outcome:   OutcomeRecords,
		Fragments: listing.Fragments,
	}
	if listing.Fragments == 0 {
		result.Outcome = OutcomeEmpty
		return result, nil
	}

	opts := scraper.RenderOptions{
		SetLabel:    o.cfg.Site.SetLabel,
		CostLetters: o.cfg.Output.CostLetters,
	}

	for _, card := range listing.Records {
		if err := sink.WriteBlock(scraper.Render(card, opts)); err != nil {
			return result, &PageError{Page: pageNum, Err: err}
		}
		result.Records = append(result.Records, card)
		o.console.CardWritten(card.Name)

		if firstPage, dup := o.seen.Add(card, pageNum); dup {
			result.Duplicates++
			o.logger.Warn("Card already written on an earlier page",
				"page", pageNum,
				"first_page", firstPage,
				"name", card.Name,
			)
		}
	}

	if parseErr != nil {
		return result, &PageError{Page: pageNum, Err: parseErr}
	}

	return result, nil
}
