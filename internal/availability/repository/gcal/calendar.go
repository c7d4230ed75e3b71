package gcal

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"rental-availability/internal/model"
	"rental-availability/pkg/gcalendar"
	pkgLog "rental-availability/pkg/log"
)

const (
	defaultCacheTTL     = 5 * time.Minute
	defaultFetchTimeout = 10 * time.Second
	cacheSize           = 64
)

// BusySource is the slice of the calendar client this repository needs.
type BusySource interface {
	ListBusy(ctx context.Context, req gcalendar.ListBusyRequest) ([]gcalendar.BusyBlock, error)
}

// Repository fetches booked intervals from Google Calendar. Fetched windows
// are cached with a bounded TTL so concurrent requests over the same window
// don't refetch; a cold or expired entry always hits the feed.
type Repository struct {
	l            pkgLog.Logger
	source       BusySource
	calendarID   string
	fetchTimeout time.Duration
	cache        *expirable.LRU[string, []model.BookedInterval]
}

// Config holds the repository settings.
type Config struct {
	CalendarID   string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
}

// New creates a calendar repository backed by the given busy source.
func New(l pkgLog.Logger, source BusySource, cfg Config) *Repository {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Repository{
		l:            l,
		source:       source,
		calendarID:   cfg.CalendarID,
		fetchTimeout: timeout,
		cache:        expirable.NewLRU[string, []model.BookedInterval](cacheSize, nil, ttl),
	}
}

// BusyIntervals implements repository.CalendarRepository.
func (r *Repository) BusyIntervals(ctx context.Context, from, to time.Time) ([]model.BookedInterval, error) {
	key := from.Format("2006-01-02") + "/" + to.Format("2006-01-02")
	if intervals, ok := r.cache.Get(key); ok {
		return intervals, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	blocks, err := r.source.ListBusy(fetchCtx, gcalendar.ListBusyRequest{
		CalendarID: r.calendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		return nil, fmt.Errorf("list busy %s: %w", key, err)
	}

	intervals := make([]model.BookedInterval, 0, len(blocks))
	for _, b := range blocks {
		intervals = append(intervals, model.BookedInterval{Start: b.Start, End: b.End})
	}

	r.cache.Add(key, intervals)
	r.l.Debugf(ctx, "calendar window %s: %d busy intervals", key, len(intervals))
	return intervals, nil
}
