package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rental-availability/internal/availability"
	"rental-availability/internal/interpret"
	"rental-availability/internal/model"
	"rental-availability/internal/pricing"
	"rental-availability/pkg/datemath"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockCalendar struct {
	intervals []model.BookedInterval
	err       error

	from, to time.Time
	calls    int
}

func (m *mockCalendar) BusyIntervals(ctx context.Context, from, to time.Time) ([]model.BookedInterval, error) {
	m.calls++
	m.from, m.to = from, to
	if m.err != nil {
		return nil, m.err
	}
	return m.intervals, nil
}

// newTestUseCase wires a usecase with a UTC interpreter and a clock pinned to
// 1 March 2026, so relative queries resolve deterministically.
func newTestUseCase(t *testing.T, prices *pricing.Table, cal *mockCalendar) *implUseCase {
	t.Helper()

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	if cal == nil {
		cal = &mockCalendar{}
	}

	uc := New(mockLogger{}, interpret.New(parser), cal, prices, 0)
	uc.SetNow(func() time.Time { return day(2026, 3, 1) })
	return uc
}

func TestResolveSingleDate(t *testing.T) {
	ctx := context.Background()
	table := priceTable(day(2026, 7, 1), day(2026, 8, 1), 1500)

	t.Run("Requested week is free", func(t *testing.T) {
		uc := newTestUseCase(t, table, &mockCalendar{})

		out, err := uc.Resolve(ctx, availability.ResolveInput{Query: "4 July 2026"})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Mode != "single" {
			t.Errorf("mode = %q, want single", out.Mode)
		}
		if !out.Matched {
			t.Error("expected matched")
		}
		if out.Week == nil || !out.Week.Start.Equal(day(2026, 7, 4)) {
			t.Fatalf("week = %+v, want start 2026-07-04", out.Week)
		}
		if out.Week.Price == nil || *out.Week.Price != 1500 {
			t.Errorf("price = %v, want 1500", out.Week.Price)
		}
		if !strings.Contains(out.Message, "available") {
			t.Errorf("message %q should mention availability", out.Message)
		}
	})

	t.Run("Requested week is taken, nearest offered", func(t *testing.T) {
		cal := &mockCalendar{intervals: []model.BookedInterval{
			{Start: day(2026, 7, 4), End: day(2026, 7, 11)},
		}}
		uc := newTestUseCase(t, table, cal)

		out, err := uc.Resolve(ctx, availability.ResolveInput{Query: "4 July 2026"})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Matched {
			t.Error("booked week must not match")
		}
		if out.Week == nil || !out.Week.Start.Equal(day(2026, 7, 11)) {
			t.Fatalf("week = %+v, want nearest start 2026-07-11", out.Week)
		}
		if !strings.Contains(out.Message, "taken") {
			t.Errorf("message %q should say the week is taken", out.Message)
		}
	})

	t.Run("Midweek date snaps back to its Saturday", func(t *testing.T) {
		uc := newTestUseCase(t, table, &mockCalendar{})

		out, err := uc.Resolve(ctx, availability.ResolveInput{Query: "8 July 2026"})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Week == nil || !out.Week.Start.Equal(day(2026, 7, 4)) {
			t.Fatalf("week = %+v, want start 2026-07-04", out.Week)
		}
	})

	t.Run("Everything booked within lookahead", func(t *testing.T) {
		cal := &mockCalendar{intervals: []model.BookedInterval{
			{Start: day(2026, 6, 1), End: day(2026, 12, 1)},
		}}
		uc := newTestUseCase(t, table, cal)

		out, err := uc.Resolve(ctx, availability.ResolveInput{Query: "4 July 2026"})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Week != nil {
			t.Errorf("week = %+v, want nil", out.Week)
		}
		if out.Matched {
			t.Error("exhausted search must not match")
		}
	})
}

func TestResolveExactRange(t *testing.T) {
	ctx := context.Background()
	table := priceTable(day(2026, 8, 1), day(2026, 9, 1), 1800)

	t.Run("Free range matches with no alternative", func(t *testing.T) {
		uc := newTestUseCase(t, table, &mockCalendar{})

		out, err := uc.Resolve(ctx, availability.ResolveInput{Query: "10-17 Aug 2026"})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Mode != "range" {
			t.Errorf("mode = %q, want range", out.Mode)
		}
		if !out.Matched {
			t.Error("expected matched")
		}
		if out.Week == nil || !out.Week.Start.Equal(day(2026, 8, 8)) {
			t.Fatalf("week = %+v, want snapped start 2026-08-08", out.Week)
		}
		if out.Alternative != nil {
			t.Errorf("alternative = %+v, want nil", out.Alternative)
		}
	})

	t.Run("Taken range offers the nearest alternative", func(t *testing.T) {
		cal := &mockCalendar{intervals: []model.BookedInterval{
			{Start: day(2026, 8, 8), End: day(2026, 8, 15)},
		}}
		uc := newTestUseCase(t, table, cal)

		out, err := uc.Resolve(ctx, availability.ResolveInput{Query: "10-17 Aug 2026"})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Matched {
			t.Error("taken range must not match")
		}
		if out.Alternative == nil || !out.Alternative.Start.Equal(day(2026, 8, 15)) {
			t.Fatalf("alternative = %+v, want start 2026-08-15", out.Alternative)
		}
	})
}

func TestResolveVagueMonth(t *testing.T) {
	ctx := context.Background()
	// July priced, June not: the week of 27 June is excluded even though
	// the window snaps back into it.
	uc := newTestUseCase(t, priceTable(day(2026, 7, 1), day(2026, 8, 1), 1200), &mockCalendar{})

	out, err := uc.Resolve(ctx, availability.ResolveInput{Query: "anything in July 2026"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.Mode != "vagueRange" {
		t.Errorf("mode = %q, want vagueRange", out.Mode)
	}
	wantStarts := []time.Time{day(2026, 7, 4), day(2026, 7, 11), day(2026, 7, 18), day(2026, 7, 25)}
	if len(out.Weeks) != len(wantStarts) {
		t.Fatalf("got %d weeks, want %d", len(out.Weeks), len(wantStarts))
	}
	for i, w := range out.Weeks {
		if !w.Start.Equal(wantStarts[i]) {
			t.Errorf("weeks[%d].Start = %v, want %v", i, w.Start, wantStarts[i])
		}
		if w.Price == nil || *w.Price != 1200 {
			t.Errorf("weeks[%d].Price = %v, want 1200", i, w.Price)
		}
	}
	if !strings.Contains(out.Message, "July 2026") {
		t.Errorf("message %q should name the month window", out.Message)
	}
}

func TestResolveInvalidQuery(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(t, pricing.Empty(), cal)

	out, err := uc.Resolve(context.Background(), availability.ResolveInput{Query: "blorptastic nonsense"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.Mode != "invalid" {
		t.Errorf("mode = %q, want invalid", out.Mode)
	}
	if out.Message == "" {
		t.Error("invalid outcome should carry guidance")
	}
	if cal.calls != 0 {
		t.Errorf("calendar consulted %d times for an invalid query", cal.calls)
	}
}

func TestResolveCalendarError(t *testing.T) {
	cal := &mockCalendar{err: errors.New("feed down")}
	uc := newTestUseCase(t, pricing.Empty(), cal)

	_, err := uc.Resolve(context.Background(), availability.ResolveInput{Query: "4 July 2026"})
	if !errors.Is(err, availability.ErrCalendarUnavailable) {
		t.Fatalf("err = %v, want ErrCalendarUnavailable", err)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	uc := newTestUseCase(t, pricing.Empty(), nil)

	_, err := uc.Resolve(context.Background(), availability.ResolveInput{Query: "   "})
	if !errors.Is(err, availability.ErrEmptyQuery) {
		t.Fatalf("err = %v, want ErrEmptyQuery", err)
	}
}

func TestResolveLegacyPayload(t *testing.T) {
	ctx := context.Background()
	table := priceTable(day(2026, 7, 1), day(2026, 8, 1), 1400)

	t.Run("Single date field", func(t *testing.T) {
		uc := newTestUseCase(t, table, &mockCalendar{})

		out, err := uc.Resolve(ctx, availability.ResolveInput{Date: "2026-07-04"})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Mode != "single" {
			t.Errorf("mode = %q, want single", out.Mode)
		}
		if out.Week == nil || !out.Week.Start.Equal(day(2026, 7, 4)) {
			t.Fatalf("week = %+v, want start 2026-07-04", out.Week)
		}
	})

	t.Run("Vague window fields", func(t *testing.T) {
		uc := newTestUseCase(t, table, &mockCalendar{})

		out, err := uc.Resolve(ctx, availability.ResolveInput{
			StartDate: "2026-07-01",
			EndDate:   "2026-08-01",
			Vague:     true,
		})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Mode != "vagueRange" {
			t.Errorf("mode = %q, want vagueRange", out.Mode)
		}
		if len(out.Weeks) == 0 {
			t.Error("expected available weeks in the window")
		}
	})

	t.Run("Malformed date degrades to invalid", func(t *testing.T) {
		uc := newTestUseCase(t, table, &mockCalendar{})

		out, err := uc.Resolve(ctx, availability.ResolveInput{Date: "not-a-date"})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Mode != "invalid" {
			t.Errorf("mode = %q, want invalid", out.Mode)
		}
	})
}
