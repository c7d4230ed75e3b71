package pricing

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Band is one weekly price band, half-open [Start, End).
type Band struct {
	Start time.Time
	End   time.Time
	Price float64
}

// Table is the ordered set of price bands, loaded once at startup and
// read-only afterwards. Bands should be non-overlapping and ordered; when
// they are not, the first matching band wins by contract.
type Table struct {
	bands    []Band
	currency string
}

// NewTable builds a table from bands in the given order.
func NewTable(bands []Band, currency string) *Table {
	return &Table{bands: bands, currency: currency}
}

// Empty returns a table with no bands: every lookup is nil, so every week is
// price-unknown and not bookable. Used to fail closed when the price file is
// absent or malformed.
func Empty() *Table {
	return &Table{}
}

// PriceFor returns the price of the first band containing the date, or nil
// when no band matches. Nil means "price unknown", not "free".
func (t *Table) PriceFor(d time.Time) *float64 {
	probe := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, d.Location())
	for i := range t.bands {
		if !probe.Before(t.bands[i].Start) && probe.Before(t.bands[i].End) {
			return &t.bands[i].Price
		}
	}
	return nil
}

// Currency returns the display currency, if configured.
func (t *Table) Currency() string {
	return t.currency
}

// Len returns the number of bands.
func (t *Table) Len() int {
	return len(t.bands)
}

type bandConfig struct {
	Start string  `mapstructure:"start"`
	End   string  `mapstructure:"end"`
	Price float64 `mapstructure:"price"`
}

type tableConfig struct {
	Currency string       `mapstructure:"currency"`
	Bands    []bandConfig `mapstructure:"bands"`
}

// Load reads the price table from a YAML file. Dates are ISO "2006-01-02".
func Load(path string) (*Table, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading price file: %w", err)
	}

	var cfg tableConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing price file: %w", err)
	}

	bands := make([]Band, 0, len(cfg.Bands))
	for i, b := range cfg.Bands {
		start, err := time.ParseInLocation("2006-01-02", b.Start, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("band %d: invalid start %q: %w", i, b.Start, err)
		}
		end, err := time.ParseInLocation("2006-01-02", b.End, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("band %d: invalid end %q: %w", i, b.End, err)
		}
		if !end.After(start) {
			return nil, fmt.Errorf("band %d: end %q is not after start %q", i, b.End, b.Start)
		}
		bands = append(bands, Band{Start: start, End: end, Price: b.Price})
	}

	return NewTable(bands, cfg.Currency), nil
}
