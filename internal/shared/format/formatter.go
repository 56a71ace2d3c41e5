// Package format turns raw domain values into display strings for the
// CentreConnect presentation layer: long-form dates, currency amounts,
// ages in whole years and URL slugs.
//
// All operations are total. Malformed input produces degenerate output such
// as "Invalid Date" or "RNaN" instead of an error; callers that need to
// reject bad input validate it first (see biztime.ParseDate).
//
// A Formatter is immutable once built and safe for concurrent use.
package format

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/centreconnect/centreconnect/internal/shared/biztime"
	"github.com/centreconnect/centreconnect/internal/shared/errors"
)

// InvalidDate is rendered for date strings that cannot be parsed.
const InvalidDate = "Invalid Date"

// Formatter formats values using one locale, currency and timezone.
type Formatter struct {
	locale    Locale
	currency  currencySpec
	location  *time.Location
	clock     func() time.Time
	trimEdges bool
	logger    *slog.Logger
}

type options struct {
	locale    string
	currency  string
	location  *time.Location
	clock     func() time.Time
	trimEdges bool
	logger    *slog.Logger
}

// Option configures a Formatter.
type Option func(*options)

// WithLocale sets the BCP 47 locale tag, e.g. "en-ZA".
func WithLocale(tag string) Option {
	return func(o *options) { o.locale = tag }
}

// WithCurrency sets the ISO 4217 currency code, e.g. "ZAR".
func WithCurrency(code string) Option {
	return func(o *options) { o.currency = code }
}

// WithLocation sets the timezone in which calendar dates are read.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.location = loc }
}

// WithClock sets the source of the reference date used for ages.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithSlugTrimEdges makes GenerateSlug drop leading and trailing hyphens.
func WithSlugTrimEdges(trim bool) Option {
	return func(o *options) { o.trimEdges = trim }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New builds a Formatter. Without options it formats for en-ZA in ZAR,
// reads dates in the business timezone and takes "today" from time.Now.
func New(opts ...Option) (*Formatter, error) {
	o := options{
		locale:   DefaultLocale,
		currency: DefaultCurrency,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.location == nil {
		o.location = biztime.Location()
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	locale, err := LookupLocale(o.locale)
	if err != nil {
		return nil, fmt.Errorf("resolve locale: %w", err)
	}
	cur, err := resolveCurrency(o.currency)
	if err != nil {
		return nil, fmt.Errorf("resolve currency: %w", err)
	}

	return &Formatter{
		locale:    locale,
		currency:  cur,
		location:  o.location,
		clock:     o.clock,
		trimEdges: o.trimEdges,
		logger:    o.logger,
	}, nil
}

// Locale returns the resolved locale tag.
func (f *Formatter) Locale() string {
	return f.locale.Tag.String()
}

// Currency returns the ISO 4217 currency code.
func (f *Formatter) Currency() string {
	return f.currency.code
}

// Location returns the timezone in which dates are read.
func (f *Formatter) Location() *time.Location {
	return f.location
}

// FormatDate renders t as a long-form date, e.g. "1 March 2024".
func (f *Formatter) FormatDate(t time.Time) string {
	return f.locale.formatDate(t.In(f.location))
}

// FormatDateString parses an ISO date or timestamp and renders it like
// FormatDate. Unparseable input renders InvalidDate.
func (f *Formatter) FormatDateString(value string) string {
	t, err := biztime.ParseDateIn(value, f.location)
	if err != nil {
		f.logger.Debug("date value not parseable", "value", value, "error", err)
		return InvalidDate
	}
	return f.FormatDate(t)
}

// FormatCurrency renders amount in the configured currency, e.g. "R1,234.50".
func (f *Formatter) FormatCurrency(amount float64) string {
	return formatAmount(f.locale, f.currency, amount)
}

// CalculateAge returns the age in whole years as of the formatter's clock.
func (f *Formatter) CalculateAge(dateOfBirth time.Time) int {
	return CalculateAge(dateOfBirth.In(f.location), f.clock().In(f.location))
}

// CalculateAgeString parses dateOfBirth and returns the age as of the
// formatter's clock.
func (f *Formatter) CalculateAgeString(dateOfBirth string) (int, error) {
	dob, err := biztime.ParseDateIn(dateOfBirth, f.location)
	if err != nil {
		return 0, errors.NewValidationError("invalid date of birth", err.Error())
	}
	return f.CalculateAge(dob), nil
}

// GenerateSlug is GenerateSlug honouring the formatter's edge trimming.
func (f *Formatter) GenerateSlug(text string) string {
	return generateSlug(text, f.trimEdges)
}

// CalculateAge returns the number of whole years between dateOfBirth and
// asOf, using the calendar fields of each value as given. The result is
// negative when dateOfBirth lies after asOf.
func CalculateAge(dateOfBirth, asOf time.Time) int {
	age := asOf.Year() - dateOfBirth.Year()
	if asOf.Month() < dateOfBirth.Month() ||
		(asOf.Month() == dateOfBirth.Month() && asOf.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

var defaultFormatter = sync.OnceValues(func() (*Formatter, error) {
	return New()
})

// Default returns the shared en-ZA/ZAR formatter.
func Default() *Formatter {
	f, err := defaultFormatter()
	if err != nil {
		panic(fmt.Sprintf("format: default formatter: %v", err))
	}
	return f
}

// FormatDate renders t with the default formatter.
func FormatDate(t time.Time) string {
	return Default().FormatDate(t)
}

// FormatDateString renders an ISO date string with the default formatter.
func FormatDateString(value string) string {
	return Default().FormatDateString(value)
}

// FormatCurrency renders amount in ZAR with the default formatter.
func FormatCurrency(amount float64) string {
	return Default().FormatCurrency(amount)
}
