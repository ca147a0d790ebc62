package hijri

import (
	"strings"
	"sync"
	"time"
)

// Provider is the capability abstraction every Hijri calendar back-end
// implements. The recurrence engine depends only on this interface, so new
// back-ends can be added without touching it.
type Provider interface {
	// Name identifies the back-end, e.g. "tabular" or "umm-al-qura".
	Name() string

	// MonthLength returns the number of days (29 or 30) in the given
	// Hijri month.
	MonthLength(year, month int) (int, error)

	// IsLeap reports whether the given Hijri year is a leap (355-day) year.
	IsLeap(year int) (bool, error)

	// YearLength returns the number of days (354 or 355) in the given
	// Hijri year.
	YearLength(year int) (int, error)

	// ToGregorian converts a Hijri (year, month, day) to its Gregorian
	// civil-date equivalent.
	ToGregorian(year, month, day int) (time.Time, error)

	// FromGregorian converts a Gregorian civil date to its Hijri
	// (year, month, day) equivalent.
	FromGregorian(t time.Time) (year, month, day int, err error)

	// IsValid reports whether (year, month, day) is a constructible date
	// under this provider.
	IsValid(year, month, day int) bool

	// toJDN/fromJDN are the internal single source of truth the exported
	// conversions above are built from; kept unexported since callers
	// outside this package only need the Gregorian-facing conversions.
	toJDN(year, month, day int) (int, error)
	fromJDN(jdn int) (year, month, day int)
}

// CalendarKind names a Provider implementation.
type CalendarKind int

const (
	// UmmAlQura is Saudi Arabia's table-driven official calendar. It is
	// the default calendar unless Configure overrides it.
	UmmAlQura CalendarKind = iota
	// Tabular is the purely arithmetic 30-year leap-cycle calendar.
	Tabular
)

// String returns the canonical uppercase RRULE token for the calendar kind.
func (c CalendarKind) String() string {
	switch c {
	case UmmAlQura:
		return "HIJRI-UM-AL-QURA"
	case Tabular:
		return "HIJRI-TABULAR"
	default:
		return "UNKNOWN"
	}
}

// calendarAliases maps a folded (lowercased, punctuation-stripped) alias
// to the CalendarKind it names. Folding happens in the rrule package's
// text layer (rrule/alias.go); this table is consulted with already-folded
// keys so hijri itself stays free of the x/text dependency.
var calendarAliases = map[string]CalendarKind{
	"hijriumalqura":  UmmAlQura,
	"ummalqura":      UmmAlQura,
	"umalqura":       UmmAlQura,
	"islamicumalqura": UmmAlQura,
	"hijritabular":   Tabular,
	"tabular":        Tabular,
	"tbla":           Tabular,
	"islamictbla":    Tabular,
}

// CalendarKindFromFoldedName resolves a pre-folded calendar name to its
// CalendarKind. Callers needing accent/punctuation-insensitive matching on
// raw user text should fold first (see rrule.ResolveCalendarAlias).
func CalendarKindFromFoldedName(folded string) (CalendarKind, bool) {
	k, ok := calendarAliases[folded]
	return k, ok
}

// simpleFold is the minimal ASCII fold used when a caller has no need for
// the full Unicode-aware folding rrule.foldToken provides (diacritics don't
// occur in these tokens in practice, so this is a fast, dependency-free path
// usable directly from this package, e.g. in tests and examples).
func simpleFold(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r == '-' || r == '_' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseCalendarKind resolves a CALENDAR token (case-insensitive, with the
// standard punctuation variants) to a CalendarKind.
func ParseCalendarKind(name string) (CalendarKind, error) {
	if k, ok := CalendarKindFromFoldedName(simpleFold(name)); ok {
		return k, nil
	}
	return 0, newInvalidInput("CALENDAR", "unknown calendar %q", name)
}

var (
	tabularSingleton Provider = newTabularProvider()
	umAlQuraSingleton Provider = newUmmAlQuraProvider(tabularSingleton.(*TabularProvider))
)

// ProviderFor returns the process-wide singleton Provider for kind.
// Providers are read-only after first construction.
func ProviderFor(kind CalendarKind) Provider {
	switch kind {
	case Tabular:
		return tabularSingleton
	case UmmAlQura:
		return umAlQuraSingleton
	default:
		return umAlQuraSingleton
	}
}

// Config holds the process-wide default calendar configuration. It must be
// set (via Configure) before rules are constructed, to avoid mid-lifecycle
// inconsistency.
type Config struct {
	// Default is the calendar used when a rule does not specify one.
	Default CalendarKind
	// Fallback is the calendar a lookup-table provider defers to outside
	// its supported range.
	Fallback CalendarKind
}

var (
	configMu      sync.RWMutex
	currentConfig = Config{Default: UmmAlQura, Fallback: Tabular}
)

// Configure replaces the process-wide calendar configuration.
func Configure(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	currentConfig = cfg
}

// Reset restores the documented default configuration
// (Default=UmmAlQura, Fallback=Tabular).
func Reset() {
	configMu.Lock()
	defer configMu.Unlock()
	currentConfig = Config{Default: UmmAlQura, Fallback: Tabular}
}

// CurrentConfig returns a copy of the current process-wide configuration.
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return currentConfig
}

// DefaultProvider returns the Provider for the configured default calendar.
func DefaultProvider() Provider {
	return ProviderFor(CurrentConfig().Default)
}
