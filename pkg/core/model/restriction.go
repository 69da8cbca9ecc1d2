package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigError reports malformed scheduling data. Corrupt restriction
// payloads or time strings must fail loudly at load time rather than
// silently producing a wrong staffing plan.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

func configErrf(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// RestrictionKind identifies one of the closed set of restriction types.
type RestrictionKind string

const (
	RestrictionNoEarlyShift       RestrictionKind = "no_early_shift"
	RestrictionNoLateShift        RestrictionKind = "no_late_shift"
	RestrictionFixedDayOff        RestrictionKind = "fixed_day_off"
	RestrictionMaxConsecutiveDays RestrictionKind = "max_consecutive_days"
	RestrictionOnlyArea           RestrictionKind = "only_area"
	RestrictionFixedSchedule      RestrictionKind = "fixed_schedule"
	RestrictionPrefersEarly       RestrictionKind = "prefers_early"
	RestrictionPrefersLate        RestrictionKind = "prefers_late"
	RestrictionPrefersColleague   RestrictionKind = "prefers_colleague"
)

// Restriction is a validated employee scheduling restriction. Only the
// payload field matching Kind is meaningful.
type Restriction struct {
	Kind        RestrictionKind
	Weekday     int    // fixed_day_off: 0 = Monday .. 4 = Friday
	MaxDays     int    // max_consecutive_days
	Area        Area   // only_area
	Start, End  string // fixed_schedule, HH:MM
	ColleagueID string // prefers_colleague
}

var weekdayByName = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
}

// ParseRestriction validates a raw (kind, value) restriction row and
// returns the typed variant. Kinds with no payload ignore value.
func ParseRestriction(kind, value string) (Restriction, error) {
	k := RestrictionKind(kind)
	switch k {
	case RestrictionNoEarlyShift, RestrictionNoLateShift,
		RestrictionPrefersEarly, RestrictionPrefersLate:
		return Restriction{Kind: k}, nil

	case RestrictionFixedDayOff:
		day, ok := weekdayByName[strings.ToLower(strings.TrimSpace(value))]
		if !ok {
			return Restriction{}, configErrf("fixed_day_off: unknown weekday %q", value)
		}
		return Restriction{Kind: k, Weekday: day}, nil

	case RestrictionMaxConsecutiveDays:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 1 || n > 5 {
			return Restriction{}, configErrf("max_consecutive_days: value %q is not in 1..5", value)
		}
		return Restriction{Kind: k, MaxDays: n}, nil

	case RestrictionOnlyArea:
		area := Area(strings.ToLower(strings.TrimSpace(value)))
		if area != AreaInfant && area != AreaPreschool {
			return Restriction{}, configErrf("only_area: unknown area %q", value)
		}
		return Restriction{Kind: k, Area: area}, nil

	case RestrictionFixedSchedule:
		start, end, ok := strings.Cut(strings.TrimSpace(value), "-")
		if !ok {
			return Restriction{}, configErrf("fixed_schedule: value %q is not HH:MM-HH:MM", value)
		}
		if _, err := ClockToMinutes(start); err != nil {
			return Restriction{}, err
		}
		if _, err := ClockToMinutes(end); err != nil {
			return Restriction{}, err
		}
		return Restriction{Kind: k, Start: start, End: end}, nil

	case RestrictionPrefersColleague:
		colleague := strings.TrimSpace(value)
		if colleague == "" {
			return Restriction{}, configErrf("prefers_colleague: empty colleague id")
		}
		return Restriction{Kind: k, ColleagueID: colleague}, nil
	}

	return Restriction{}, configErrf("unknown restriction kind %q", kind)
}

// RestrictionSet aggregates all restrictions of one employee so the
// planner and validator never re-parse raw rows.
type RestrictionSet struct {
	NoEarly             bool
	NoLate              bool
	FixedDaysOff        map[int]bool
	MaxConsecutiveDays  int // 0 means unrestricted
	OnlyArea            Area
	FixedStart          string
	FixedEnd            string
	PrefersEarly        bool
	PrefersLate         bool
	PreferredColleagues []string
}

// NewRestrictionSet folds parsed restrictions into a per-employee set.
// Duplicate rows of the same kind collapse; the tightest
// max_consecutive_days value wins.
func NewRestrictionSet(restrictions []Restriction) RestrictionSet {
	set := RestrictionSet{FixedDaysOff: map[int]bool{}}
	for _, r := range restrictions {
		switch r.Kind {
		case RestrictionNoEarlyShift:
			set.NoEarly = true
		case RestrictionNoLateShift:
			set.NoLate = true
		case RestrictionFixedDayOff:
			set.FixedDaysOff[r.Weekday] = true
		case RestrictionMaxConsecutiveDays:
			if set.MaxConsecutiveDays == 0 || r.MaxDays < set.MaxConsecutiveDays {
				set.MaxConsecutiveDays = r.MaxDays
			}
		case RestrictionOnlyArea:
			set.OnlyArea = r.Area
		case RestrictionFixedSchedule:
			set.FixedStart = r.Start
			set.FixedEnd = r.End
		case RestrictionPrefersEarly:
			set.PrefersEarly = true
		case RestrictionPrefersLate:
			set.PrefersLate = true
		case RestrictionPrefersColleague:
			set.PreferredColleagues = append(set.PreferredColleagues, r.ColleagueID)
		}
	}
	return set
}

// ClockToMinutes parses an HH:MM string into minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(clock), ":")
	if !ok {
		return 0, configErrf("time %q is not HH:MM", clock)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, configErrf("time %q is not HH:MM", clock)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, configErrf("time %q is not HH:MM", clock)
	}
	return hours*60 + minutes, nil
}
