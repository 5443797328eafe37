package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownExpression is returned for text that is neither a date nor a known relative phrase.
var ErrUnknownExpression = errors.New("unknown date expression")

var (
	isoRe      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	numericRe  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	inDurRe    = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	spacesRe   = regexp.MustCompile(`\s+`)
	weekdayMap = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser converts date expressions to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "UTC", "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date expression to the start of the day it names.
// Accepted forms: YYYY-MM-DD, M/D/YYYY, M-D-YYYY, today, tonight, now, tomorrow,
// yesterday, in N days|weeks|months, next week|month|year|<weekday>,
// this week|month|weekend. The baseTime is the reference point (usually time.Now()).
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = spacesRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(expr)), " ")

	switch expr {
	case "today", "tonight", "now":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	case "next year":
		return p.startOfDay(baseTime.AddDate(1, 0, 0)), nil
	case "this week":
		return p.endOfWeek(baseTime), nil
	case "this month":
		return p.endOfMonth(baseTime), nil
	case "this weekend":
		return p.weekend(baseTime), nil
	}

	if m := isoRe.FindStringSubmatch(expr); m != nil {
		return p.date(m[1], m[2], m[3])
	}
	if m := numericRe.FindStringSubmatch(expr); m != nil {
		// Month first, as in 12/01/2024.
		return p.date(m[3], m[1], m[2])
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, baseTime)
	}

	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
}

func (p *Parser) date(year, month, day string) (time.Time, error) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, p.location)
	// time.Date normalises overflow, so a changed component means the input was invalid.
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, fmt.Errorf("invalid calendar date %s-%s-%s", year, month, day)
	}
	return t, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdayMap[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// endOfWeek returns the Sunday closing the week (Monday-Sunday) of t.
func (p *Parser) endOfWeek(t time.Time) time.Time {
	wd := int(t.In(p.location).Weekday())
	if wd == 0 {
		wd = 7
	}
	return p.startOfDay(t.AddDate(0, 0, 7-wd))
}

func (p *Parser) endOfMonth(t time.Time) time.Time {
	s := p.startOfDay(t)
	return time.Date(s.Year(), s.Month()+1, 0, 0, 0, 0, 0, p.location)
}

// weekend returns the coming Saturday, or today when t already falls on a weekend.
func (p *Parser) weekend(t time.Time) time.Time {
	switch t.In(p.location).Weekday() {
	case time.Saturday, time.Sunday:
		return p.startOfDay(t)
	}
	return p.startOfDay(t.AddDate(0, 0, int(time.Saturday-t.In(p.location).Weekday())))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
