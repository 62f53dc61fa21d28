package query

import (
	"fmt"
	"math"
	"time"

	"studiobooks/pkg/format"
	"studiobooks/pkg/models"
)

// localMidnight truncates t to 00:00 local time.
func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// daysUntilAt is DaysUntil against an explicit clock, for tests.
func daysUntilAt(dateStr string, now time.Time) (int, error) {
	target, err := format.ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	diff := localMidnight(target).Sub(localMidnight(now))
	// Midnight-to-midnight spans are whole days except across a DST shift;
	// rounding absorbs the odd hour.
	return int(math.Round(diff.Hours() / 24)), nil
}

// DaysUntil returns the whole-day difference between the target date's local
// midnight and today's local midnight. Negative means the date has passed.
func DaysUntil(dateStr string) (int, error) {
	return daysUntilAt(dateStr, time.Now())
}

// DaysUntilLabel maps a day count to its display label: Overdue, Today,
// Tomorrow, "n days" up to a week, "n weeks" up to 30 days (rounded up), and
// "n months" beyond that.
func DaysUntilLabel(days int) string {
	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days <= 7:
		return fmt.Sprintf("%d days", days)
	case days <= 30:
		return fmt.Sprintf("%d weeks", (days+6)/7)
	default:
		return fmt.Sprintf("%d months", (days+29)/30)
	}
}

// upcomingFromTodayAt is UpcomingFromToday against an explicit clock, for
// tests.
func upcomingFromTodayAt(shoots []models.UpcomingShoot, now time.Time) []models.UpcomingShoot {
	today := localMidnight(now)
	matched := []models.UpcomingShoot{}
	for _, s := range shoots {
		if s.Completed {
			continue
		}
		t, err := format.ParseDate(s.ShootDate)
		if err != nil {
			continue
		}
		if !localMidnight(t).Before(today) {
			matched = append(matched, s)
		}
	}
	return matched
}

// UpcomingFromToday returns the non-completed upcoming shoots dated today or
// later. Shoots with unparseable dates are excluded.
func UpcomingFromToday(shoots []models.UpcomingShoot) []models.UpcomingShoot {
	return upcomingFromTodayAt(shoots, time.Now())
}
