package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobooks/pkg/models"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, time.August, 29, 14, 30, 0, 0, time.Local)

	days, err := daysUntilAt("2026-08-29", now)
	require.NoError(t, err)
	assert.Equal(t, 0, days)

	days, err = daysUntilAt("2026-08-30", now)
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	days, err = daysUntilAt("2026-08-28", now)
	require.NoError(t, err)
	assert.Equal(t, -1, days)

	_, err = daysUntilAt("someday", now)
	assert.Error(t, err)
}

func TestDaysUntilLabel(t *testing.T) {
	assert.Equal(t, "Overdue", DaysUntilLabel(-3))
	assert.Equal(t, "Today", DaysUntilLabel(0))
	assert.Equal(t, "Tomorrow", DaysUntilLabel(1))
	assert.Equal(t, "2 days", DaysUntilLabel(2))
	assert.Equal(t, "7 days", DaysUntilLabel(7))
	// 8 days rounds up to the next whole week.
	assert.Equal(t, "2 weeks", DaysUntilLabel(8))
	assert.Equal(t, "3 weeks", DaysUntilLabel(15))
	assert.Equal(t, "5 weeks", DaysUntilLabel(30))
	// Day 31 is the week/month boundary.
	assert.Equal(t, "2 months", DaysUntilLabel(31))
	assert.Equal(t, "3 months", DaysUntilLabel(75))
}

func TestUpcomingFromToday(t *testing.T) {
	now := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local)
	shoots := []models.UpcomingShoot{
		{ID: "past", ShootDate: "2026-08-20"},
		{ID: "today", ShootDate: "2026-08-29"},
		{ID: "tomorrow", ShootDate: "2026-08-30"},
		{ID: "done", ShootDate: "2026-09-10", Completed: true},
		{ID: "junk", ShootDate: "sometime soon"},
	}

	matched := upcomingFromTodayAt(shoots, now)
	ids := make([]string, 0, len(matched))
	for _, s := range matched {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"today", "tomorrow"}, ids)
}
