package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/testutil"
)

func TestGenerateWeeklyPlan_SevenDaysSundayFirst(t *testing.T) {
	clock := testutil.ClockAt(2024, 1, 10) // a Wednesday

	plan := GenerateWeeklyPlan(nil, time.Time{}, clock)

	require.Len(t, plan.Days, 7)
	assert.Equal(t, testutil.Date(2024, 1, 7), plan.WeekStart)
	assert.Equal(t, testutil.Date(2024, 1, 13), plan.WeekEnd)
	assert.Equal(t, "Sunday", plan.Days[0].DayOfWeek)
	assert.Equal(t, "Saturday", plan.Days[6].DayOfWeek)
	assert.Equal(t, testutil.Date(2024, 1, 7), plan.Days[0].Date)
}

func TestGenerateWeeklyPlan_ExplicitWeekOverridesClock(t *testing.T) {
	clock := testutil.ClockAt(2024, 1, 10)

	plan := GenerateWeeklyPlan(nil, testutil.Date(2024, 3, 20), clock)

	assert.Equal(t, testutil.Date(2024, 3, 17), plan.WeekStart)
	assert.Equal(t, testutil.Date(2024, 3, 23), plan.WeekEnd)
}

func TestGenerateWeeklyPlan_CollectsTasksPerDay(t *testing.T) {
	book := testutil.NewTestBook("알고리즘", 70, testutil.Date(2024, 1, 7), testutil.Date(2024, 1, 13))
	video := testutil.NewTestVideo("강의", 7, 30, testutil.Date(2024, 1, 7), testutil.Date(2024, 1, 13))
	clock := testutil.ClockAt(2024, 1, 10)

	plan := GenerateWeeklyPlan([]*domain.Material{book, video}, time.Time{}, clock)

	for _, day := range plan.Days {
		require.Len(t, day.Tasks, 2, "both materials owe work every day of their window")
		// Material iteration order is preserved within the day.
		assert.Equal(t, book.ID, day.Tasks[0].MaterialID)
		assert.Equal(t, video.ID, day.Tasks[1].MaterialID)
	}
}

func TestGenerateWeeklyPlan_MaterialOutsideWeekOwesNothing(t *testing.T) {
	book := testutil.NewTestBook("지난 책", 100, testutil.Date(2023, 12, 1), testutil.Date(2023, 12, 10))
	clock := testutil.ClockAt(2024, 1, 10)

	plan := GenerateWeeklyPlan([]*domain.Material{book}, time.Time{}, clock)

	for _, day := range plan.Days {
		assert.Empty(t, day.Tasks)
	}
}

func TestTaskFor_CustomMaterialNeverScheduled(t *testing.T) {
	m := &domain.Material{
		ID:        "custom-1",
		Type:      domain.MaterialCustom,
		Title:     "개인 프로젝트",
		StartDate: testutil.Date(2024, 1, 1),
		EndDate:   testutil.Date(2024, 1, 31),
	}

	assert.Nil(t, TaskFor(m, testutil.Date(2024, 1, 10)))
}

func TestTodayWorkload_NonUTCClock(t *testing.T) {
	book := testutil.NewTestBook("책", 100, testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10))
	ny := time.FixedZone("UTC-5", -5*60*60)
	seoul := time.FixedZone("UTC+9", 9*60*60)

	tasks := TodayWorkload([]*domain.Material{book}, testutil.ClockAtIn(2024, 1, 3, ny))
	require.Len(t, tasks, 1)
	assert.Equal(t, 21, tasks[0].StartPage)
	assert.Equal(t, 30, tasks[0].EndPage)

	tasks = TodayWorkload([]*domain.Material{book}, testutil.ClockAtIn(2024, 1, 1, seoul))
	require.Len(t, tasks, 1, "first day of the range is owed in any zone")
	assert.Equal(t, 1, tasks[0].StartPage)

	tasks = TodayWorkload([]*domain.Material{book}, testutil.ClockAtIn(2024, 1, 10, ny))
	require.Len(t, tasks, 1, "last day of the range is owed in any zone")
	assert.Equal(t, 91, tasks[0].StartPage)
}

func TestTodayWorkload_BooksOnlyAndIncompleteOnly(t *testing.T) {
	start, end := testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10)

	pending := testutil.NewTestBook("진행중", 100, start, end)
	// Day 3 owes pages 21-30; current page 30 marks it done for today.
	doneToday := testutil.NewTestBook("오늘치 끝", 100, start, end, testutil.WithCurrentPage(30))
	video := testutil.NewTestVideo("강의", 10, 30, start, end)

	clock := testutil.ClockAt(2024, 1, 3)
	tasks := TodayWorkload([]*domain.Material{pending, doneToday, video}, clock)

	require.Len(t, tasks, 1)
	assert.Equal(t, pending.ID, tasks[0].MaterialID)
	assert.Equal(t, 21, tasks[0].StartPage)
	assert.Equal(t, 30, tasks[0].EndPage)
}
