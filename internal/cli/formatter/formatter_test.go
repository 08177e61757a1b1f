package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/repository"
	"github.com/haeunpark/studyplan/internal/testutil"
)

func TestRenderProgress(t *testing.T) {
	out := RenderProgress(50, 10)
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, filledBlock)
	assert.Contains(t, out, emptyBlock)

	assert.Contains(t, RenderProgress(0, 10), "0%")
	assert.Contains(t, RenderProgress(100, 10), "100%")

	// Out-of-range input clamps instead of panicking.
	assert.Contains(t, RenderProgress(-5, 10), "0%")
	assert.Contains(t, RenderProgress(150, 10), "100%")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"a1", "클린 코드"},
			{"b2", "모두의 딥러닝"},
		},
	)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "클린 코드")
	assert.Contains(t, lines[3], "모두의 딥러닝")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatTaskLine_ShowsBothCompletionMarks(t *testing.T) {
	task := domain.DailyTask{
		MaterialID:    "m1",
		MaterialTitle: "클린 코드",
		MaterialType:  domain.MaterialBook,
		Description:   "21~30페이지 읽기",
	}

	line := FormatTaskLine(task, false)
	assert.Contains(t, line, "○", "progress counter not there yet")
	assert.Contains(t, line, "21~30페이지 읽기")

	task.Completed = true
	line = FormatTaskLine(task, false)
	assert.Contains(t, line, "●")
	assert.NotContains(t, line, "✓", "hand checkmark is independent")

	line = FormatTaskLine(task, true)
	assert.Contains(t, line, "●")
	assert.Contains(t, line, "✓")
}

func TestFormatWeeklyPlan(t *testing.T) {
	clock := testutil.ClockAt(2024, 1, 10)
	book := testutil.NewTestBook("책", 70, testutil.Date(2024, 1, 7), testutil.Date(2024, 1, 13))

	plan := domain.WeeklyPlan{
		WeekStart: testutil.Date(2024, 1, 7),
		WeekEnd:   testutil.Date(2024, 1, 13),
		Days: []domain.DailyPlan{
			{
				Date:      testutil.Date(2024, 1, 10),
				DayOfWeek: "Wednesday",
				Tasks: []domain.DailyTask{{
					MaterialID:    book.ID,
					MaterialTitle: book.Title,
					MaterialType:  domain.MaterialBook,
					Description:   "31~40페이지 읽기",
				}},
			},
			{Date: testutil.Date(2024, 1, 11), DayOfWeek: "Thursday"},
		},
	}
	keys := map[string]bool{
		repository.CompletionKey(book.ID, testutil.Date(2024, 1, 10)): true,
	}

	out := FormatWeeklyPlan(plan, keys, clock)

	assert.Contains(t, out, "2024-01-07 ~ 2024-01-13")
	assert.Contains(t, out, "← today")
	assert.Contains(t, out, "✓", "checked-off date shows the hand mark")
	assert.Contains(t, out, "(no tasks)")
}

func TestFormatTodayWorkload(t *testing.T) {
	assert.Contains(t, FormatTodayWorkload(nil), "Nothing left")

	out := FormatTodayWorkload([]domain.DailyTask{{
		MaterialTitle: "책",
		MaterialType:  domain.MaterialBook,
		Description:   "21~30페이지 읽기",
	}})
	assert.Contains(t, out, "책")
	assert.Contains(t, out, "21~30페이지 읽기")
}

func TestFormatMaterialList(t *testing.T) {
	book := testutil.NewTestBook("클린 코드", 100,
		testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10),
		testutil.WithCurrentPage(50))
	video := testutil.NewTestVideo("모두의 딥러닝", 10, 30,
		testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10))

	out := FormatMaterialList([]*domain.Material{book, video})

	assert.Contains(t, out, "클린 코드")
	assert.Contains(t, out, "10p/day")
	assert.Contains(t, out, "모두의 딥러닝")
	assert.Contains(t, out, "1 sec/day")
	assert.Contains(t, out, "50%")
}

func TestFormatMaterialDetail_Video(t *testing.T) {
	video := testutil.NewTestVideo("모두의 딥러닝", 3, 25,
		testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10),
		testutil.WithCurrentProgress(1))

	out := FormatMaterialDetail(video, testutil.ClockAt(2024, 1, 5))

	assert.Contains(t, out, video.ID)
	assert.Contains(t, out, "3 sections")
	assert.Contains(t, out, "모두의 딥러닝 1강")
	// Completed sections get the filled mark, pending ones the hollow one.
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "○")
}

func TestFormatMaterialDetail_CompletedBook(t *testing.T) {
	book := testutil.NewTestBook("책", 100,
		testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10),
		testutil.WithCurrentPage(100))

	out := FormatMaterialDetail(book, testutil.ClockAt(2024, 1, 10))

	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "100%")
}
