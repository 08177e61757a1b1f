package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/testutil"
)

func TestCalculateProgress_Book(t *testing.T) {
	start, end := testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10)

	tests := []struct {
		name    string
		current int
		total   int
		want    int
	}{
		{"halfway", 50, 100, 50},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up past half", 2, 3, 67},
		{"finished", 100, 100, 100},
		{"over-read caps at 100", 120, 100, 100},
		{"untouched", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testutil.NewTestBook("책", tt.total, start, end, testutil.WithCurrentPage(tt.current))
			assert.Equal(t, tt.want, CalculateProgress(m))
		})
	}
}

func TestCalculateProgress_BookWithoutPages(t *testing.T) {
	m := testutil.NewTestBook("빈 책", 0, testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10))
	assert.Zero(t, CalculateProgress(m))
}

func TestCalculateProgress_Video(t *testing.T) {
	start, end := testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10)

	m := testutil.NewTestVideo("강의", 8, 30, start, end, testutil.WithCurrentProgress(2))
	assert.Equal(t, 25, CalculateProgress(m))

	m = testutil.NewTestVideo("빈 강의", 0, 0, start, end)
	assert.Zero(t, CalculateProgress(m))
}

func TestCalculateProgress_CustomIsZero(t *testing.T) {
	m := &domain.Material{Type: domain.MaterialCustom, Title: "기타"}
	assert.Zero(t, CalculateProgress(m))
}

func TestIsLearningCompleted(t *testing.T) {
	start, end := testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10)

	book := testutil.NewTestBook("책", 100, start, end, testutil.WithCurrentPage(100))
	assert.True(t, IsLearningCompleted(book))

	book.CurrentPage = 99
	assert.False(t, IsLearningCompleted(book))

	video := testutil.NewTestVideo("강의", 5, 30, start, end, testutil.WithCurrentProgress(5))
	assert.True(t, IsLearningCompleted(video))

	video.CurrentProgress = 4
	assert.False(t, IsLearningCompleted(video))

	empty := testutil.NewTestVideo("빈 강의", 0, 0, start, end)
	assert.False(t, IsLearningCompleted(empty), "a course with no sections is never complete")
}

func TestRemainingDays(t *testing.T) {
	m := testutil.NewTestBook("책", 100, testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 10))

	assert.Equal(t, 5, RemainingDays(m, testutil.ClockAt(2024, 1, 5)))
	assert.Equal(t, 0, RemainingDays(m, testutil.ClockAt(2024, 1, 10)), "ends today")
	assert.Equal(t, 0, RemainingDays(m, testutil.ClockAt(2024, 2, 1)), "already past")
}
