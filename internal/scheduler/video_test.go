package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeunpark/studyplan/internal/domain"
)

func newVideo(sectionCount, sectionMin int, start, end time.Time) *domain.Material {
	sections := make([]domain.Section, sectionCount)
	for i := range sections {
		sections[i] = domain.Section{
			ID:       fmt.Sprintf("s-%d", i+1),
			Title:    fmt.Sprintf("%d강", i+1),
			Duration: sectionMin,
			Order:    i,
		}
	}
	return &domain.Material{
		ID:             "video-1",
		Type:           domain.MaterialVideo,
		Title:          "모두의 딥러닝",
		StartDate:      start,
		EndDate:        end,
		Sections:       sections,
		TotalDuration:  sectionCount * sectionMin,
		SectionsPerDay: SectionsPerDay(sectionCount, start, end),
	}
}

func TestVideoTaskFor_EvenSplit(t *testing.T) {
	m := newVideo(10, 30, date(2024, 1, 1), date(2024, 1, 5))

	task := VideoTaskFor(m, date(2024, 1, 2))

	require.NotNil(t, task)
	assert.Equal(t, []string{"3강", "4강"}, task.SectionTitles)
	assert.Equal(t, "섹션 2개 수강 (1시간)", task.Description)
	assert.Equal(t, domain.MaterialVideo, task.MaterialType)
}

func TestVideoTaskFor_FractionalRate(t *testing.T) {
	// 10 sections over 3 days: floor boundaries give 3, 3, 4.
	m := newVideo(10, 25, date(2024, 1, 1), date(2024, 1, 3))

	day1 := VideoTaskFor(m, date(2024, 1, 1))
	require.NotNil(t, day1)
	assert.Equal(t, []string{"1강", "2강", "3강"}, day1.SectionTitles)

	day2 := VideoTaskFor(m, date(2024, 1, 2))
	require.NotNil(t, day2)
	assert.Equal(t, []string{"4강", "5강", "6강"}, day2.SectionTitles)

	day3 := VideoTaskFor(m, date(2024, 1, 3))
	require.NotNil(t, day3)
	assert.Equal(t, []string{"7강", "8강", "9강", "10강"}, day3.SectionTitles)

	// The stored quota is the ceiled value and differs from the actual
	// day slices above.
	assert.Equal(t, 4, m.SectionsPerDay)
}

func TestVideoTaskFor_EverySectionOwedExactlyOnce(t *testing.T) {
	cases := []struct {
		sections int
		days     int
	}{
		{10, 3}, {7, 7}, {1, 5}, {23, 4}, {100, 9}, {5, 30},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d sections %d days", tc.sections, tc.days), func(t *testing.T) {
			start := date(2024, 3, 1)
			end := start.AddDate(0, 0, tc.days-1)
			m := newVideo(tc.sections, 10, start, end)

			var owed []string
			for _, d := range dateRange(start, tc.days) {
				if task := VideoTaskFor(m, d); task != nil {
					owed = append(owed, task.SectionTitles...)
				}
			}

			require.Len(t, owed, tc.sections)
			for i, title := range owed {
				assert.Equal(t, fmt.Sprintf("%d강", i+1), title, "sections owed in order, no repeats")
			}
		})
	}
}

func dateRange(start time.Time, days int) []time.Time {
	out := make([]time.Time, days)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestVideoTaskFor_OutsideWindow(t *testing.T) {
	m := newVideo(10, 30, date(2024, 1, 1), date(2024, 1, 5))

	assert.Nil(t, VideoTaskFor(m, date(2023, 12, 31)))
	assert.Nil(t, VideoTaskFor(m, date(2024, 1, 6)))
}

func TestVideoTaskFor_FinishedCourse(t *testing.T) {
	m := newVideo(10, 30, date(2024, 1, 1), date(2024, 1, 5))
	m.CurrentProgress = 10

	assert.Nil(t, VideoTaskFor(m, date(2024, 1, 3)))
}

func TestVideoTaskFor_NoSections(t *testing.T) {
	m := newVideo(0, 0, date(2024, 1, 1), date(2024, 1, 5))

	assert.Nil(t, VideoTaskFor(m, date(2024, 1, 2)))
}

func TestVideoTaskFor_CompletedFlagTracksProgress(t *testing.T) {
	m := newVideo(10, 30, date(2024, 1, 1), date(2024, 1, 5))

	// Day two owes sections 3 and 4 (indexes up to 4).
	m.CurrentProgress = 4
	task := VideoTaskFor(m, date(2024, 1, 2))
	require.NotNil(t, task)
	assert.True(t, task.Completed)

	m.CurrentProgress = 3
	task = VideoTaskFor(m, date(2024, 1, 2))
	require.NotNil(t, task)
	assert.False(t, task.Completed)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{125, "2시간 5분"},
		{60, "1시간"},
		{45, "45분"},
		{0, "0분"},
		{61, "1시간 1분"},
		{120, "2시간"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.minutes))
		})
	}
}

func TestSplitDuration(t *testing.T) {
	h, m := SplitDuration(125)
	assert.Equal(t, 2, h)
	assert.Equal(t, 5, m)
}
