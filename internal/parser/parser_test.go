package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TitleThenDuration(t *testing.T) {
	result := Parse("Intro\n05:39\n\nBasics\n12:45\n")

	require.Equal(t, 2, result.TotalCount)
	require.Len(t, result.Sections, 2)

	assert.Equal(t, "Intro", result.Sections[0].Title)
	assert.Equal(t, 26, result.Sections[0].Duration, "5m39s rounds to 6m plus 20m overhead")
	assert.Equal(t, 0, result.Sections[0].Order)
	assert.False(t, result.Sections[0].Completed)

	assert.Equal(t, "Basics", result.Sections[1].Title)
	assert.Equal(t, 33, result.Sections[1].Duration)
	assert.Equal(t, 1, result.Sections[1].Order)

	assert.Equal(t, 59, result.TotalDuration)
}

func TestParse_HoursMinutesSeconds(t *testing.T) {
	result := Parse("Deep dive\n1:02:30\n")

	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, 60+2+1+20, result.Sections[0].Duration)
}

func TestParse_SkipsNumericMarkers(t *testing.T) {
	result := Parse("1\nIntro\n05:00\n2\nNext\n03:00\n")

	require.Equal(t, 2, result.TotalCount)
	assert.Equal(t, "Intro", result.Sections[0].Title)
	assert.Equal(t, "Next", result.Sections[1].Title)
}

func TestParse_SkipsNoiseLines(t *testing.T) {
	input := strings.Join([]string{
		"무료보기",
		"Intro",
		"수업자료 다운로드",
		"05:00",
		"강의자료",
	}, "\n")

	result := Parse(input)

	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "Intro", result.Sections[0].Title)
}

func TestParse_DurationWithoutTitleDropped(t *testing.T) {
	result := Parse("05:39\nIntro\n03:00\n")

	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "Intro", result.Sections[0].Title)
}

func TestParse_TrailingTitleDropped(t *testing.T) {
	result := Parse("Intro\n05:00\nOrphan title\n")

	assert.Equal(t, 1, result.TotalCount)
}

func TestParse_NewTitleOverwritesPending(t *testing.T) {
	result := Parse("First\nSecond\n05:00\n")

	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "Second", result.Sections[0].Title, "the later title wins")
}

func TestParse_EmptyInput(t *testing.T) {
	result := Parse("")

	assert.Zero(t, result.TotalCount)
	assert.Zero(t, result.TotalDuration)
	assert.Empty(t, result.Sections)
}

func TestParse_RoundTrip(t *testing.T) {
	// Re-emitting title/duration pairs reproduces exactly those sections.
	const n = 12
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "Section %d\n%02d:00\n", i+1, i+1)
	}

	result := Parse(b.String())

	require.Equal(t, n, result.TotalCount)
	for i, s := range result.Sections {
		assert.Equal(t, fmt.Sprintf("Section %d", i+1), s.Title)
		assert.Equal(t, i+1+ReviewOverheadMin, s.Duration)
		assert.Equal(t, i, s.Order)
	}
}

func TestParse_SectionIDsUnique(t *testing.T) {
	result := Parse("A\n01:00\nB\n02:00\nC\n03:00\n")

	seen := make(map[string]bool)
	for _, s := range result.Sections {
		require.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestMinutesFrom(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"minutes and seconds", "05:39", 6 + ReviewOverheadMin},
		{"exact minutes", "10:00", 10 + ReviewOverheadMin},
		{"hours", "1:02:30", 63 + ReviewOverheadMin},
		{"token inside a line", "runtime 07:30 total", 8 + ReviewOverheadMin},
		{"no token at all", "no time here", ReviewOverheadMin},
		{"zero", "0:00", ReviewOverheadMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinutesFrom(tt.line))
		})
	}
}
