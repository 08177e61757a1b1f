// Package parser converts a raw course transcript, as pasted from a video
// platform's curriculum page, into ordered timed sections.
//
// The input format is loose: section titles and their durations arrive on
// separate lines, interleaved with chapter numbers and platform chrome. The
// parser is a narrow heuristic for that one format, not a general text
// analyzer. Lines that cannot be placed are dropped without signal.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/haeunpark/studyplan/internal/domain"
)

// ReviewOverheadMin is added to every section's running time to account for
// pausing, note taking and review.
const ReviewOverheadMin = 20

// Result is the structured output of one transcript parse.
type Result struct {
	Sections      []domain.Section
	TotalDuration int // minutes, overhead included
	TotalCount    int
}

// timePattern matches MM:SS or HH:MM:SS anywhere in a line.
var timePattern = regexp.MustCompile(`\d{1,2}:\d{2}(:\d{2})?`)

// numericLine matches chapter/section markers such as "3" or "12".
var numericLine = regexp.MustCompile(`^\d+$`)

// noisePhrases are platform chrome substrings that never belong to a
// section title: free-preview markers, download links, material links.
var noisePhrases = []string{
	"무료보기",
	"다운로드",
	"수업자료",
	"강의자료",
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineMarker
	lineNoise
	lineDuration
	lineTitle
)

// classify assigns each trimmed line to exactly one kind. Precedence:
// blank, numeric marker, noise phrase, duration, title.
func classify(line string) lineKind {
	switch {
	case line == "":
		return lineBlank
	case numericLine.MatchString(line):
		return lineMarker
	case isNoise(line):
		return lineNoise
	case timePattern.MatchString(line):
		return lineDuration
	default:
		return lineTitle
	}
}

func isNoise(line string) bool {
	for _, phrase := range noisePhrases {
		if strings.Contains(line, phrase) {
			return true
		}
	}
	return false
}

// Parse splits text into lines and runs the line classifier over them.
// A title line opens a pending section; the next duration line closes it.
// A duration line with no pending title is dropped, as is a pending title
// never followed by a duration. Parse never fails.
func Parse(text string) Result {
	var result Result
	pendingTitle := ""
	hasPending := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch classify(line) {
		case lineBlank, lineMarker, lineNoise:
			continue

		case lineDuration:
			if !hasPending {
				continue
			}
			result.Sections = append(result.Sections, domain.Section{
				ID:       uuid.New().String(),
				Title:    pendingTitle,
				Duration: MinutesFrom(line),
				Order:    len(result.Sections),
			})
			pendingTitle = ""
			hasPending = false

		case lineTitle:
			// A new title overwrites any unconsumed one.
			pendingTitle = line
			hasPending = true
		}
	}

	for _, s := range result.Sections {
		result.TotalDuration += s.Duration
	}
	result.TotalCount = len(result.Sections)
	return result
}

// MinutesFrom extracts the first time token from line and converts it to
// whole minutes plus the review overhead. MM:SS becomes m+ceil(s/60);
// HH:MM:SS becomes h*60+m+ceil(s/60). Malformed numeric components count
// as zero. A line without any time token yields the bare overhead.
func MinutesFrom(line string) int {
	token := timePattern.FindString(line)
	if token == "" {
		return ReviewOverheadMin
	}

	parts := strings.Split(token, ":")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		nums[i] = n
	}

	var minutes int
	switch len(nums) {
	case 2:
		minutes = nums[0] + ceilSeconds(nums[1])
	case 3:
		minutes = nums[0]*60 + nums[1] + ceilSeconds(nums[2])
	}
	return minutes + ReviewOverheadMin
}

func ceilSeconds(s int) int {
	if s <= 0 {
		return 0
	}
	return (s + 59) / 60
}
