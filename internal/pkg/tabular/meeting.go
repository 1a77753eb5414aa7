package tabular

import (
	"regexp"
	"strings"
)

// Day tokens accept both short names and the single-letter scheme
// (R = Thursday). The first contiguous run of tokens in the meeting
// string is taken as the day spec.
var (
	dayRunPattern   = regexp.MustCompile(`(?:MON|TUE|WED|THU|FRI|M|T|W|R|F)+`)
	dayTokenPattern = regexp.MustCompile(`MON|TUE|WED|THU|FRI|M|T|W|R|F`)
	timePattern     = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}(?:AM|PM)?)\s*-\s*(\d{1,2}:\d{2}(?:AM|PM)?)`)
)

// ParseMeetingDays extracts the weekday tokens from a free-text
// meeting string, e.g. "MONWED 9:30AM-10:45AM" -> ["MON","WED"] and
// "MW 2:00PM-3:15PM" -> ["M","W"]. No match yields nil.
func ParseMeetingDays(meets string) []string {
	// Drop the time span first so the M in AM/PM never reads as a
	// Monday token.
	meets = timePattern.ReplaceAllString(meets, "")
	run := dayRunPattern.FindString(strings.ToUpper(meets))
	if run == "" {
		return nil
	}
	return dayTokenPattern.FindAllString(run, -1)
}

// ParseMeetingTime extracts a start-end pair in H:MM optional-AM/PM
// form. Both results are empty when the string has no match.
func ParseMeetingTime(meets string) (start, end string) {
	match := timePattern.FindStringSubmatch(meets)
	if match == nil {
		return "", ""
	}
	return match[1], match[2]
}
