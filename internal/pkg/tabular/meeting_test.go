package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMeetingDays(t *testing.T) {
	tests := []struct {
		name  string
		meets string
		want  []string
	}{
		{"short names", "MONWED 9:30AM-10:45AM", []string{"MON", "WED"}},
		{"single letters", "MW 2:00PM-3:15PM", []string{"M", "W"}},
		{"thursday letter", "TR 11:00AM-12:15PM", []string{"T", "R"}},
		{"lowercase", "tuethu 9:30-10:45", []string{"TUE", "THU"}},
		{"single day", "FRI 10:00AM-12:45PM", []string{"FRI"}},
		{"no days", "9:30AM-10:45AM", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMeetingDays(tt.meets))
		})
	}
}

func TestParseMeetingTime(t *testing.T) {
	tests := []struct {
		name      string
		meets     string
		wantStart string
		wantEnd   string
	}{
		{"am/pm", "MONWED 9:30AM-10:45AM", "9:30AM", "10:45AM"},
		{"24 hour", "MW 14:00-15:15", "14:00", "15:15"},
		{"spaced dash", "TR 2:00PM - 3:15PM", "2:00PM", "3:15PM"},
		{"lowercase meridiem", "FRI 10:00am-12:45pm", "10:00am", "12:45pm"},
		{"no time", "MONWED", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ParseMeetingTime(tt.meets)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
