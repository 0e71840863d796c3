package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Consultation describes HR's recurring walk-in hours
type Consultation struct {
	rule *rrule.RRule
}

// NewConsultation parses an RFC 5545 RRULE such as
// "FREQ=WEEKLY;BYDAY=TH;BYHOUR=14;BYMINUTE=0;BYSECOND=0". Occurrences are
// computed in loc, counting from anchor.
func NewConsultation(rruleStr string, anchor time.Time, loc *time.Location) (*Consultation, error) {
	rule, err := rrule.StrToRRule(rruleStr)
	if err != nil {
		return nil, fmt.Errorf("parse consultation rrule: %w", err)
	}
	rule.DTStart(anchor.In(loc))
	return &Consultation{rule: rule}, nil
}

// Next returns the first session at or after now
func (c *Consultation) Next(now time.Time) (time.Time, bool) {
	if c == nil {
		return time.Time{}, false
	}
	next := c.rule.After(now, true)
	return next, !next.IsZero()
}
