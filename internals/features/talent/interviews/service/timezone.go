package service

import (
	"fmt"
	"time"
)

// RenderedSchedule: satu jadwal ditampilkan di dua zona waktu sekaligus,
// zona agency dan zona kandidat.
type RenderedSchedule struct {
	AgencyTime    string `json:"agency_time"`
	AgencyZone    string `json:"agency_zone"`
	CandidateTime string `json:"candidate_time"`
	CandidateZone string `json:"candidate_zone"`
}

const scheduleLayout = "2006-01-02 15:04 MST"

// RenderSchedule mengkonversi scheduled_at ke zona agency + zona kandidat.
// Nama zona harus IANA (mis. "Asia/Jakarta", "America/New_York").
func RenderSchedule(scheduledAt time.Time, agencyZone, candidateZone string) (RenderedSchedule, error) {
	agencyLoc, err := time.LoadLocation(agencyZone)
	if err != nil {
		return RenderedSchedule{}, fmt.Errorf("zona agency %q tidak dikenal: %w", agencyZone, err)
	}
	candidateLoc, err := time.LoadLocation(candidateZone)
	if err != nil {
		return RenderedSchedule{}, fmt.Errorf("zona kandidat %q tidak dikenal: %w", candidateZone, err)
	}

	return RenderedSchedule{
		AgencyTime:    scheduledAt.In(agencyLoc).Format(scheduleLayout),
		AgencyZone:    agencyZone,
		CandidateTime: scheduledAt.In(candidateLoc).Format(scheduleLayout),
		CandidateZone: candidateZone,
	}, nil
}

// ValidateTimezone memastikan nama zona valid sebelum disimpan.
func ValidateTimezone(name string) error {
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("timezone %q tidak dikenal", name)
	}
	return nil
}
