package service

import (
	"strings"
	"testing"
	"time"
)

func TestRenderSchedule(t *testing.T) {
	// 2026-03-10 14:00 UTC
	at := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	got, err := RenderSchedule(at, "Asia/Jakarta", "America/New_York")
	if err != nil {
		t.Fatalf("RenderSchedule: %v", err)
	}

	// Jakarta = UTC+7, New York (EDT, Maret) = UTC-4
	if !strings.HasPrefix(got.AgencyTime, "2026-03-10 21:00") {
		t.Errorf("AgencyTime = %q; want prefix 2026-03-10 21:00", got.AgencyTime)
	}
	if !strings.HasPrefix(got.CandidateTime, "2026-03-10 10:00") {
		t.Errorf("CandidateTime = %q; want prefix 2026-03-10 10:00", got.CandidateTime)
	}
	if got.AgencyZone != "Asia/Jakarta" || got.CandidateZone != "America/New_York" {
		t.Errorf("zona tidak diteruskan: %+v", got)
	}
}

func TestRenderScheduleUnknownZone(t *testing.T) {
	at := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	if _, err := RenderSchedule(at, "Asia/Jakarta", "Mars/Olympus"); err == nil {
		t.Fatal("zona tidak dikenal harus error")
	}
	if _, err := RenderSchedule(at, "Nowhere/Nope", "Asia/Jakarta"); err == nil {
		t.Fatal("zona agency tidak dikenal harus error")
	}
}

func TestValidateTimezone(t *testing.T) {
	if err := ValidateTimezone("Asia/Jakarta"); err != nil {
		t.Errorf("Asia/Jakarta harus valid: %v", err)
	}
	if err := ValidateTimezone("Not/AZone"); err == nil {
		t.Error("Not/AZone harus ditolak")
	}
}
