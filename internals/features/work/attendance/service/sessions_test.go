package service

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDecodeSessions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Session
	}{
		{
			name: "format baru lengkap",
			raw:  `{"sessions":[{"in":"09:00:00","out":"17:30:00","jobs":3},{"in":"18:00:00"}]}`,
			want: []Session{
				{In: "09:00:00", Out: "17:30:00", Jobs: 3},
				{In: "18:00:00"},
			},
		},
		{name: "kosong", raw: "", want: nil},
		{name: "teks bebas legacy", raw: "Kerja dari rumah. Jobs Applied: 4", want: nil},
		{name: "JSON rusak", raw: `{"sessions":[{"in":`, want: nil},
		{name: "JSON valid tanpa sessions", raw: `{"note":"hi"}`, want: nil},
		{
			name: "entry tanpa in dibuang",
			raw:  `{"sessions":[{"out":"12:00:00"},{"in":"13:00:00","out":"14:00:00"}]}`,
			want: []Session{{In: "13:00:00", Out: "14:00:00"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeSessions(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeSessions() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	lists := [][]Session{
		{},
		{{In: "09:00:00", Out: "17:30:00", Jobs: 3}},
		{{In: "09:00:00", Out: "13:00:00", Jobs: 2}, {In: "14:00:00"}},
		{{In: "08:30:00", Out: "12:00:00"}, {In: "13:00:00", Out: "18:15:00", Jobs: 7}},
	}
	for _, s := range lists {
		got := DecodeSessions(EncodeSessions(s))
		want := s
		if len(want) == 0 {
			// decode normalizes empty envelope to empty slice
			if len(got) != 0 {
				t.Errorf("round-trip empty list = %#v", got)
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("round-trip = %#v, want %#v", got, want)
		}
	}
}

func TestEncodeSessionsWireFormat(t *testing.T) {
	got := EncodeSessions([]Session{{In: "09:00:00", Out: "17:30:00", Jobs: 3}, {In: "18:00:00"}})
	want := `{"sessions":[{"in":"09:00:00","out":"17:30:00","jobs":3},{"in":"18:00:00"}]}`
	if got != want {
		t.Errorf("EncodeSessions() = %s, want %s", got, want)
	}
	if EncodeSessions(nil) != `{"sessions":[]}` {
		t.Errorf("EncodeSessions(nil) = %s", EncodeSessions(nil))
	}
}

func TestExtractLegacyJobsCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "marker terakhir menang", raw: "Jobs Applied: 2 ... Jobs Applied: 5", want: 5},
		{name: "case-insensitive", raw: "sudah lapor jobs applied: 7 hari ini", want: 7},
		{name: "tanpa marker", raw: "kerja biasa", want: 0},
		{name: "kosong", raw: "", want: 0},
		{name: "di tengah teks", raw: "Pagi meeting. Jobs Applied: 3. Lanjut sourcing.", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractLegacyJobsCount(tt.raw); got != tt.want {
				t.Errorf("ExtractLegacyJobsCount(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStripLegacyMarkers(t *testing.T) {
	got := StripLegacyMarkers("Jobs Applied: 2 ... Jobs Applied: 5")
	if got != "..." {
		t.Errorf("StripLegacyMarkers() = %q, want %q", got, "...")
	}
	got = StripLegacyMarkers("  Pagi meeting. Jobs Applied: 3  ")
	if got != "Pagi meeting." {
		t.Errorf("StripLegacyMarkers() = %q", got)
	}
}

func TestHoursForSpan(t *testing.T) {
	tests := []struct {
		name    string
		in, out string
		want    float64
	}{
		{name: "siang normal", in: "09:00", out: "17:30", want: 8.5},
		{name: "overnight tanpa rollover = 0", in: "17:00", out: "09:00", want: 0},
		{name: "sama persis = 0", in: "09:00:00", out: "09:00:00", want: 0},
		{name: "dengan detik", in: "09:00:00", out: "09:30:00", want: 0.5},
		{name: "in rusak", in: "abc", out: "10:00", want: 0},
		{name: "out rusak", in: "09:00", out: "zzz", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HoursForSpan(tt.in, tt.out); !almostEqual(got, tt.want) {
				t.Errorf("HoursForSpan(%q, %q) = %v, want %v", tt.in, tt.out, got, tt.want)
			}
		})
	}
}

func TestTotalHoursForDay(t *testing.T) {
	tests := []struct {
		name        string
		sessions    []Session
		fbIn, fbOut string
		want        float64
	}{
		{
			name: "dua sesi lengkap",
			sessions: []Session{
				{In: "09:00", Out: "13:00"},
				{In: "14:00", Out: "18:00"},
			},
			want: 8.0,
		},
		{name: "fallback legacy", sessions: nil, fbIn: "10:00", fbOut: "18:00", want: 8.0},
		{
			name: "sesi berjalan tidak dihitung",
			sessions: []Session{
				{In: "09:00", Out: "12:00"},
				{In: "13:00"},
			},
			want: 3.0,
		},
		{
			name: "span negatif di-clamp",
			sessions: []Session{
				{In: "09:00", Out: "08:00"},
				{In: "10:00", Out: "12:00"},
			},
			want: 2.0,
		},
		{name: "kosong semua", sessions: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalHoursForDay(tt.sessions, tt.fbIn, tt.fbOut); !almostEqual(got, tt.want) {
				t.Errorf("TotalHoursForDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalJobsForDay(t *testing.T) {
	sessions := []Session{
		{In: "a", Out: "b", Jobs: 2},
		{In: "c", Out: "d", Jobs: 3},
	}
	if got := TotalJobsForDay(sessions, ""); got != 5 {
		t.Errorf("TotalJobsForDay(sessions) = %d, want 5", got)
	}
	// fallback ke marker legacy saat sessions kosong
	if got := TotalJobsForDay(nil, "Jobs Applied: 2 ... Jobs Applied: 5"); got != 5 {
		t.Errorf("TotalJobsForDay(legacy) = %d, want 5", got)
	}
}

func TestCheckInCheckOutStateMachine(t *testing.T) {
	// NoSession → check-out ditolak
	if _, err := CloseOpenSession(nil, "17:00:00", 0); err != ErrNoOpenSession {
		t.Fatalf("check-out tanpa sesi: err = %v, want ErrNoOpenSession", err)
	}

	// NoSession → CheckedIn
	sessions, err := AppendCheckIn(nil, "09:00:00")
	if err != nil {
		t.Fatalf("check-in pertama: %v", err)
	}
	if !HasOpenSession(sessions) {
		t.Fatal("harus ada sesi berjalan setelah check-in")
	}

	// CheckedIn → check-in lagi ditolak
	if _, err := AppendCheckIn(sessions, "10:00:00"); err != ErrAlreadyCheckedIn {
		t.Fatalf("double check-in: err = %v, want ErrAlreadyCheckedIn", err)
	}

	// CheckedIn → CheckedOut
	sessions, err = CloseOpenSession(sessions, "12:00:00", 2)
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if HasOpenSession(sessions) {
		t.Fatal("tidak boleh ada sesi berjalan setelah check-out")
	}

	// CheckedOut → check-out lagi ditolak
	if _, err := CloseOpenSession(sessions, "13:00:00", 0); err != ErrNoOpenSession {
		t.Fatalf("double check-out: err = %v, want ErrNoOpenSession", err)
	}

	// CheckedOut → CheckedIn lagi (sesi baru di-append)
	sessions, err = AppendCheckIn(sessions, "13:00:00")
	if err != nil {
		t.Fatalf("check-in kedua: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}

	// jam rusak ditolak
	if _, err := AppendCheckIn(nil, "9 pagi"); err != ErrBadClock {
		t.Fatalf("jam rusak: err = %v, want ErrBadClock", err)
	}
}

func TestEndToEndDayScenario(t *testing.T) {
	// 09:00 check-in, 12:00 check-out (2 jobs), 13:00 check-in, 17:00 check-out (1 job)
	sessions, err := AppendCheckIn(nil, "09:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if sessions, err = CloseOpenSession(sessions, "12:00:00", 2); err != nil {
		t.Fatal(err)
	}
	if sessions, err = AppendCheckIn(sessions, "13:00:00"); err != nil {
		t.Fatal(err)
	}
	if sessions, err = CloseOpenSession(sessions, "17:00:00", 1); err != nil {
		t.Fatal(err)
	}

	stored := EncodeSessions(sessions)
	decoded := DecodeSessions(stored)
	if len(decoded) != 2 {
		t.Fatalf("decoded %d sessions, want 2", len(decoded))
	}
	if got := TotalHoursForDay(decoded, "", ""); !almostEqual(got, 7.0) {
		t.Errorf("TotalHoursForDay = %v, want 7.0", got)
	}
	if got := TotalJobsForDay(decoded, stored); got != 3 {
		t.Errorf("TotalJobsForDay = %d, want 3", got)
	}
	if got := EarliestIn(decoded); got != "09:00:00" {
		t.Errorf("EarliestIn = %q", got)
	}
	if got := LatestOut(decoded); got != "17:00:00" {
		t.Errorf("LatestOut = %q", got)
	}
}

func TestLatestOutWhileOpen(t *testing.T) {
	sessions := []Session{{In: "09:00:00", Out: "12:00:00"}, {In: "13:00:00"}}
	if got := LatestOut(sessions); got != "" {
		t.Errorf("LatestOut saat sesi berjalan = %q, want kosong", got)
	}
	if got := EarliestIn(sessions); got != "09:00:00" {
		t.Errorf("EarliestIn = %q", got)
	}
}
