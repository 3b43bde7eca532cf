// file: internals/features/work/attendance/service/sessions.go
package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

/* =======================================================
   Session: satu pasangan check-in/check-out dalam sehari
========================================================*/

// Session disimpan sebagai JSON di kolom notes attendance record:
// {"sessions":[{"in":"09:00:00","out":"17:30:00","jobs":3},{"in":"18:00:00"}]}
// - Jam format HH:MM:SS (HH:MM juga diterima saat baca), wall-clock tanpa timezone.
// - Entry dengan "in" tanpa "out" = sesi yang masih berjalan (maksimal satu per hari).
type Session struct {
	In   string `json:"in"`
	Out  string `json:"out,omitempty"`
	Jobs int    `json:"jobs,omitempty"`
}

type sessionEnvelope struct {
	Sessions []Session `json:"sessions"`
}

// IsOpen: sesi masih berjalan (belum check-out)
func (s Session) IsOpen() bool {
	return strings.TrimSpace(s.In) != "" && strings.TrimSpace(s.Out) == ""
}

/* =======================================================
   Codec: notes (text) <-> []Session
========================================================*/

// DecodeSessions membaca kolom notes sebagai session log.
//   - JSON valid {"sessions":[...]} → entry dengan "in" non-kosong, urutan asli.
//   - Gagal parse / bukan format baru → slice kosong; caller fallback ke field
//     legacy check_in_time/check_out_time + ExtractLegacyJobsCount.
//
// Tidak pernah mengembalikan error.
func DecodeSessions(raw string) []Session {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var env sessionEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil
	}
	if env.Sessions == nil {
		return nil
	}
	out := make([]Session, 0, len(env.Sessions))
	for _, s := range env.Sessions {
		if strings.TrimSpace(s.In) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// EncodeSessions menserialisasi session list ke format notes.
// DecodeSessions(EncodeSessions(s)) == s untuk list hasil codec ini.
func EncodeSessions(sessions []Session) string {
	if sessions == nil {
		sessions = []Session{}
	}
	b, err := json.Marshal(sessionEnvelope{Sessions: sessions})
	if err != nil {
		// envelope berisi string+int saja; marshal tidak mungkin gagal
		return `{"sessions":[]}`
	}
	return string(b)
}

/* =======================================================
   Legacy markers: "Jobs Applied: N" di notes lama
========================================================*/

var legacyJobsRe = regexp.MustCompile(`(?i)jobs applied:\s*(\d+)`)

// ExtractLegacyJobsCount mengambil angka dari marker "Jobs Applied: N".
// Kalau ada beberapa marker (sisa edit manual lama), yang TERAKHIR menang —
// bukan dijumlahkan.
func ExtractLegacyJobsCount(raw string) int {
	matches := legacyJobsRe.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return 0
	}
	n, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// StripLegacyMarkers menghapus SEMUA marker "Jobs Applied: N" dari notes lama
// lalu trim whitespace, untuk menampilkan teks bersih di samping count.
func StripLegacyMarkers(raw string) string {
	return strings.TrimSpace(legacyJobsRe.ReplaceAllString(raw, ""))
}

/* =======================================================
   Aggregator: jam kerja & jobs per hari
========================================================*/

// parseClock menerima "HH:MM:SS" atau "HH:MM" (wall-clock, tanpa timezone).
func parseClock(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	var t time.Time
	var err error
	switch strings.Count(s, ":") {
	case 2:
		t, err = time.Parse("15:04:05", s)
	case 1:
		t, err = time.Parse("15:04", s)
	default:
		return 0, false
	}
	if err != nil {
		return 0, false
	}
	d := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
	return d, true
}

// HoursForSpan menghitung (out - in) dalam jam, aritmetika wall-clock satu hari.
// Hasil negatif/nol atau jam tidak valid → 0 (clamp, bukan error).
func HoursForSpan(inTime, outTime string) float64 {
	in, ok := parseClock(inTime)
	if !ok {
		return 0
	}
	out, ok := parseClock(outTime)
	if !ok {
		return 0
	}
	if out <= in {
		return 0
	}
	return (out - in).Hours()
}

// TotalHoursForDay: sessions non-kosong → jumlah span sesi yang lengkap;
// kosong → satu span dari field legacy. Caller tidak perlu bedakan format.
func TotalHoursForDay(sessions []Session, fallbackCheckIn, fallbackCheckOut string) float64 {
	if len(sessions) > 0 {
		total := 0.0
		for _, s := range sessions {
			if s.IsOpen() {
				continue
			}
			total += HoursForSpan(s.In, s.Out)
		}
		return total
	}
	return HoursForSpan(fallbackCheckIn, fallbackCheckOut)
}

// TotalJobsForDay: sessions non-kosong → jumlah jobs per sesi (default 0);
// kosong → marker legacy di notes.
func TotalJobsForDay(sessions []Session, legacyNotes string) int {
	if len(sessions) > 0 {
		total := 0
		for _, s := range sessions {
			if s.Jobs > 0 {
				total += s.Jobs
			}
		}
		return total
	}
	return ExtractLegacyJobsCount(legacyNotes)
}

/* =======================================================
   State machine per (member, date):
   NoSession → CheckedIn → CheckedOut → CheckedIn → ...
========================================================*/

var (
	ErrAlreadyCheckedIn = errors.New("masih ada sesi berjalan, check-out dulu sebelum check-in lagi")
	ErrNoOpenSession    = errors.New("tidak ada sesi berjalan untuk di-check-out")
	ErrBadClock         = errors.New("format jam tidak valid (pakai HH:MM:SS)")
)

// OpenSessionIndex mengembalikan index sesi yang masih berjalan, atau -1.
func OpenSessionIndex(sessions []Session) int {
	for i, s := range sessions {
		if s.IsOpen() {
			return i
		}
	}
	return -1
}

// HasOpenSession: masih ada sesi berjalan di list.
func HasOpenSession(sessions []Session) bool {
	return OpenSessionIndex(sessions) >= 0
}

// AppendCheckIn menambah sesi baru. Ditolak kalau masih ada sesi berjalan.
func AppendCheckIn(sessions []Session, at string) ([]Session, error) {
	if _, ok := parseClock(at); !ok {
		return sessions, ErrBadClock
	}
	if HasOpenSession(sessions) {
		return sessions, ErrAlreadyCheckedIn
	}
	return append(sessions, Session{In: at}), nil
}

// CloseOpenSession mengisi out (+jobs) pada sesi yang berjalan, in-place.
// Ditolak kalau tidak ada sesi berjalan.
func CloseOpenSession(sessions []Session, at string, jobs int) ([]Session, error) {
	if _, ok := parseClock(at); !ok {
		return sessions, ErrBadClock
	}
	idx := OpenSessionIndex(sessions)
	if idx < 0 {
		return sessions, ErrNoOpenSession
	}
	sessions[idx].Out = at
	if jobs > 0 {
		sessions[idx].Jobs = jobs
	}
	return sessions, nil
}

/* =======================================================
   Back-fill field legacy di record (konsumen lama)
========================================================*/

// EarliestIn: "in" paling awal hari itu (untuk kolom check_in_time).
func EarliestIn(sessions []Session) string {
	best := ""
	var bestD time.Duration
	for _, s := range sessions {
		d, ok := parseClock(s.In)
		if !ok {
			continue
		}
		if best == "" || d < bestD {
			best = s.In
			bestD = d
		}
	}
	return best
}

// LatestOut: check-out terakhir, atau "" selama masih ada sesi berjalan.
func LatestOut(sessions []Session) string {
	if HasOpenSession(sessions) {
		return ""
	}
	best := ""
	var bestD time.Duration
	for _, s := range sessions {
		if s.Out == "" {
			continue
		}
		d, ok := parseClock(s.Out)
		if !ok {
			continue
		}
		if best == "" || d > bestD {
			best = s.Out
			bestD = d
		}
	}
	return best
}
