package controller

import (
	"testing"

	"staffhub_backend/internals/features/work/attendance/service"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestBuildManualSpan(t *testing.T) {
	tests := []struct {
		name         string
		existingIn   *string
		existingOut  *string
		reqIn        *string
		reqOut       *string
		reqJobs      *int
		fallbackJobs int
		want         service.Session
		wantErr      bool
	}{
		{
			name:    "edit jobs saja tanpa check-in ditolak",
			reqJobs: intPtr(4),
			wantErr: true,
		},
		{
			name:    "check-out saja tanpa check-in ditolak",
			reqOut:  strPtr("17:00:00"),
			wantErr: true,
		},
		{
			name:         "edit jobs saja memakai span record yang ada",
			existingIn:   strPtr("09:00:00"),
			existingOut:  strPtr("17:00:00"),
			reqJobs:      intPtr(4),
			fallbackJobs: 2,
			want:         service.Session{In: "09:00:00", Out: "17:00:00", Jobs: 4},
		},
		{
			name:         "tanpa jobs di payload pakai fallback",
			existingIn:   strPtr("09:00:00"),
			reqOut:       strPtr("12:30:00"),
			fallbackJobs: 3,
			want:         service.Session{In: "09:00:00", Out: "12:30:00", Jobs: 3},
		},
		{
			name:       "payload menimpa nilai record",
			existingIn: strPtr("09:00:00"),
			reqIn:      strPtr("10:00:00"),
			want:       service.Session{In: "10:00:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildManualSpan(tt.existingIn, tt.existingOut, tt.reqIn, tt.reqOut, tt.reqJobs, tt.fallbackJobs)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("buildManualSpan = %+v; want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildManualSpan: %v", err)
			}
			if got != tt.want {
				t.Errorf("buildManualSpan = %+v; want %+v", got, tt.want)
			}
		})
	}
}
