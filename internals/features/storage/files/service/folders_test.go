package service

import (
	"reflect"
	"testing"
)

func TestDeriveFolders(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{
			name: "kosong",
			keys: nil,
			want: []string{},
		},
		{
			name: "file di root tanpa folder",
			keys: []string{"laporan.pdf"},
			want: []string{},
		},
		{
			name: "satu level",
			keys: []string{"resumes/cv.pdf"},
			want: []string{"resumes"},
		},
		{
			name: "folder perantara ikut terhitung",
			keys: []string{"team/docs/2026/ringkasan.xlsx"},
			want: []string{"team", "team/docs", "team/docs/2026"},
		},
		{
			name: "duplikat dan cabang",
			keys: []string{
				"a/b/x.pdf",
				"a/c/y.png",
				"a/b/z.txt",
			},
			want: []string{"a", "a/b", "a/c"},
		},
		{
			name: "slash ekstra dibersihkan",
			keys: []string{"/chat//uploads/img.webp", "  "},
			want: []string{"chat", "chat/uploads"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFolders(tt.keys)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeriveFolders(%v) = %v; want %v", tt.keys, got, tt.want)
			}
		})
	}
}
