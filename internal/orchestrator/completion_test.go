package orchestrator

import (
	"testing"

	"github.com/akravets/dbrain-bot/internal/domain"
)

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name   string
		report domain.Report
		want   bool
	}{
		{
			name:   "Explicit marker",
			report: domain.OkReport("Done! MAP_CREATED hypothesis/business/growth.md"),
			want:   true,
		},
		{
			name:   "Marker without path",
			report: domain.OkReport("MAP_CREATED"),
			want:   true,
		},
		{
			name:   "Map path without marker",
			report: domain.OkReport("Saved to hypothesis/personal/fitness-2026.md, review it tomorrow"),
			want:   true,
		},
		{
			name:   "Ordinary question",
			report: domain.OkReport("What outcome do you want to achieve?"),
			want:   false,
		},
		{
			name:   "Mentions hypothesis dir without a file",
			report: domain.OkReport("I will save it under hypothesis/business/ later"),
			want:   false,
		},
		{
			name:   "Archive path does not complete",
			report: domain.OkReport("see hypothesis/archive/old-map.md"),
			want:   false,
		},
		{
			name:   "Error report never completes",
			report: domain.ErrReport("MAP_CREATED hypothesis/business/x.md"),
			want:   false,
		},
		{
			name:   "Empty report",
			report: domain.OkReport(""),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isComplete(tt.report); got != tt.want {
				t.Errorf("isComplete(%+v) = %v, want %v", tt.report, got, tt.want)
			}
		})
	}
}
