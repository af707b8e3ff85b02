package schedule

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("zaman ayrıştırılamadı: %v", err)
	}
	return parsed
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{
			name:   "aynı aralık çakışır",
			aStart: "2026-08-31 09:00", aEnd: "2026-08-31 17:00",
			bStart: "2026-08-31 09:00", bEnd: "2026-08-31 17:00",
			want: true,
		},
		{
			name:   "kısmi kesişim çakışır",
			aStart: "2026-08-31 09:00", aEnd: "2026-08-31 17:00",
			bStart: "2026-08-31 16:00", bEnd: "2026-08-31 18:00",
			want: true,
		},
		{
			name:   "içerme çakışır",
			aStart: "2026-08-31 08:00", aEnd: "2026-08-31 20:00",
			bStart: "2026-08-31 10:00", bEnd: "2026-08-31 12:00",
			want: true,
		},
		{
			name:   "ayrık aralıklar çakışmaz",
			aStart: "2026-08-31 09:00", aEnd: "2026-08-31 12:00",
			bStart: "2026-08-31 14:00", bEnd: "2026-08-31 18:00",
			want: false,
		},
		{
			name:   "uç uca vardiyalar çakışmaz",
			aStart: "2026-08-31 09:00", aEnd: "2026-08-31 17:00",
			bStart: "2026-08-31 17:00", bEnd: "2026-08-31 22:00",
			want: false,
		},
		{
			name:   "farklı günler çakışmaz",
			aStart: "2026-08-31 09:00", aEnd: "2026-08-31 17:00",
			bStart: "2026-09-01 09:00", bEnd: "2026-09-01 17:00",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aStart := mustTime(t, tt.aStart)
			aEnd := mustTime(t, tt.aEnd)
			bStart := mustTime(t, tt.bStart)
			bEnd := mustTime(t, tt.bEnd)

			if got := Overlaps(aStart, aEnd, bStart, bEnd); got != tt.want {
				t.Errorf("Overlaps=%v bekleniyordu, %v geldi", tt.want, got)
			}
			// Simetrik olmalı
			if got := Overlaps(bStart, bEnd, aStart, aEnd); got != tt.want {
				t.Errorf("ters sırada Overlaps=%v bekleniyordu, %v geldi", tt.want, got)
			}
		})
	}
}
