package availability

import "testing"

func rng(start, end string) DateRange {
	return DateRange{Start: MustDate(start), End: MustDate(end)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    DateRange
		b    DateRange
		want bool
	}{
		{"disjoint_before", rng("2025-11-01", "2025-11-03"), rng("2025-11-05", "2025-11-07"), false},
		{"disjoint_after", rng("2025-11-05", "2025-11-07"), rng("2025-11-01", "2025-11-03"), false},
		{"shared_boundary_day", rng("2025-11-01", "2025-11-03"), rng("2025-11-03", "2025-11-05"), true},
		{"contained", rng("2025-11-01", "2025-11-10"), rng("2025-11-04", "2025-11-06"), true},
		{"identical", rng("2025-11-01", "2025-11-03"), rng("2025-11-01", "2025-11-03"), true},
		{"single_day_inside", rng("2025-11-11", "2025-11-11"), rng("2025-11-10", "2025-11-12"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	existing := []DateRange{
		rng("2025-11-10", "2025-11-12"),
		rng("2025-12-01", "2025-12-03"),
	}

	t.Run("free_period", func(t *testing.T) {
		if !IsAvailable(rng("2025-11-20", "2025-11-22"), existing) {
			t.Error("expected period to be available")
		}
	})

	t.Run("single_day_inside_reservation", func(t *testing.T) {
		if IsAvailable(rng("2025-11-11", "2025-11-11"), existing) {
			t.Error("expected conflict with existing reservation")
		}
	})

	t.Run("boundary_day_conflicts", func(t *testing.T) {
		if IsAvailable(rng("2025-11-12", "2025-11-15"), existing) {
			t.Error("expected inclusive boundary to conflict")
		}
	})

	t.Run("inverted_range_never_available", func(t *testing.T) {
		if IsAvailable(rng("2025-11-22", "2025-11-20"), nil) {
			t.Error("expected inverted range to be unavailable")
		}
	})

	t.Run("no_reservations", func(t *testing.T) {
		if !IsAvailable(rng("2025-11-11", "2025-11-11"), nil) {
			t.Error("expected availability with no reservations")
		}
	})
}

func TestBookingRanges(t *testing.T) {
	bookings := []Booking{
		{EventName: "Casamento A", DateRange: rng("2025-11-10", "2025-11-12")},
		{EventName: "Formatura B", DateRange: rng("2025-12-01", "2025-12-01")},
	}

	ranges := BookingRanges(bookings)
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	if !ranges[0].Start.Equal(MustDate("2025-11-10")) {
		t.Errorf("unexpected first range start: %v", ranges[0].Start)
	}
}

func TestParseRange(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := ParseRange("2025-11-10", "2025-11-12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Valid() {
			t.Error("expected valid range")
		}
	})

	t.Run("malformed_start", func(t *testing.T) {
		if _, err := ParseRange("10/11/2025", "2025-11-12"); err == nil {
			t.Error("expected error for malformed start date")
		}
	})

	t.Run("malformed_end", func(t *testing.T) {
		if _, err := ParseRange("2025-11-10", "someday"); err == nil {
			t.Error("expected error for malformed end date")
		}
	})
}
