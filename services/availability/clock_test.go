package availability

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:30", 570, false}, // unpadded hour is tolerated
		{"2:00 PM", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseBookingTime(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"14:00", 840, true},
		{"09:15", 555, true},
		{"2:00 PM", 840, true},
		{"12:00 PM", 720, true},
		{"12:00 AM", 0, true},
		{"9:05 AM", 545, true},
		{"garbage", 0, false},
		{"25:00", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseBookingTime(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseBookingTime(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseBookingTime(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	cases := map[int]string{
		0:    "12:00 AM",
		545:  "9:05 AM",
		720:  "12:00 PM",
		840:  "2:00 PM",
		1439: "11:59 PM",
	}
	for in, want := range cases {
		if got := FormatDisplay(in); got != want {
			t.Errorf("FormatDisplay(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(545); got != "09:05" {
		t.Errorf("FormatClock(545) = %q, want 09:05", got)
	}
}

func TestDayName(t *testing.T) {
	got, err := DayName("2025-06-02")
	if err != nil {
		t.Fatalf("DayName: %v", err)
	}
	if got != "Monday" {
		t.Errorf("DayName(2025-06-02) = %q, want Monday", got)
	}
	if _, err := DayName("June 2, 2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
