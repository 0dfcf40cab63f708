package domain

import (
	"encoding/json"
	"testing"
)

func TestTimeOfDayMinutes(t *testing.T) {
	if got := (TimeOfDay{Hour: 9, Minute: 30}).Minutes(); got != 570 {
		t.Fatalf("minutes = %d, want 570", got)
	}
	if got := (TimeOfDay{}).Minutes(); got != 0 {
		t.Fatalf("minutes = %d, want 0", got)
	}
}

func TestFromMinutesClampsRange(t *testing.T) {
	cases := []struct {
		in   int
		want TimeOfDay
	}{
		{570, TimeOfDay{Hour: 9, Minute: 30}},
		{0, TimeOfDay{}},
		{1439, TimeOfDay{Hour: 23, Minute: 59}},
		{1500, TimeOfDay{Hour: 23, Minute: 59}},
		{-10, TimeOfDay{}},
	}

	for _, c := range cases {
		if got := FromMinutes(c.in); got != c.want {
			t.Errorf("FromMinutes(%d) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	start := TimeOfDay{Hour: 11, Minute: 45}
	if got := start.Add(30); got != (TimeOfDay{Hour: 12, Minute: 15}) {
		t.Fatalf("add = %v, want 12:15", got)
	}
}

func TestInLunchWindow(t *testing.T) {
	cases := []struct {
		time TimeOfDay
		want bool
	}{
		{TimeOfDay{Hour: 11, Minute: 29}, false},
		{TimeOfDay{Hour: 11, Minute: 30}, true},
		{TimeOfDay{Hour: 12, Minute: 0}, true},
		{TimeOfDay{Hour: 12, Minute: 59}, true},
		{TimeOfDay{Hour: 13, Minute: 0}, false},
		{TimeOfDay{Hour: 9, Minute: 0}, false},
	}

	for _, c := range cases {
		if got := InLunchWindow(c.time); got != c.want {
			t.Errorf("InLunchWindow(%s) = %v, want %v", c.time, got, c.want)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (TimeOfDay{Hour: 9, Minute: 5}) {
		t.Fatalf("parsed = %v, want 09:05", got)
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatal("expected error for hour out of range")
	}
	if _, err := ParseTimeOfDay("bogus"); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	in := TimeOfDay{Hour: 14, Minute: 30}

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"14:30"` {
		t.Fatalf("marshal = %s, want \"14:30\"", raw)
	}

	var out TimeOfDay
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %v, want %v", out, in)
	}
}
