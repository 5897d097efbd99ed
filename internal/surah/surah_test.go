package surah

import "testing"

func TestPadProducesThreeDigits(t *testing.T) {
	cases := map[int]string{
		1:   "001",
		9:   "009",
		10:  "010",
		99:  "099",
		100: "100",
		114: "114",
	}
	for number, want := range cases {
		if got := Pad(number); got != want {
			t.Errorf("Pad(%d) = %q, want %q", number, got, want)
		}
	}
	for n := 1; n <= Count; n++ {
		if len(Pad(n)) != 3 {
			t.Fatalf("Pad(%d) is not 3 digits: %q", n, Pad(n))
		}
	}
}

func TestValidRange(t *testing.T) {
	valid := [][2]int{{1, 114}, {1, 1}, {114, 114}, {5, 10}}
	for _, r := range valid {
		if err := ValidRange(r[0], r[1]); err != nil {
			t.Errorf("ValidRange(%d, %d) = %v, want nil", r[0], r[1], err)
		}
	}
	invalid := [][2]int{{0, 114}, {1, 115}, {10, 5}, {-3, 2}, {0, 0}}
	for _, r := range invalid {
		if err := ValidRange(r[0], r[1]); err == nil {
			t.Errorf("ValidRange(%d, %d) = nil, want error", r[0], r[1])
		}
	}
}

func TestNamesTableIsCompleteAndOrdered(t *testing.T) {
	if len(Names) != Count {
		t.Fatalf("Names has %d entries, want %d", len(Names), Count)
	}
	for i, entry := range Names {
		if entry.Number != i+1 {
			t.Fatalf("Names[%d].Number = %d, want %d", i, entry.Number, i+1)
		}
		if entry.Arabic == "" || entry.English == "" {
			t.Fatalf("Names[%d] has empty name fields", i)
		}
	}
}
