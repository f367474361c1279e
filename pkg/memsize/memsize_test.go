package memsize

import "testing"

func TestUnits(t *testing.T) {
	cases := []struct {
		got  Size
		want uint64
	}{
		{1 * B, 1},
		{1 * KB, 1000},
		{1 * KiB, 1024},
		{1 * MB, 1000 * 1000},
		{1 * MiB, 1024 * 1024},
		{1 * GB, 1000 * 1000 * 1000},
		{1 * GiB, 1024 * 1024 * 1024},
		{1024 * KiB, 1024 * 1024},
	}
	for _, c := range cases {
		if c.got.Bytes() != c.want {
			t.Errorf("Expected %d bytes, got %d", c.want, c.got.Bytes())
		}
	}
}

func TestArithmetic(t *testing.T) {
	total := 2*MiB + 512*KiB
	if total.Bytes() != 2*1024*1024+512*1024 {
		t.Errorf("Unexpected sum: %d", total.Bytes())
	}

	if diff := 2*MiB - 1*MiB; diff != 1*MiB {
		t.Errorf("Unexpected difference: %d", diff)
	}

	if scaled := 3 * (4 * KiB); scaled != 12*KiB {
		t.Errorf("Unexpected product: %d", scaled)
	}
}

func TestString(t *testing.T) {
	if s := (64 * MiB).String(); s != "64 MiB" {
		t.Errorf("String = %q; want %q", s, "64 MiB")
	}
	if s := (0 * B).String(); s != "0 B" {
		t.Errorf("String = %q; want %q", s, "0 B")
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("42 MiB")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s != 42*MiB {
		t.Errorf("Parse = %d; want %d", s, 42*MiB)
	}

	if _, err := Parse("not a size"); err == nil {
		t.Error("Expected parse error")
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, orig := range []Size{1 * KiB, 64 * MiB, 3 * GiB} {
		parsed, err := Parse(orig.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", orig.String(), err)
		}
		if parsed != orig {
			t.Errorf("Round trip %q: got %d, want %d", orig.String(), parsed, orig)
		}
	}
}
