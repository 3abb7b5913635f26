package nonempty

import (
	"errors"
	"testing"
)

func TestFromRejectsEmpty(t *testing.T) {
	_, err := From([]int(nil))
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("From(nil) error = %v, want ErrEmpty", err)
	}

	_, err = From([]int{})
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("From(empty) error = %v, want ErrEmpty", err)
	}
}

func TestFrom(t *testing.T) {
	s, err := From([]string{"a", "b"})
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := s.Head(); got != "a" {
		t.Errorf("Head() = %q, want %q", got, "a")
	}
}

func TestOfAndAppend(t *testing.T) {
	s := Of(1)
	s = s.Append(2, 3)

	want := []int{1, 2, 3}
	got := s.Slice()
	if len(got) != len(want) {
		t.Fatalf("Slice() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
