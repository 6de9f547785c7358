package hash

import "testing"

func TestSumString_Deterministic(t *testing.T) {
	a := SumString("hello meeting transcript")
	b := SumString("hello meeting transcript")
	if a != b {
		t.Fatalf("same input produced different hashes: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestSumString_SensitiveToAnyChange(t *testing.T) {
	base := SumString("we agreed to follow up on Tuesday")
	variants := []string{
		"we agreed to follow up on tuesday",
		"we agreed to follow up on Tuesday ",
		"We agreed to follow up on Tuesday",
		"",
	}
	for _, v := range variants {
		if SumString(v) == base {
			t.Fatalf("variant %q hashed identically to base", v)
		}
	}
}

func TestSum_MatchesSumString(t *testing.T) {
	if Sum([]byte("abc")) != SumString("abc") {
		t.Fatal("Sum and SumString disagree on identical input")
	}
}
