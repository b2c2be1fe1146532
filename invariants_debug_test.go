//go:build ac_debug

package ahocorasick

import "testing"

func TestInvariantsHoldAfterMutations(t *testing.T) {
	a := New()
	if err := a.checkInvariants(); err != nil {
		t.Fatalf("empty automaton: %v", err)
	}

	a.Build([]string{"apple", "app", "bat"})
	if err := a.checkInvariants(); err != nil {
		t.Fatalf("after build: %v", err)
	}

	a.Insert("")
	if err := a.checkInvariants(); err != nil {
		t.Fatalf("after inserting empty pattern: %v", err)
	}

	a.Remove("app")
	if err := a.checkInvariants(); err != nil {
		t.Fatalf("after remove: %v", err)
	}

	a.Remove("")
	if err := a.checkInvariants(); err != nil {
		t.Fatalf("after removing empty pattern: %v", err)
	}

	a.Insert("i")
	a.Insert("in")
	a.Insert("tin")
	a.Insert("sting")
	if err := a.checkInvariants(); err != nil {
		t.Fatalf("after overlapping inserts: %v", err)
	}
}
