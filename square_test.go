package chess

import "testing"

func TestSquareStringRoundTrip(t *testing.T) {
	for _, name := range []string{"a1", "e4", "h8", "d5"} {
		sq, ok := ParseSquare(name)
		if !ok {
			t.Fatalf("ParseSquare(%q) failed", name)
		}
		if got := sq.String(); got != name {
			t.Errorf("round trip %q -> %v -> %q", name, sq, got)
		}
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "i1", "a9", "a0", "aa", "e44"} {
		if _, ok := ParseSquare(bad); ok {
			t.Errorf("ParseSquare(%q) should fail", bad)
		}
	}
}

func TestNoSquareString(t *testing.T) {
	if NoSquare.String() != "-" {
		t.Fatalf("NoSquare.String() = %q, want \"-\"", NoSquare.String())
	}
}

func TestOffsetBoundaries(t *testing.T) {
	if _, ok := A1.Offset(-1); ok {
		t.Fatal("a1.Offset(-1) should fail: runs off the board")
	}
	if _, ok := H1.Offset(1); ok {
		t.Fatal("h1.Offset(1) should fail: would wrap to a2 by raw arithmetic")
	}
	if got, ok := E4.Offset(8); !ok || got != E5 {
		t.Fatalf("e4.Offset(8) = %v, %v; want e5, true", got, ok)
	}
	if got, ok := A1.Offset(17); !ok || got != B3 {
		t.Fatalf("a1.Offset(17) = %v, %v; want b3, true", got, ok)
	}
}

func TestDistance(t *testing.T) {
	if d := A1.Distance(H8); d != 7 {
		t.Fatalf("a1 to h8 distance = %d, want 7", d)
	}
	if d := A1.Distance(A1); d != 0 {
		t.Fatalf("a1 to a1 distance = %d, want 0", d)
	}
	if d := E4.Distance(E5); d != 1 {
		t.Fatalf("e4 to e5 distance = %d, want 1", d)
	}
}

func TestFileRankAccessors(t *testing.T) {
	sq := NewSquare(4, 3) // e4
	if sq.File() != 4 {
		t.Fatalf("file = %d, want 4", sq.File())
	}
	if sq.Rank() != 3 {
		t.Fatalf("rank = %d, want 3", sq.Rank())
	}
}

func TestFromCoordsBounds(t *testing.T) {
	if _, ok := FromCoords(8, 0); ok {
		t.Fatal("file 8 is out of range")
	}
	if _, ok := FromCoords(0, -1); ok {
		t.Fatal("rank -1 is out of range")
	}
	if sq, ok := FromCoords(0, 0); !ok || sq != A1 {
		t.Fatalf("FromCoords(0,0) = %v, %v; want A1, true", sq, ok)
	}
}
