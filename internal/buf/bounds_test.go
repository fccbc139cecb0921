package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if sum, ok := AddOverflowSafe(-10, 5); !ok || sum != -5 {
		t.Fatalf("AddOverflowSafe(-10,5)=%d,%v want -5,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatal("AddOverflowSafe(MaxInt,1) should overflow")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatal("AddOverflowSafe(MinInt,-1) should overflow")
	}
	if sum, ok := AddOverflowSafe(math.MaxInt, 0); !ok || sum != math.MaxInt {
		t.Fatalf("AddOverflowSafe(MaxInt,0)=%d,%v want MaxInt,true", sum, ok)
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if prod, ok := MulOverflowSafe(6, 7); !ok || prod != 42 {
		t.Fatalf("MulOverflowSafe(6,7)=%d,%v want 42,true", prod, ok)
	}
	if prod, ok := MulOverflowSafe(0, math.MaxInt); !ok || prod != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt)=%d,%v want 0,true", prod, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt, 2); ok {
		t.Fatal("MulOverflowSafe(MaxInt,2) should overflow")
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatal("MulOverflowSafe just past the boundary should overflow")
	}
	if prod, ok := MulOverflowSafe(math.MaxInt/2, 2); !ok || prod != math.MaxInt-1 {
		t.Fatalf("MulOverflowSafe(MaxInt/2,2)=%d,%v want MaxInt-1,true", prod, ok)
	}
}

func TestBytes(t *testing.T) {
	if size, ok := Bytes(5, 8); !ok || size != 40 {
		t.Fatalf("Bytes(5,8)=%d,%v want 40,true", size, ok)
	}
	if size, ok := Bytes(0, 8); !ok || size != 0 {
		t.Fatalf("Bytes(0,8)=%d,%v want 0,true", size, ok)
	}
	if size, ok := Bytes(7, 0); !ok || size != 0 {
		t.Fatalf("Bytes(7,0)=%d,%v want 0,true", size, ok)
	}
	if _, ok := Bytes(-1, 8); ok {
		t.Fatal("Bytes(-1,8) should be rejected")
	}
	if _, ok := Bytes(math.MaxInt/4, 8); ok {
		t.Fatal("Bytes(MaxInt/4,8) should overflow")
	}
}
