package core

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
}

func TestClampF(t *testing.T) {
	if ClampF(0.5, 0, 1) != 0.5 {
		t.Error("ClampF should pass through in-range values")
	}
	if ClampF(-0.1, 0, 1) != 0 {
		t.Error("ClampF should raise values below min")
	}
	if ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should lower values above max")
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 3) != 2 || Min(3, 2) != 2 {
		t.Error("Min is wrong")
	}
	if Max(2, 3) != 3 || Max(3, 2) != 3 {
		t.Error("Max is wrong")
	}
}
