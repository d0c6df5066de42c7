package sprite

import "testing"

func TestLoadAllSheets(t *testing.T) {
	set, errs := Load(nil)
	if len(errs) > 0 {
		t.Fatalf("Load() reported errors: %v", errs)
	}
	if set == nil {
		t.Fatal("Load() returned nil set without errors")
	}

	sheets := []struct {
		name   string
		sprite *Sprite
		height int
	}{
		{"dino", set.Dino, 16},
		{"duck", set.Duck, 10},
		{"cactus", set.Cactus, 20},
		{"ptero", set.Ptero, 12},
		{"cloud", set.Cloud, 8},
		{"digits", set.Digits, 8},
		{"gameover", set.GameOver, 10},
		{"logo", set.Logo, 10},
	}
	for _, sheet := range sheets {
		if sheet.sprite == nil {
			t.Errorf("Sheet %s is nil", sheet.name)
			continue
		}
		if sheet.sprite.Height != sheet.height {
			t.Errorf("Sheet %s height = %d, want %d", sheet.name, sheet.sprite.Height, sheet.height)
		}
		if sheet.sprite.Width == 0 {
			t.Errorf("Sheet %s has zero width", sheet.name)
		}
	}
}

func TestLoadFramesHaveContent(t *testing.T) {
	set, errs := Load(nil)
	if len(errs) > 0 {
		t.Fatalf("Load() reported errors: %v", errs)
	}

	// Every frame the simulation cuts must contain at least one solid pixel;
	// an all-transparent frame would make its obstacle uncollidable.
	frames := []struct {
		name  string
		sheet *Sprite
		frame Frame
	}{
		{"run0", set.Dino, FrameDinoRun0},
		{"run1", set.Dino, FrameDinoRun1},
		{"jump", set.Dino, FrameDinoJump},
		{"dead", set.Dino, FrameDinoDead},
		{"blink", set.Dino, FrameDinoBlink},
		{"duck0", set.Duck, FrameDuck0},
		{"duck1", set.Duck, FrameDuck1},
		{"ptero0", set.Ptero, PteroFrames[0]},
		{"ptero1", set.Ptero, PteroFrames[1]},
	}
	for i, f := range CactusFrames {
		frames = append(frames, struct {
			name  string
			sheet *Sprite
			frame Frame
		}{name: "cactus" + string(rune('0'+i)), sheet: set.Cactus, frame: f})
	}

	for _, tc := range frames {
		if !frameHasSolid(tc.sheet, tc.frame) {
			t.Errorf("Frame %s has no solid pixels", tc.name)
		}
	}
}

func frameHasSolid(s *Sprite, f Frame) bool {
	for y := f.Y; y < f.Y+f.H; y++ {
		for x := f.X; x < f.X+f.W; x++ {
			if s.Solid(x, y) {
				return true
			}
		}
	}
	return false
}

func TestDigitFrames(t *testing.T) {
	for d := 0; d <= 9; d++ {
		f := DigitFrame(d)
		if f.X != d*DigitWidth || f.W != DigitWidth || f.H != DigitHeight {
			t.Errorf("DigitFrame(%d) = %+v", d, f)
		}
	}
	// Out-of-range digits fall back to zero rather than cutting garbage
	if DigitFrame(-1) != DigitFrame(0) || DigitFrame(10) != DigitFrame(0) {
		t.Error("Out-of-range digits should map to the zero frame")
	}
}

func TestGameOverIndices(t *testing.T) {
	// "GAME OVER" is nine cells: eight letters and one space.
	if len(GameOverIndices) != 9 {
		t.Fatalf("GameOverIndices length = %d, want 9", len(GameOverIndices))
	}
	spaces := 0
	for _, idx := range GameOverIndices {
		if idx == GameOverSpace {
			spaces++
			continue
		}
		if idx < 0 || idx > 6 {
			t.Errorf("Letter index %d outside the packed sheet", idx)
		}
	}
	if spaces != 1 {
		t.Errorf("Expected exactly one space cell, got %d", spaces)
	}
}
