package texture

import (
	"image"
	"testing"
)

func TestFromImageCoversWholeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 16))
	tex := FromImage("sheet", img)

	if tex.Name() != "sheet" {
		t.Errorf("name = %q", tex.Name())
	}
	sx, sy, sw, sh := tex.Clip()
	if sx != 0 || sy != 0 || sw != 32 || sh != 16 {
		t.Errorf("clip = (%v, %v, %v, %v), want whole image", sx, sy, sw, sh)
	}
	if tex.Width() != 32 || tex.Height() != 16 {
		t.Errorf("size = %vx%v", tex.Width(), tex.Height())
	}
}

func TestSpriteClipsRelativeToParent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	sheet := FromImage("sheet", img)

	tile := sheet.Sprite(16, 32, 16, 16)
	sx, sy, sw, sh := tile.Clip()
	if sx != 16 || sy != 32 || sw != 16 || sh != 16 {
		t.Errorf("tile clip = (%v, %v, %v, %v)", sx, sy, sw, sh)
	}

	// A sprite of a sprite composes offsets against the original image.
	inner := tile.Sprite(4, 4, 8, 8)
	sx, sy, sw, sh = inner.Clip()
	if sx != 20 || sy != 36 || sw != 8 || sh != 8 {
		t.Errorf("nested clip = (%v, %v, %v, %v)", sx, sy, sw, sh)
	}

	if tile.Name() != "sheet" || tile.Image() != sheet.Image() {
		t.Error("sprite must share the parent's name and pixels")
	}
}

func TestSpriteClampsToParentBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	sheet := FromImage("sheet", img)

	over := sheet.Sprite(6, 6, 20, 20)
	if over.Width() != 4 || over.Height() != 4 {
		t.Errorf("overshooting sprite = %vx%v, want clamped to 4x4", over.Width(), over.Height())
	}

	out := sheet.Sprite(20, 20, 5, 5)
	if out.Width() != 0 || out.Height() != 0 {
		t.Errorf("out-of-bounds sprite = %vx%v, want empty", out.Width(), out.Height())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("missing", "no/such/file.png"); err == nil {
		t.Error("expected error for missing file")
	}
}
