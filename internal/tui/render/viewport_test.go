package render

import "testing"

func TestViewportSetLinesKeepsBottom(t *testing.T) {
	vp := NewViewport(10, 2)
	vp.SetLines([]string{"a", "b"})
	vp.GotoBottom()

	vp.SetLines([]string{"a", "b", "c"})
	if !vp.AtBottom() {
		t.Fatalf("viewport should stay anchored at bottom after append")
	}
}

func TestViewportSetLinesKeepsScrollPosition(t *testing.T) {
	vp := NewViewport(10, 2)
	vp.SetLines([]string{"a", "b", "c", "d"})
	vp.GotoTop()

	vp.SetLines([]string{"a", "b", "c", "d", "e"})
	if vp.YOffset != 0 {
		t.Fatalf("YOffset = %d, want 0 when reader scrolled up", vp.YOffset)
	}
	vp.Follow([]string{"a", "b", "c", "d", "e", "f"})
	if !vp.AtBottom() {
		t.Fatalf("Follow should scroll to bottom")
	}
}

func TestViewportResizeInvalidates(t *testing.T) {
	vp := NewViewport(10, 2)
	vp.SetLines([]string{"a"})
	vp.Resize(20, 2)
	if vp.lastLines != nil {
		t.Fatalf("width change should drop cached lines")
	}
	if vp.Width != 20 {
		t.Fatalf("Width = %d", vp.Width)
	}
}
