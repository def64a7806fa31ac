package scalefx

import "testing"

func TestPipelineScale3xMatchesPackageLevel(t *testing.T) {
	cfg := DefaultConfig()
	pixels := []uint32{
		0xFF0000FF, 0x00FF00FF, 0x0000FFFF,
		0xFFFF00FF, 0x00FFFFFF, 0xFF00FFFF,
		0x000000FF, 0xFFFFFFFF, 0x808080FF,
	}

	wantW, wantH, want := Scale3x(cfg, 3, 3, append([]uint32(nil), pixels...))

	pl := NewPipeline()
	gotW, gotH, got := pl.Scale3x(cfg, 3, 3, append([]uint32(nil), pixels...))

	if gotW != wantW || gotH != wantH {
		t.Fatalf("dims = %dx%d, want %dx%d", gotW, gotH, wantW, wantH)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestPipelineScale9xMatchesPackageLevel(t *testing.T) {
	cfg := DefaultConfig()
	pixels := solidGrid(4, 4, 0xAABBCCFF)

	wantW, wantH, want := Scale9x(cfg, 4, 4, append([]uint32(nil), pixels...))

	pl := NewPipeline()
	gotW, gotH, got := pl.Scale9x(cfg, 4, 4, append([]uint32(nil), pixels...))

	if gotW != wantW || gotH != wantH {
		t.Fatalf("dims = %dx%d, want %dx%d", gotW, gotH, wantW, wantH)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestPipelineReusedAcrossCallsOfDifferentSizes(t *testing.T) {
	cfg := DefaultConfig()
	pl := NewPipeline()

	for _, sz := range []int{2, 5, 3, 8, 1} {
		pixels := solidGrid(sz, sz, 0x112233FF)
		w, h, out := pl.Scale3x(cfg, sz, sz, pixels)
		if w != sz*3 || h != sz*3 {
			t.Fatalf("size %d: dims = %dx%d, want %dx%d", sz, w, h, sz*3, sz*3)
		}
		if len(out) != w*h {
			t.Fatalf("size %d: len(out) = %d, want %d", sz, len(out), w*h)
		}
	}
}
