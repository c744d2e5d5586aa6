package orbgl

import "testing"

func TestCatmullRomTooFewPoints(t *testing.T) {
	if got := CatmullRom(nil, 50, nil); len(got) != 0 {
		t.Fatalf("no points should yield no samples, got %d", len(got))
	}
	if got := CatmullRom([]Vec3{V3(1, 0, 0)}, 50, nil); len(got) != 0 {
		t.Fatalf("one point should yield no samples, got %d", len(got))
	}
}

func TestCatmullRomInterpolatesEndpoints(t *testing.T) {
	pts := []Vec3{V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)}
	got := CatmullRom(pts, 61, nil)
	if len(got) != 61 {
		t.Fatalf("sample count = %d, want 61", len(got))
	}
	if Dist(got[0], pts[0]) > 1e-4 {
		t.Fatalf("first sample %v, want %v", got[0], pts[0])
	}
	if Dist(got[60], pts[2]) > 1e-4 {
		t.Fatalf("last sample %v, want %v", got[60], pts[2])
	}
}

func TestCatmullRomPassesThroughInteriorPoint(t *testing.T) {
	pts := []Vec3{V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)}
	// 41 samples over 2 segments puts sample 20 exactly on the knot.
	got := CatmullRom(pts, 41, nil)
	if Dist(got[20], pts[1]) > 1e-4 {
		t.Fatalf("knot sample %v, want %v", got[20], pts[1])
	}
}

func TestCatmullRomCoincidentPointsStayFinite(t *testing.T) {
	p := V3(0.5, 0.5, 0.5)
	got := CatmullRom([]Vec3{p, p, p}, 50, nil)
	for i, s := range got {
		if s.X != s.X || s.Y != s.Y || s.Z != s.Z {
			t.Fatalf("sample %d is NaN", i)
		}
		if Dist(s, p) > 1e-3 {
			t.Fatalf("sample %d = %v drifted from %v", i, s, p)
		}
	}
}

func TestCatmullRomReusesDst(t *testing.T) {
	pts := []Vec3{V3(1, 0, 0), V3(0, 1, 0)}
	buf := make([]Vec3, 0, 128)
	got := CatmullRom(pts, 50, buf)
	if len(got) != 50 {
		t.Fatalf("sample count = %d, want 50", len(got))
	}
	if cap(got) != 128 {
		t.Fatalf("dst buffer was not reused (cap %d)", cap(got))
	}
}
