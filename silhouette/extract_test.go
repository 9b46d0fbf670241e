package silhouette

import "image"
import "testing"
import "math/rand"

func TestScenarios(t *testing.T) {
	tests := []struct {
		in  []string
		out []string
	}{
		{ // hollow ring
			in: []string{
				".....",
				".###.",
				".#.#.",
				".###.",
				".....",
			},
			out: []string{
				".....",
				".###.",
				".###.",
				".###.",
				".....",
			},
		},
		{ // empty raster
			in: []string{
				"......",
				"......",
				"......",
			},
			out: []string{
				"......",
				"......",
				"......",
			},
		},
		{ // open diagonal stroke
			in: []string{
				"#....",
				".#...",
				"..#..",
				"...#.",
				"....#",
			},
			out: []string{
				"#....",
				".#...",
				"..#..",
				"...#.",
				"....#",
			},
		},
		{ // nested rings
			in: []string{
				".........",
				".#######.",
				".#.....#.",
				".#.###.#.",
				".#.#.#.#.",
				".#.###.#.",
				".#.....#.",
				".#######.",
				".........",
			},
			out: []string{
				".........",
				".#######.",
				".#######.",
				".#######.",
				".#######.",
				".#######.",
				".#######.",
				".#######.",
				".........",
			},
		},
		{ // ring touching the border
			in: []string{
				"####.",
				"#..#.",
				"####.",
			},
			out: []string{
				"####.",
				"####.",
				"####.",
			},
		},
		{ // diagonal gap doesn't enclose (4-connectivity)
			in: []string{
				".....",
				"..#..",
				".#.#.",
				"..#..",
				".....",
			},
			out: []string{
				".....",
				"..#..",
				".###.",
				"..#..",
				".....",
			},
		},
		{ // ring with a one pixel opening
			in: []string{
				".....",
				".#.#.",
				".#.#.",
				".###.",
				".....",
			},
			out: []string{
				".....",
				".#.#.",
				".#.#.",
				".###.",
				".....",
			},
		},
		{ // values at the cutoff are background
			in: []string{
				".....",
				".+++.",
				".+.+.",
				".+++.",
				".....",
			},
			out: []string{
				".....",
				".....",
				".....",
				".....",
				".....",
			},
		},
	}

	for n, test := range tests {
		mask, err := Extract(rasterFromRows(test.in...), DefaultCutoff)
		if err != nil { t.Fatalf("test#%d: unexpected error %s", n, err) }
		got := maskToRows(mask)
		if !sameRows(got, test.out) {
			t.Fatalf("test#%d, on input %v, expected %v, got %v", n, test.in, test.out, got)
		}
	}
}

func TestSinglePixel(t *testing.T) {
	for _, value := range []uint8{0, 255} {
		raster := image.NewGray(image.Rect(0, 0, 1, 1))
		raster.Pix[0] = value
		mask, err := Extract(raster, DefaultCutoff)
		if err != nil { t.Fatal(err) }
		if mask.Pix[0] != value {
			t.Fatalf("expected %d, got %d", value, mask.Pix[0])
		}
	}
}

func TestInvalidInput(t *testing.T) {
	_, err := Extract(nil, DefaultCutoff)
	if err != ErrInvalidInput { t.Fatalf("expected ErrInvalidInput, got %v", err) }
	_, err = Extract(image.NewGray(image.Rect(0, 0, 0, 5)), DefaultCutoff)
	if err != ErrInvalidInput { t.Fatalf("expected ErrInvalidInput, got %v", err) }
	_, err = ExtractAlpha(image.NewAlpha(image.Rect(3, 3, 3, 3)), DefaultCutoff)
	if err != ErrInvalidInput { t.Fatalf("expected ErrInvalidInput, got %v", err) }
}

func TestOffsetBounds(t *testing.T) {
	base := rasterFromRows(
		"........",
		"........",
		"...###..",
		"...#.#..",
		"...###..",
		"........",
	)
	sub := base.SubImage(image.Rect(2, 1, 7, 6)).(*image.Gray)
	mask, err := Extract(sub, DefaultCutoff)
	if err != nil { t.Fatal(err) }
	if mask.Rect != sub.Rect {
		t.Fatalf("expected bounds %v, got %v", sub.Rect, mask.Rect)
	}
	if mask.AlphaAt(4, 3).A != 0xFF { t.Fatal("expected enclosed cell to be opaque") }
	if mask.AlphaAt(2, 1).A != 0x00 { t.Fatal("expected corner to be transparent") }

	// input must remain untouched
	if base.GrayAt(4, 3).Y != 0 { t.Fatal("input raster was modified") }
}

func TestAlphaInput(t *testing.T) {
	raster := rasterFromRows(
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)
	alpha := &image.Alpha{ Pix: raster.Pix, Stride: raster.Stride, Rect: raster.Rect }
	fromGray, _  := Extract(raster, DefaultCutoff)
	fromAlpha, _ := ExtractAlpha(alpha, DefaultCutoff)
	if !sameRows(maskToRows(fromGray), maskToRows(fromAlpha)) {
		t.Fatal("gray and alpha inputs should give the same mask")
	}
}

func TestGridLifecycle(t *testing.T) {
	grid := Threshold(rasterFromRows(
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	), DefaultCutoff)

	counts := grid.Count()
	if counts[Stroke] != 8 || counts[Background] != 17 {
		t.Fatalf("after threshold, unexpected counts %v", counts)
	}

	grid.FloodExterior()
	counts = grid.Count()
	if counts[Exterior] != 16 || counts[Background] != 1 || counts[Stroke] != 8 {
		t.Fatalf("after flood, unexpected counts %v", counts)
	}
	if grid.At(2, 2) != Background {
		t.Fatalf("expected center to be %s, got %s", Background, grid.At(2, 2))
	}

	// flooding again must not change anything
	grid.FloodExterior()
	if grid.Count() != counts { t.Fatal("second flood changed the grid") }

	grid.Finalize()
	if grid.At(2, 2) != Interior {
		t.Fatalf("expected center to be %s, got %s", Interior, grid.At(2, 2))
	}
	if grid.Count()[Background] != 0 { t.Fatal("background left after finalize") }
}

func TestMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(8372))
	for n := 0; n < 200; n++ {
		w, h := 1 + rng.Intn(24), 1 + rng.Intn(24)
		raster := randomRaster(rng, w, h, 0.2 + rng.Float64()*0.4)
		mask, err := Extract(raster, DefaultCutoff)
		if err != nil { t.Fatal(err) }

		expected := referenceOpaque(raster, DefaultCutoff)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				got := mask.Pix[y*mask.Stride + x] == 0xFF
				if got != expected[y*w + x] {
					t.Fatalf("test#%d (%dx%d): mismatch at (%d, %d), expected opaque = %t", n, w, h, x, y, expected[y*w + x])
				}
			}
		}
	}
}

func TestIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	raster := randomRaster(rng, 64, 48, 0.35)
	maskA, _ := Extract(raster, DefaultCutoff)
	maskB, _ := Extract(raster, DefaultCutoff)
	for i := range maskA.Pix {
		if maskA.Pix[i] != maskB.Pix[i] {
			t.Fatalf("masks differ at index %d", i)
		}
	}
}

func TestBorderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(977))
	for n := 0; n < 50; n++ {
		w, h := 2 + rng.Intn(40), 2 + rng.Intn(40)
		raster := randomRaster(rng, w, h, 0.4)
		mask, _ := Extract(raster, DefaultCutoff)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if x != 0 && y != 0 && x != w - 1 && y != h - 1 { continue }
				isStroke := raster.Pix[y*raster.Stride + x] > DefaultCutoff
				if !isStroke && mask.Pix[y*mask.Stride + x] != 0 {
					t.Fatalf("test#%d: border background cell (%d, %d) is opaque", n, x, y)
				}
			}
		}
	}
}

func TestContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(4410))
	for n := 0; n < 50; n++ {
		w, h := 3 + rng.Intn(30), 3 + rng.Intn(30)
		raster := randomRaster(rng, w, h, 0.45)
		grid := Threshold(raster, DefaultCutoff)
		grid.FloodExterior()
		grid.Finalize()

		// every interior cell may only touch strokes or other interior
		// cells, otherwise a background path to the border would exist
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if grid.At(x, y) != Interior { continue }
				if x == 0 || y == 0 || x == w - 1 || y == h - 1 {
					t.Fatalf("test#%d: interior cell on the border at (%d, %d)", n, x, y)
				}
				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					neighbor := grid.At(x + d[0], y + d[1])
					if neighbor == Exterior {
						t.Fatalf("test#%d: interior cell (%d, %d) touches the exterior", n, x, y)
					}
				}
			}
		}
	}
}

func TestMonotonicity(t *testing.T) {
	inner := []string{
		"...........",
		"...........",
		"...........",
		"....###....",
		"....#.#....",
		"....###....",
		"...........",
		"...........",
		"...........",
	}
	outer := []string{
		"...........",
		".#########.",
		".#.......#.",
		".#..###..#.",
		".#..#.#..#.",
		".#..###..#.",
		".#.......#.",
		".#########.",
		"...........",
	}

	before, _ := Extract(rasterFromRows(inner...), DefaultCutoff)
	after, _  := Extract(rasterFromRows(outer...), DefaultCutoff)
	for i := range before.Pix {
		if before.Pix[i] == 0xFF && after.Pix[i] != 0xFF {
			t.Fatalf("adding an enclosing ring made index %d transparent", i)
		}
	}
}

func BenchmarkExtract(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	raster := randomRaster(rng, 352, 352, 0.3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Extract(raster, DefaultCutoff)
	}
}
