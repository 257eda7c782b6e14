package filter

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

func TestMemo_EvaluatesUpstreamOnce(t *testing.T) {
	counter := &countingSource{Source: gradientRaster(t, 6, 4)}
	m, err := NewMemo(counter, pixel.Sequential())
	if err != nil {
		t.Fatalf("NewMemo failed: %v", err)
	}
	if m.Cached() {
		t.Fatal("new memo reports a cache")
	}

	for i := 0; i < 3; i++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 6; x++ {
				if got, want := mustPixel(t, m, x, y), mustPixel(t, counter.Source, x, y); got != want {
					t.Fatalf("(%d,%d): got %v, want %v", x, y, got, want)
				}
			}
		}
	}
	if counter.calls != 24 {
		t.Errorf("upstream calls: got %d, want 24", counter.calls)
	}

	m.Reset()
	if m.Cached() {
		t.Error("Reset did not drop the cache")
	}
	_ = mustPixel(t, m, 0, 0)
	if counter.calls != 48 {
		t.Errorf("upstream calls after Reset: got %d, want 48", counter.calls)
	}
}

func TestMemo_BindDropsCache(t *testing.T) {
	m, _ := NewMemo(gradientRaster(t, 2, 2))
	_ = mustPixel(t, m, 0, 0)
	if err := m.Bind(nil); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if m.Cached() {
		t.Error("Bind did not drop the cache")
	}
}

func TestMemo_BreaksStackedCost(t *testing.T) {
	counter := &countingSource{Source: gradientRaster(t, 10, 10)}
	inner, _ := NewBoxBlur(counter)
	memo, _ := NewMemo(inner, pixel.Sequential())
	outer, _ := NewBoxBlur(memo)

	direct, _ := NewBoxBlur(inner)
	want, err := pixel.Materialize(direct, pixel.Sequential())
	if err != nil {
		t.Fatalf("Materialize(direct) failed: %v", err)
	}
	counter.calls = 0

	got, err := pixel.Materialize(outer, pixel.Sequential())
	if err != nil {
		t.Fatalf("Materialize(memo) failed: %v", err)
	}
	if diff := cmp.Diff(want.Image().Pix, got.Image().Pix); diff != "" {
		t.Errorf("memoized chain differs (-direct +memo):\n%s", diff)
	}
	// 36 border pixels read 1 upstream pixel, 64 interior pixels read 9.
	if counter.calls != 36+64*9 {
		t.Errorf("upstream calls: got %d, want %d", counter.calls, 36+64*9)
	}
}

func TestMemo_ConcurrentQueries(t *testing.T) {
	src := gradientRaster(t, 16, 16)
	blur, _ := NewBoxBlur(src)
	m, _ := NewMemo(blur)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := m.Pixel(i, i); err != nil {
				t.Errorf("Pixel(%d,%d) failed: %v", i, i, err)
			}
		}(i)
	}
	wg.Wait()
	if !m.Cached() {
		t.Error("memo not filled after concurrent queries")
	}
}
