package terrain

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func constant(v float64) Kernel {
	return KernelFunc(func(x, y float64) float64 { return v })
}

func TestMaxAmplitude(t *testing.T) {
	f := &NoiseField{Octaves: 5, Persistence: 0.5}
	if got := f.MaxAmplitude(); got != 1.9375 {
		t.Fatalf("MaxAmplitude = %v, want 1.9375", got)
	}
}

func TestNormalization(t *testing.T) {
	cases := []struct {
		name    string
		mode    NormalizationMode
		kernel  float64
		octaves int
		want    float64
	}{
		{"reference floor", NormalizeReference, -1, 1, 0},
		{"unit floor", NormalizeUnit, -1, 1, 0},
		{"unit ceiling", NormalizeUnit, 1, 3, 1},
		{"reference ceiling overshoots", NormalizeReference, 1, 3, (1.75 + 1) / 1.75},
		{"reference zero", NormalizeReference, 0, 2, 1 / 1.5},
	}
	for _, c := range cases {
		f := &NoiseField{Kernel: constant(c.kernel), Octaves: c.octaves, Persistence: 0.5, Lacunarity: 2, Scale: 1, Normalization: c.mode}
		grid, err := f.Generate(3, 3, 0, 0)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		for i, v := range grid {
			if math.Abs(v-c.want) > 1e-12 {
				t.Fatalf("%s: cell %d = %v, want %v", c.name, i, v, c.want)
			}
		}
	}
}

func TestNoiseFieldRejectsEmptyGrid(t *testing.T) {
	f := &NoiseField{Kernel: constant(0), Octaves: 1, Persistence: 0.5, Lacunarity: 2, Scale: 1}
	if _, err := f.Generate(0, 4, 0, 0); !errors.Is(err, ErrGridSize) {
		t.Fatalf("err = %v, want ErrGridSize", err)
	}
}

func testField(parallel bool) *NoiseField {
	table := NewPermutationTable(rand.New(rand.NewSource(5)), PermutationDraw)
	p := DefaultParams()
	p.Parallel = parallel
	return NewNoiseField(table, p)
}

func TestNoiseFieldParallelMatchesSerial(t *testing.T) {
	serial, err := testField(false).Generate(33, 33, 2, -1)
	if err != nil {
		t.Fatal(err)
	}
	par, err := testField(true).Generate(33, 33, 2, -1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range serial {
		if serial[i] != par[i] {
			t.Fatalf("cell %d: serial %v parallel %v", i, serial[i], par[i])
		}
	}
}

func TestNoiseFieldChunkSeam(t *testing.T) {
	const n = 17
	f := testField(false)
	left, _ := f.Generate(n, n, 0, 0)
	right, _ := f.Generate(n, n, 1, 0)
	below, _ := f.Generate(n, n, 0, 1)
	for y := 0; y < n; y++ {
		if left[n-1+y*n] != right[y*n] {
			t.Fatalf("row %d: seam mismatch %v vs %v", y, left[n-1+y*n], right[y*n])
		}
	}
	for x := 0; x < n; x++ {
		if left[x+(n-1)*n] != below[x] {
			t.Fatalf("col %d: seam mismatch %v vs %v", x, left[x+(n-1)*n], below[x])
		}
	}
}

func TestNoiseFieldJitterPerturbs(t *testing.T) {
	plain, _ := testField(false).Generate(9, 9, 0, 0)
	f := testField(true)
	f.Jitter = rand.New(rand.NewSource(11))
	jittered, _ := f.Generate(9, 9, 0, 0)

	if plain[0] != jittered[0] {
		t.Fatalf("origin sample must be unaffected by jitter")
	}
	diff := 0
	for i := range plain {
		if plain[i] != jittered[i] {
			diff++
		}
	}
	if diff == 0 {
		t.Fatalf("jitter changed nothing")
	}
}
