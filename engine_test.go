package lcgrand_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nozzle/lcgrand"
)

func TestUniformKnownTrace(t *testing.T) {
	// Values from running the recurrence with float32 rounding from state 1.
	expected := []float32{
		0.5684341788291931,
		0.3907228410243988,
		0.06832250207662582,
		0.08745356649160385,
		0.47713029384613037,
		0.5723105669021606,
	}
	expectedStates := []int32{1220703125, 839070905, 146721453, 187805105, 1024629509, 1229027561}

	e := lcgrand.New(1)
	for i := range expected {
		got, err := e.Uniform(1)
		if err != nil {
			t.Fatal(err)
		}
		fmt.Printf("  %d: value=%.9f state=%d\n", i, got[0], e.State())
		if got[0] != expected[i] {
			t.Errorf("value %d: got %.9f, expected %.9f", i, got[0], expected[i])
		}
		if e.State() != expectedStates[i] {
			t.Errorf("state %d: got %d, expected %d", i, e.State(), expectedStates[i])
		}
	}
}

func TestUniformWrapsNegativeProducts(t *testing.T) {
	// 42 * 1220703125 overflows to a negative int32 and is folded back by 2^31.
	e := lcgrand.New(42)
	got, err := e.Uniform(4)
	if err != nil {
		t.Fatal(err)
	}

	expected := []float32{0.8742359280586243, 0.4103591740131378, 0.869545042514801, 0.673049807548523}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("seed 42 trace mismatch (-want +got):\n%s", diff)
	}
	if e.State() != 1445363466 {
		t.Errorf("state after 4 draws: got %d, expected %d", e.State(), 1445363466)
	}

	// Negative seeds follow the same rule.
	e = lcgrand.New(-7)
	got, _ = e.Uniform(1)
	if got[0] != 0.020960679277777672 || e.State() != 45012717 {
		t.Errorf("seed -7: got %.9f state %d", got[0], e.State())
	}
}

func TestUniformRange(t *testing.T) {
	for _, seed := range []int32{1, 2, 42, -1, 123456789, math.MaxInt32, 1700000000} {
		e := lcgrand.New(seed)
		for _, n := range []int{0, 1, 7, 10000} {
			got, err := e.Uniform(n)
			if err != nil {
				t.Fatalf("seed %d n %d: %v", seed, n, err)
			}
			if len(got) != n {
				t.Fatalf("seed %d: got %d values, expected %d", seed, len(got), n)
			}
			for i, v := range got {
				if v < 0 || v >= 1 {
					t.Fatalf("seed %d: value %d out of [0,1): %v", seed, i, v)
				}
			}
		}
	}
}

func TestUniformClampsBelowOne(t *testing.T) {
	// 163364931 * 1220703125 corrects to 2^31-1, which rounds to 1.0 as float32.
	e := lcgrand.New(163364931)
	got, err := e.Uniform(1)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] >= 1 {
		t.Fatalf("expected value below 1, got %v", got[0])
	}
	if got[0] != math.Nextafter32(1, 0) {
		t.Errorf("got %.9f, expected %.9f", got[0], math.Nextafter32(1, 0))
	}
	if e.State() != math.MaxInt32 {
		t.Errorf("state: got %d, expected %d", e.State(), math.MaxInt32)
	}
}

func TestUniformZero(t *testing.T) {
	e := lcgrand.New(99)
	got, err := e.Uniform(0)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
	if e.State() != 99 {
		t.Errorf("empty draw changed state to %d", e.State())
	}
}

func TestUniformNegativeCount(t *testing.T) {
	e := lcgrand.New(1)
	_, err := e.Uniform(-1)
	if !errors.Is(err, lcgrand.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if e.State() != 1 {
		t.Errorf("failed call changed state to %d", e.State())
	}
}

func TestUniformBatchesContinueStream(t *testing.T) {
	for _, split := range [][2]int{{5, 5}, {0, 10}, {1, 9}, {3, 7}} {
		a := lcgrand.New(2024)
		first, _ := a.Uniform(split[0])
		second, _ := a.Uniform(split[1])
		joined := append(first, second...)

		b := lcgrand.New(2024)
		whole, _ := b.Uniform(split[0] + split[1])

		if diff := cmp.Diff(whole, joined); diff != "" {
			t.Errorf("split %v differs from single call (-want +got):\n%s", split, diff)
		}
	}
}

func TestUniformDoesNotAliasBuffers(t *testing.T) {
	e := lcgrand.New(5)
	first, _ := e.Uniform(4)
	saved := append([]float32(nil), first...)
	_, _ = e.Uniform(4)
	if diff := cmp.Diff(saved, first); diff != "" {
		t.Errorf("earlier buffer mutated (-want +got):\n%s", diff)
	}
}

func TestAbsorbingStates(t *testing.T) {
	cases := []struct {
		name string
		seed int32
		want float32
	}{
		{"zero", 0, 0},
		{"min int32", math.MinInt32, 0},
		{"half", 1 << 30, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := lcgrand.New(tc.seed)
			got, _ := e.Uniform(100)
			for i, v := range got {
				if v != tc.want {
					t.Fatalf("draw %d: got %v, expected %v", i, v, tc.want)
				}
			}
		})
	}
}

func TestSeedRestartsStream(t *testing.T) {
	e := lcgrand.New(77)
	first, _ := e.Uniform(20)
	e.Seed(77)
	again, _ := e.Uniform(20)
	if diff := cmp.Diff(first, again); diff != "" {
		t.Errorf("reseeded stream differs (-want +got):\n%s", diff)
	}
}

func TestUniformMoments(t *testing.T) {
	e := lcgrand.New(12345)
	got, _ := e.Uniform(100000)

	var sum, sumSq float64
	for _, v := range got {
		sum += float64(v)
		sumSq += float64(v) * float64(v)
	}
	n := float64(len(got))
	mean := sum / n
	variance := sumSq/n - mean*mean

	fmt.Printf("Uniform: mean=%.5f variance=%.5f\n", mean, variance)
	if math.Abs(mean-0.5) > 0.01 {
		t.Errorf("mean too far from 0.5: %.5f", mean)
	}
	if math.Abs(variance-1.0/12) > 0.005 {
		t.Errorf("variance too far from 1/12: %.5f", variance)
	}
}

func TestUint64(t *testing.T) {
	e := lcgrand.New(1)
	got := e.Uint64()
	// States 1220703125, 839070905, 146721453 packed high to low.
	const expected uint64 = 10485760003356283620
	if got != expected {
		t.Errorf("got %d, expected %d", got, expected)
	}
	if e.State() != 146721453 {
		t.Errorf("Uint64 should consume three states, state is %d", e.State())
	}
}

func TestPackageLevelStream(t *testing.T) {
	a, err := lcgrand.Uniform(3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := lcgrand.Uniform(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("unexpected lengths %d %d", len(a), len(b))
	}
	for _, v := range append(a, b...) {
		if v < 0 || v >= 1 {
			t.Errorf("value out of range: %v", v)
		}
	}

	if _, err := lcgrand.Exponential(2, 0); !errors.Is(err, lcgrand.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for lambda 0, got %v", err)
	}
	if _, err := lcgrand.StdNormal(2); err != nil {
		t.Errorf("StdNormal: %v", err)
	}
}
