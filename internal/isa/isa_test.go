package isa

import (
	"errors"
	"math"
	"testing"
)

func TestOpString(t *testing.T) {
	tests := []struct {
		op    Op
		want  string
		unary bool
	}{
		{OpAdd, "add", false},
		{OpSub, "sub", false},
		{OpMul, "mul", false},
		{OpDiv, "div", false},
		{OpMin, "min", false},
		{OpMax, "max", false},
		{OpSqrt, "sqrt", true},
		{OpRsqrt, "rsqrt", true},
		{OpRcp, "rcp", true},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
		if got := tt.op.Unary(); got != tt.unary {
			t.Errorf("%v.Unary() = %v, want %v", tt.op, got, tt.unary)
		}
	}
	if got := Op(200).String(); got != "op(200)" {
		t.Errorf("Op(200).String() = %q", got)
	}
}

func TestForRegisterPackSizes(t *testing.T) {
	tests := []struct {
		bytes int
		want  int
	}{
		{16, 4},
		{32, 8},
		{64, 16},
	}
	for _, tt := range tests {
		m32 := ForRegister[float32]("t", tt.bytes, 16, false)
		if m32.PackSize() != tt.want {
			t.Errorf("float32 %dB pack = %d, want %d", tt.bytes, m32.PackSize(), tt.want)
		}
		m64 := ForRegister[float64]("t", tt.bytes, 16, false)
		if m64.PackSize() != tt.want/2 {
			t.Errorf("float64 %dB pack = %d, want %d", tt.bytes, m64.PackSize(), tt.want/2)
		}
		if m64.Alignment() != tt.bytes {
			t.Errorf("alignment = %d, want %d", m64.Alignment(), tt.bytes)
		}
	}
}

func TestCheckRejectsBadModels(t *testing.T) {
	bad := []*Lanes[float64]{
		{name: "zero-pack", pack: 0, alignment: 16, registers: 8},
		{name: "no-regs", pack: 2, alignment: 16, registers: 0},
		{name: "misaligned", pack: 4, alignment: 16, registers: 8},
		{name: "odd-align", pack: 1, alignment: 12, registers: 8},
	}
	for _, m := range bad {
		if err := Check[float64](m); !errors.Is(err, ErrInvalidModel) {
			t.Errorf("Check(%s) = %v, want ErrInvalidModel", m.name, err)
		}
	}
	if err := Check[float64](nil); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("Check(nil) = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("NewLanes with invalid parameters did not panic")
		}
	}()
	NewLanes[float32]("bad", 8, 16, 8, false)
}

func TestScalarModel(t *testing.T) {
	s32 := Scalar[float32]()
	s64 := Scalar[float64]()
	if s32.PackSize() != 1 || s64.PackSize() != 1 {
		t.Fatalf("scalar pack sizes %d/%d, want 1", s32.PackSize(), s64.PackSize())
	}
	if s32.Approximate() || s64.Approximate() {
		t.Fatalf("scalar model must be exact")
	}
	if err := Check(s64); err != nil {
		t.Fatal(err)
	}
}

func TestLanesLoadStoreSet(t *testing.T) {
	m := NewLanes[float64]("t", 4, 32, 16, false)
	src := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	pack := make([]float64, 4)

	m.Load(pack, src, 4)
	for i, v := range pack {
		if v != float64(4+i) {
			t.Fatalf("Load lane %d = %v, want %v", i, v, float64(4+i))
		}
	}

	dst := make([]float64, 8)
	m.Store(dst, 0, pack)
	m.Stream(dst, 4, pack)
	want := []float64{4, 5, 6, 7, 4, 5, 6, 7}
	for i := range dst {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	m.Set(pack, 2.5)
	for i, v := range pack {
		if v != 2.5 {
			t.Fatalf("Set lane %d = %v", i, v)
		}
	}
}

func TestLanesBinary(t *testing.T) {
	m := NewLanes[float32]("t", 4, 16, 8, false)
	a := []float32{1, 8, -3, 10}
	b := []float32{2, 4, 5, -10}
	dst := make([]float32, 4)

	tests := []struct {
		op   Op
		want []float32
	}{
		{OpAdd, []float32{3, 12, 2, 0}},
		{OpSub, []float32{-1, 4, -8, 20}},
		{OpMul, []float32{2, 32, -15, -100}},
		{OpDiv, []float32{0.5, 2, -0.6, -1}},
		{OpMin, []float32{1, 4, -3, -10}},
		{OpMax, []float32{2, 8, 5, 10}},
	}
	for _, tt := range tests {
		m.Binary(tt.op, dst, a, b)
		for i := range dst {
			if dst[i] != tt.want[i] {
				t.Errorf("%v lane %d = %v, want %v", tt.op, i, dst[i], tt.want[i])
			}
		}
	}
}

func TestLanesUnaryExact(t *testing.T) {
	m := NewLanes[float64]("t", 2, 16, 8, false)
	dst := make([]float64, 2)
	a := []float64{4, 0.25}

	m.Unary(OpSqrt, dst, a)
	if dst[0] != 2 || dst[1] != 0.5 {
		t.Errorf("sqrt = %v", dst)
	}
	m.Unary(OpRsqrt, dst, a)
	if dst[0] != 0.5 || dst[1] != 2 {
		t.Errorf("rsqrt = %v", dst)
	}
	m.Unary(OpRcp, dst, a)
	if dst[0] != 0.25 || dst[1] != 4 {
		t.Errorf("rcp = %v", dst)
	}
}

func TestLanesRsqrtApproximate(t *testing.T) {
	m := NewLanes[float32]("t", 4, 16, 8, true)
	dst := make([]float32, 4)

	for _, x := range []float32{0.5, 1, 2, 3.7, 10, 42, 123.25, 900} {
		a := []float32{x, x, x, x}
		m.Unary(OpRsqrt, dst, a)
		want := 1 / math.Sqrt(float64(x))
		rel := math.Abs(float64(dst[0])-want) / want
		if rel > RsqrtMaxRelError {
			t.Errorf("rsqrt(%v) = %v, want %v (rel %g > %g)", x, dst[0], want, rel, RsqrtMaxRelError)
		}
	}
}

func TestMinMaxNaNPolicy(t *testing.T) {
	nan := math.NaN()

	if got := MinLane(nan, 1.0); got != 1 {
		t.Errorf("MinLane(NaN, 1) = %v, want 1", got)
	}
	if got := MinLane(1.0, nan); !math.IsNaN(got) {
		t.Errorf("MinLane(1, NaN) = %v, want NaN", got)
	}
	if got := MaxLane(nan, 1.0); got != 1 {
		t.Errorf("MaxLane(NaN, 1) = %v, want 1", got)
	}
	if got := MaxLane(1.0, nan); !math.IsNaN(got) {
		t.Errorf("MaxLane(1, NaN) = %v, want NaN", got)
	}
}

func TestUnknownOpPanics(t *testing.T) {
	m := NewLanes[float64]("t", 1, 16, 8, false)
	dst := []float64{0}

	assertPanics(t, "Unary(add)", func() { m.Unary(OpAdd, dst, dst) })
	assertPanics(t, "Binary(sqrt)", func() { m.Binary(OpSqrt, dst, dst, dst) })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
