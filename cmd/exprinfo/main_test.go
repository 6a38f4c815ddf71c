package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-expr/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(config.Reset)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "backends",
			args: []string{"backends"},
			want: []string{"NAME", "generic", "*", "F64 KERNEL", "lanes"},
		},
		{
			name: "backends forced generic",
			args: []string{"--no-simd", "backends"},
			want: []string{"best level None", "*  generic"},
		},
		{
			name: "demo float32",
			args: []string{"--backend", "generic", "demo", "--size", "10"},
			want: []string{"backend generic, 10 elements of float32", "114.256", "9"},
		},
		{
			name: "demo float64",
			args: []string{"demo", "--size", "3", "--type", "f64"},
			want: []string{"of float64", "114.256"},
		},
		{
			name: "plan",
			args: []string{"--backend", "generic", "plan", "--size", "1000", "--loads", "3"},
			want: []string{"store(array[1000], ((array[1000] + array[1000]) + array[1000]))", "unroll", "loads"},
		},
		{
			name: "bench",
			args: []string{"bench", "--size", "64", "--rounds", "2"},
			want: []string{"EXPRESSION", "sqrt(x*x + y*y)"},
		},
		{
			name:    "unknown backend",
			args:    []string{"--backend", "mmx", "demo"},
			wantErr: true,
		},
		{
			name:    "no-simd with simd backend",
			args:    []string{"--no-simd", "--backend", "avx2", "backends"},
			wantErr: true,
		},
		{
			name: "no-simd with generic backend",
			args: []string{"--no-simd", "--backend", "generic", "backends"},
			want: []string{"*  generic"},
		},
		{
			name:    "bad type",
			args:    []string{"demo", "--type", "int8"},
			wantErr: true,
		},
		{
			name:    "negative unroll",
			args:    []string{"--unroll", "-2", "plan"},
			wantErr: true,
		},
		{
			name:    "bad loads",
			args:    []string{"plan", "--loads", "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, output:\n%s", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("execute %v: %v\n%s", tt.args, err, out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestEnvironmentBindsFlags(t *testing.T) {
	t.Setenv("ALGO_EXPR_BACKEND", "generic")
	t.Setenv("ALGO_EXPR_PLAN_LOADS", "5")

	out, err := execute(t, "plan", "--size", "10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "generic") {
		t.Fatalf("backend not taken from environment:\n%s", out)
	}
	if !strings.Contains(out, "loads       5") {
		t.Fatalf("loads not taken from environment:\n%s", out)
	}
}
