package main

import (
	"flag"
	"io"
	"testing"
)

func TestSeedFlag(t *testing.T) {
	tests := []struct {
		args   []string
		pinned bool
		want   int64
	}{
		{nil, false, 0},
		{[]string{"-seed", "0"}, true, 0},
		{[]string{"-seed", "-12"}, true, -12},
	}
	for _, tt := range tests {
		var seed optionalSeed
		fs := flag.NewFlagSet("terrace", flag.ContinueOnError)
		fs.Var(&seed, "seed", "")
		if err := fs.Parse(tt.args); err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if (seed.v != nil) != tt.pinned {
			t.Fatalf("%v: pinned = %v", tt.args, seed.v != nil)
		}
		if tt.pinned && *seed.v != tt.want {
			t.Fatalf("%v: seed = %d, want %d", tt.args, *seed.v, tt.want)
		}
	}

	var seed optionalSeed
	fs := flag.NewFlagSet("terrace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&seed, "seed", "")
	if err := fs.Parse([]string{"-seed", "abc"}); err == nil {
		t.Fatal("expected an error for a non-numeric seed")
	}
}
