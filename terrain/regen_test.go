package terrain

import (
	"context"
	"math/rand"
	"testing"
	"time"
)

func waitUpdate(t *testing.T, r *Regenerator) {
	t.Helper()
	select {
	case <-r.Updates():
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for regeneration")
	}
}

func TestRegeneratorSwapsAndKeepsLastGood(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRegenerator(NewGenerator(rand.NewSource(1), nil))
	if m, v := r.Current(); m != nil || v != 0 {
		t.Fatalf("fresh regenerator has mesh %v version %d", m, v)
	}
	r.Start(ctx)

	p := DefaultParams().WithSeed(10)
	p.VertexCount = 12
	r.Request(p)
	waitUpdate(t, r)

	first, v1 := r.Current()
	if first == nil || v1 != 1 || r.Err() != nil {
		t.Fatalf("after first request: mesh %v version %d err %v", first, v1, r.Err())
	}

	bad := p
	bad.VertexCount = 0
	r.Request(bad)
	waitUpdate(t, r)

	kept, v2 := r.Current()
	if kept != first || v2 != v1 {
		t.Fatalf("failed regeneration replaced the mesh")
	}
	if r.Err() == nil {
		t.Fatalf("expected error from invalid request")
	}

	p.VertexCount = 20
	r.Request(p)
	waitUpdate(t, r)
	next, v3 := r.Current()
	if v3 != 2 || next.Width != 20 || r.Err() != nil {
		t.Fatalf("version %d width %d err %v", v3, next.Width, r.Err())
	}
}

func TestRegeneratorCoalescesRequests(t *testing.T) {
	r := NewRegenerator(NewGenerator(rand.NewSource(1), nil))
	p := DefaultParams().WithSeed(1)
	for n := 2; n <= 9; n++ {
		p.VertexCount = n
		r.Request(p)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	waitUpdate(t, r)

	m, v := r.Current()
	if v != 1 || m.Width != 9 {
		t.Fatalf("version %d width %d, want only the latest request", v, m.Width)
	}
}
