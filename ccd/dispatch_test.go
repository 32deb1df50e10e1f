package ccd

import (
	"sync"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/collide/geometry"
	"go.viam.com/collide/spatial"
)

func TestNarrowPhaseTableConcurrentReads(t *testing.T) {
	a := unitBox(t, r3.Vector{})
	b := unitBox(t, r3.Vector{X: 0.9})

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn, err := lookupCollide(a, b)
			test.That(t, err, test.ShouldBeNil)
			col, err := fn(a, b, 0)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, col, test.ShouldBeTrue)
		}()
	}
	wg.Wait()
}

func TestLookupCollideUnsupportedPair(t *testing.T) {
	m := geometry.NewMesh(spatial.NewZeroPose(), nil)
	p := geometry.NewPoint(r3.Vector{})
	_, err := lookupCollide(m, p)
	test.That(t, err, test.ShouldNotBeNil)
}
