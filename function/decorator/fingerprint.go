// Package decorator implements the function algebra's cached decorator
// (spec.md §4.1 "Cached decorator"): a function.Function wrapper that
// memoizes value, per-row gradient, full Jacobian and per-row Hessian
// behind byte-level argument fingerprints, with one lrucache.Cache per
// sub-computation (one per output row for Gradient and Hessian).
package decorator

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/roboptim/core-go/matrix"
)

// fingerprinter hashes the IEEE-754 bit pattern of an argument vector
// into a fixed-size key (spec.md §4.1, "keyed by a byte-level
// fingerprint of the argument vector"). No example repo's hashing
// library fits a fixed-size float-vector key better than stdlib
// hash/maphash, which the pack's own graph library uses for node keys
// (see DESIGN.md); the seed is fixed per Cached instance so repeated
// fingerprints of the same bytes always collide to the same key.
type fingerprinter struct {
	seed maphash.Seed
	buf  []byte
}

func newFingerprinter() *fingerprinter {
	return &fingerprinter{seed: maphash.MakeSeed()}
}

func (fp *fingerprinter) of(x matrix.Vector) uint64 {
	n := x.Len()
	if cap(fp.buf) < n*8 {
		fp.buf = make([]byte, n*8)
	}
	buf := fp.buf[:n*8]
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(x.At(i)))
	}
	var h maphash.Hash
	h.SetSeed(fp.seed)
	h.Write(buf)
	return h.Sum64()
}
