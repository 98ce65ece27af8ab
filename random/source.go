package random

import (
	"math/rand"

	"github.com/zxfonline/unirand/log"
)

// 验证接口实现
var _ rand.Source = (*RandSource)(nil)
var _ rand.Source64 = (*RandSource)(nil)

// Source yields uniformly distributed values in [0,1).
type Source interface {
	Next() float32
}

var _ Source = (*Universal)(nil)

// RandSource exposes a Universal as a math/rand source. Every output of the
// generator is an exact multiple of 2^-24, so three outputs give 72 bits of
// which the top 64 are used.
type RandSource struct {
	g Universal
}

// NewRandSource returns a source seeded with seed.
func NewRandSource(seed int32) (*RandSource, error) {
	s := &RandSource{}
	if err := s.g.Init(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// NewRand returns a *rand.Rand backed by a Universal seeded with seed.
func NewRand(seed int32) (*rand.Rand, error) {
	s, err := NewRandSource(seed)
	if err != nil {
		return nil, err
	}
	return rand.New(s), nil
}

// FoldSeed maps any int64 onto the accepted seed range [0, 900000000].
func FoldSeed(seed int64) int32 {
	const n = int64(SEED_MAX) + 1
	r := seed % n
	if r < 0 {
		r += n
	}
	return int32(r)
}

// Seed implements rand.Source. Seeds outside the accepted range are folded
// into it rather than rejected, since rand.Source has no error return.
func (s *RandSource) Seed(seed int64) {
	folded := FoldSeed(seed)
	if int64(folded) != seed {
		log.Debugf("random: seed %d folded to %d", seed, folded)
	}
	// folded seeds always decompose cleanly
	_ = s.g.Init(folded)
}

func (s *RandSource) next24() uint64 {
	return uint64(s.g.Next() * (1 << uniBits))
}

// Uint64 implements rand.Source64.
func (s *RandSource) Uint64() uint64 {
	a := s.next24()
	b := s.next24()
	c := s.next24()
	return a<<40 | b<<16 | c>>8
}

// Int63 implements rand.Source.
func (s *RandSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
