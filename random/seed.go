package random

import (
	"errors"
	"fmt"
)

const (
	SEED_MIN int32 = 0
	SEED_MAX int32 = 900000000
)

var ErrInvalidSeed = errors.New("invalid seed")

type SeedReason int

const (
	ReasonOutOfRange SeedReason = iota + 1
	ReasonForbiddenTriple
)

func (r SeedReason) String() string {
	switch r {
	case ReasonOutOfRange:
		return "out of range"
	case ReasonForbiddenTriple:
		return "not allowed"
	}
	return fmt.Sprintf("SeedReason(%d)", int(r))
}

// SeedError reports a seed, or one of its sub-seeds, that cannot be used.
type SeedError struct {
	Field  string // "seed", "i", "j", "k", "l" or "ijk"
	Value  int64
	Reason SeedReason
}

func (e *SeedError) Error() string {
	if e.Reason == ReasonForbiddenTriple {
		return "i j k = 1 1 1 -- not allowed for the first 3 sub-seeds"
	}
	return fmt.Sprintf("%s = %d -- %s", e.Field, e.Value, e.Reason)
}

func (e *SeedError) Unwrap() error {
	return ErrInvalidSeed
}

// SubSeeds are the four values driving the table initialisation.
type SubSeeds struct {
	I, J, K, L int32
}

// Validate rejects i=j=k=1, then checks the ranges in order: i in [1,178],
// j in [2,178], k in [1,178], l in [0,168].
func (s SubSeeds) Validate() error {
	// the triple comes first, j=1 would otherwise hide it behind a range error
	if s.I == 1 && s.J == 1 && s.K == 1 {
		return &SeedError{Field: "ijk", Value: 111, Reason: ReasonForbiddenTriple}
	}
	if s.I < 1 || s.I > 178 {
		return &SeedError{Field: "i", Value: int64(s.I), Reason: ReasonOutOfRange}
	}
	// j is always >= 2 after decomposition.
	if s.J < 2 || s.J > 178 {
		return &SeedError{Field: "j", Value: int64(s.J), Reason: ReasonOutOfRange}
	}
	if s.K < 1 || s.K > 178 {
		return &SeedError{Field: "k", Value: int64(s.K), Reason: ReasonOutOfRange}
	}
	if s.L < 0 || s.L > 168 {
		return &SeedError{Field: "l", Value: int64(s.L), Reason: ReasonOutOfRange}
	}
	return nil
}

// Decompose splits seed into validated sub-seeds.
func Decompose(seed int32) (SubSeeds, error) {
	if seed < SEED_MIN || seed > SEED_MAX {
		return SubSeeds{}, &SeedError{Field: "seed", Value: int64(seed), Reason: ReasonOutOfRange}
	}
	ij := seed / 30082
	kl := seed - 30082*ij
	s := SubSeeds{
		I: ((ij / 177) % 177) + 2,
		J: (ij % 177) + 2,
		K: ((kl / 169) % 178) + 1,
		L: kl % 169,
	}
	if err := s.Validate(); err != nil {
		return SubSeeds{}, err
	}
	return s, nil
}
