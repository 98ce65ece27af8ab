package random

const (
	// UNI_LEN is the size of the lag table, slot 0 included.
	UNI_LEN = 98

	UNI_LAG_I = 97
	UNI_LAG_J = 33

	UNI_C  float32 = 362436.0 / 16777216.0
	UNI_CD float32 = 7654321.0 / 16777216.0
	UNI_CM float32 = 16777213.0 / 16777216.0

	uniBits = 24
)

// Universal is Marsaglia's universal generator: a lagged Fibonacci
// generator with borrow, combined with an arithmetic correction sequence.
// The zero value is unseeded; Next on it returns a degenerate sequence.
// A Universal is not safe for concurrent use.
type Universal struct {
	u  [UNI_LEN]float32
	c  float32 // correction
	cd float32 // correction delta
	cm float32 // correction modulus
	i  int
	j  int
}

func NewUniversal() *Universal {
	return &Universal{}
}

// NewUniversalSeed returns a generator initialised with seed.
func NewUniversalSeed(seed int32) (*Universal, error) {
	g := NewUniversal()
	if err := g.Init(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Init decomposes seed into four sub-seeds and seeds the lag table with them.
// The seed must be in [0, 900000000]. On error the generator is left as it was.
func (g *Universal) Init(seed int32) error {
	s, err := Decompose(seed)
	if err != nil {
		return err
	}
	g.Start(s.I, s.J, s.K, s.L)
	return nil
}

// Start seeds the lag table directly from sub-seeds. Values are not checked;
// use SubSeeds.Validate first to stay on the reference sequence.
func (g *Universal) Start(i, j, k, l int32) {
	for ii := 1; ii < UNI_LEN; ii++ {
		var s float32
		t := float32(0.5)
		for jj := 0; jj < uniBits; jj++ {
			m := ((i * j % 179) * k) % 179
			i, j, k = j, k, m
			l = (53*l + 1) % 169
			if l*m%64 >= 32 {
				s += t
			}
			t *= 0.5
		}
		g.u[ii] = s
	}
	g.u[0] = 0
	g.c = UNI_C
	g.cd = UNI_CD
	g.cm = UNI_CM
	g.i = UNI_LAG_I
	g.j = UNI_LAG_J
}

// Next returns the next value in [0,1).
func (g *Universal) Next() float32 {
	v := g.u[g.i] - g.u[g.j]
	if v < 0 {
		v += 1
	}
	g.u[g.i] = v

	if g.i == 0 {
		g.i = UNI_LEN - 1
	} else {
		g.i--
	}
	if g.j == 0 {
		g.j = UNI_LEN - 1
	} else {
		g.j--
	}

	g.c -= g.cd
	if g.c < 0 {
		g.c += g.cm
	}

	v -= g.c
	if v < 0 {
		v += 1
	}
	return v
}

func (g *Universal) Float64() float64 {
	return float64(g.Next())
}

// Fill writes len(dst) successive values into dst.
func (g *Universal) Fill(dst []float32) {
	for n := range dst {
		dst[n] = g.Next()
	}
}
