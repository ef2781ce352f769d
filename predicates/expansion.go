package predicates

// Floating point expansions represent a number exactly as a sum of
// non-overlapping float64 components ordered by increasing magnitude.

const (
	epsilon  = 1.0 / (1 << 53)
	splitter = 1<<27 + 1

	resultErrBound = (3 + 8*epsilon) * epsilon
	ccwErrBoundA   = (3 + 16*epsilon) * epsilon
	ccwErrBoundB   = (2 + 12*epsilon) * epsilon
	ccwErrBoundC   = (9 + 64*epsilon) * epsilon * epsilon
	iccErrBoundA   = (10 + 96*epsilon) * epsilon
)

// The explicit float64 conversions below force rounding after each product
// so the compiler cannot fuse a multiply and add into one instruction.

func twoSumTail(a, b, x float64) float64 {
	bv := x - a
	av := x - bv
	return (a - av) + (b - bv)
}

func twoDiffTail(a, b, x float64) float64 {
	bv := a - x
	av := x + bv
	return (a - av) + (bv - b)
}

func split(a float64) (hi, lo float64) {
	c := float64(splitter * a)
	hi = c - (c - a)
	return hi, a - hi
}

func twoProduct(a, b float64) (x, y float64) {
	x = float64(a * b)
	ahi, alo := split(a)
	bhi, blo := split(b)
	err := x - float64(ahi*bhi)
	err -= float64(alo * bhi)
	err -= float64(ahi * blo)
	return x, float64(alo*blo) - err
}

// crossDiff returns the four component expansion of a*b - c*d.
func crossDiff(a, b, c, d float64) [4]float64 {
	var e [4]float64
	s1, s0 := twoProduct(a, b)
	t1, t0 := twoProduct(c, d)

	i := s0 - t0
	e[0] = twoDiffTail(s0, t0, i)
	j := s1 + i
	z := twoSumTail(s1, i, j)
	i = z - t1
	e[1] = twoDiffTail(z, t1, i)
	u3 := j + i
	e[2] = twoSumTail(j, i, u3)
	e[3] = u3
	return e
}

// sumZeroElim writes e + f into h and returns the number of components
// used. Zero components are dropped. h must hold len(e)+len(f) values.
func sumZeroElim(e, f, h []float64) int {
	var q, qnew, hh float64
	ei, fi, hi := 0, 0, 0
	enow, fnow := e[0], f[0]

	if (fnow > enow) == (fnow > -enow) {
		q = enow
		ei++
	} else {
		q = fnow
		fi++
	}

	if ei < len(e) && fi < len(f) {
		enow, fnow = e[ei], f[fi]
		if (fnow > enow) == (fnow > -enow) {
			qnew = enow + q
			hh = q - (qnew - enow)
			ei++
		} else {
			qnew = fnow + q
			hh = q - (qnew - fnow)
			fi++
		}
		q = qnew
		if hh != 0 {
			h[hi] = hh
			hi++
		}
		for ei < len(e) && fi < len(f) {
			enow, fnow = e[ei], f[fi]
			if (fnow > enow) == (fnow > -enow) {
				qnew = q + enow
				hh = twoSumTail(q, enow, qnew)
				ei++
			} else {
				qnew = q + fnow
				hh = twoSumTail(q, fnow, qnew)
				fi++
			}
			q = qnew
			if hh != 0 {
				h[hi] = hh
				hi++
			}
		}
	}

	for ; ei < len(e); ei++ {
		qnew = q + e[ei]
		hh = twoSumTail(q, e[ei], qnew)
		q = qnew
		if hh != 0 {
			h[hi] = hh
			hi++
		}
	}
	for ; fi < len(f); fi++ {
		qnew = q + f[fi]
		hh = twoSumTail(q, f[fi], qnew)
		q = qnew
		if hh != 0 {
			h[hi] = hh
			hi++
		}
	}

	if q != 0 || hi == 0 {
		h[hi] = q
		hi++
	}
	return hi
}

// estimate approximates the value of an expansion.
func estimate(e []float64) float64 {
	q := 0.0
	for _, c := range e {
		q += c
	}
	return q
}
