package zmath

type Range[N int | int64 | float64] struct {
	Valid bool `json:",omitempty"`
	Min   N    `json:",omitempty"`
	Max   N    `json:",omitempty"`
}

type RangeF64 = Range[float64]

func (r *Range[N]) Set(min, max N) {
	r.Min = min
	r.Max = max
	r.Valid = true
}

func MakeRange[N int | int64 | float64](min, max N) Range[N] {
	return Range[N]{Valid: true, Min: min, Max: max}
}

func (r Range[N]) Length() N {
	return r.Max - r.Min
}

func (r Range[N]) Added(n N) Range[N] {
	if !r.Valid {
		r.Valid = true
		r.Min = n
		r.Max = n
		return r
	}
	r.Min = min(r.Min, n)
	r.Max = max(r.Max, n)
	return r
}

func (r *Range[N]) Add(n N) {
	*r = r.Added(n)
}

// T returns the value at t (0-1) between Min and Max
func (r Range[N]) T(t float64) N {
	return r.Min + N(float64(r.Length())*t)
}

// Ratio is the inverse of T, returning where n lies in the range as 0-1
func (r Range[N]) Ratio(n N) float64 {
	l := r.Length()
	if l == 0 {
		return 0
	}
	return float64(n-r.Min) / float64(l)
}

func (r Range[N]) Contains(n N) bool {
	return r.Valid && n >= r.Min && n <= r.Max
}

func (r Range[N]) Clamped(n N) N {
	if !r.Valid {
		return n
	}
	if n < r.Min {
		return r.Min
	}
	if n > r.Max {
		return r.Max
	}
	return n
}
