package zwords

import "testing"

func TestNiceFloat(t *testing.T) {
	for _, c := range []struct {
		f    float64
		sig  int
		want string
	}{
		{5, 4, "5"},
		{0.25, 4, "0.25"},
		{1.23456, 2, "1.23"},
		{-0.0001, 2, "0"},
		{1200, 0, "1200"},
	} {
		if got := NiceFloat(c.f, c.sig); got != c.want {
			t.Error("NiceFloat", c.f, c.sig, got, "!=", c.want)
		}
	}
}
