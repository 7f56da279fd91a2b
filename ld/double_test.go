package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCanonicalDouble(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.5, "1.500000000000000e+00"},
		{0, "0.000000000000000e+00"},
		{-2.5, "-2.500000000000000e+00"},
		{123456789, "1.234567890000000e+08"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatCanonicalDouble(c.in))
	}
}
