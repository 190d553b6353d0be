package xml

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	cases := map[string]struct {
		Value  float64
		Bits   int
		Expect string
	}{
		"zero":           {Value: 0, Bits: 64, Expect: "0"},
		"fraction":       {Value: 3.14, Bits: 64, Expect: "3.14"},
		"negative":       {Value: -1.5, Bits: 64, Expect: "-1.5"},
		"small exponent": {Value: 1e-9, Bits: 64, Expect: "1e-9"},
		"large exponent": {Value: 1e21, Bits: 64, Expect: "1e+21"},
		"large integral": {Value: 1e20, Bits: 64, Expect: "100000000000000000000"},
		"float32":        {Value: float64(float32(0.1)), Bits: 32, Expect: "0.1"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := formatFloat(nil, c.Value, c.Bits)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Expect, string(b); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestFormatFloatInvalid(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := formatFloat(nil, v, 64); err == nil {
			t.Errorf("expect error for %v", v)
		}
	}
}

func TestEncodeByteSlice(t *testing.T) {
	cases := map[string]struct {
		Len int
	}{
		"fits scratch": {Len: 10},
		"allocates":    {Len: 500},
		"streams":      {Len: 2000},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			v := make([]byte, c.Len)
			for i := range v {
				v[i] = byte(i)
			}

			enc := NewEncoder()
			enc.Base64EncodeBytes(v)

			// base64 of n bytes is 4*ceil(n/3) characters
			if e, a := 4*((c.Len+2)/3), len(enc.Bytes()); e != a {
				t.Errorf("expect %v encoded bytes, got %v", e, a)
			}
		})
	}
}
