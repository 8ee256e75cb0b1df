package mat

import (
	"bytes"
	"testing"
)

func TestString(t *testing.T) {
	testCases := map[string]struct {
		str      string
		expected string
	}{
		"Mat3": {
			str:      b3.String(),
			expected: "1 2 3\n4 5 6\n7 8 9\n",
		},
		"Mat4": {
			str:      e4.String(),
			expected: "1 0 0 0\n0 1 0 0\n0 0 1 0\n0 0 0 1\n",
		},
		"Fraction": {
			str: MustNewMat3(Values{
				{0.5, -1.25, 0},
				{0, 0, 0},
				{0, 0, 1e-7},
			}).String(),
			expected: "0.5 -1.25 0\n0 0 0\n0 0 1e-07\n",
		},
		"Zero": {
			str:      Mat3{}.String(),
			expected: "0 0 0\n0 0 0\n0 0 0\n",
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if tt.str != tt.expected {
				t.Errorf("Expected:\n%s\nGot:\n%s", tt.expected, tt.str)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := b4.Fprint(buf); err != nil {
		t.Fatal(err)
	}
	expected := "1 2 3 4\n5 6 7 8\n9 10 11 12\n13 14 15 16\n"
	if s := buf.String(); s != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, s)
	}
}
