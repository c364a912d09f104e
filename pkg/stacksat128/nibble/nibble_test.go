package nibble

import "testing"

func TestSBoxIsPermutation(t *testing.T) {
	var seen [16]bool
	for _, v := range SBox {
		if v > 15 {
			t.Fatalf("SBox entry out of range: %d", v)
		}
		if seen[v] {
			t.Fatalf("SBox is not injective: %d appears twice", v)
		}
		seen[v] = true
	}
}

func TestSBoxDifferentialUniformity(t *testing.T) {
	// Maximum differential uniformity 4: for every nonzero input
	// difference, no output difference occurs more than 4 times.
	for dx := 1; dx < 16; dx++ {
		var counts [16]int
		for x := 0; x < 16; x++ {
			dy := SBox[x] ^ SBox[uint8(x)^uint8(dx)]
			counts[dy]++
		}
		for dy, c := range counts {
			if c > 4 {
				t.Errorf("differential (%d,%d) has uniformity %d, want <=4", dx, dy, c)
			}
		}
	}
}

func TestSBoxWalshSpectrum(t *testing.T) {
	// Maximum Walsh coefficient magnitude 8: for every nonzero pair of input
	// mask a and output mask b, |Sum_x (-1)^(parity(a&x) xor parity(b&SBox[x]))|
	// does not exceed 8.
	parity := func(v uint8) uint8 {
		var p uint8
		for v != 0 {
			p ^= v & 1
			v >>= 1
		}
		return p
	}
	max := 0
	for a := 1; a < 16; a++ {
		for b := 1; b < 16; b++ {
			sum := 0
			for x := 0; x < 16; x++ {
				px := parity(uint8(a) & uint8(x))
				py := parity(uint8(b) & SBox[x])
				if px == py {
					sum++
				} else {
					sum--
				}
			}
			if sum < 0 {
				sum = -sum
			}
			if sum > max {
				max = sum
			}
			if sum > 8 {
				t.Errorf("Walsh coefficient (a=%d,b=%d) has magnitude %d, want <=8", a, b, sum)
			}
		}
	}
	if max != 8 {
		t.Fatalf("max Walsh coefficient magnitude = %d, want 8", max)
	}
}

func TestRoundConstantsMatchDerivation(t *testing.T) {
	derived := deriveRoundConstants()
	if derived != RoundConstants {
		t.Fatalf("RoundConstants %v disagrees with LFSR derivation %v", RoundConstants, derived)
	}
	for _, v := range RoundConstants {
		if v == 0 {
			t.Fatalf("round constant is zero, want nonzero: %v", RoundConstants)
		}
	}
}

func TestAdd16Wraps(t *testing.T) {
	cases := []struct{ a, b, want Nibble }{
		{0, 0, 0},
		{15, 1, 0},
		{15, 15, 14},
		{7, 8, 15},
		{8, 8, 0},
	}
	for _, c := range cases {
		if got := Add16(c.a, c.b); got != c.want {
			t.Errorf("Add16(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestPackUnpackByteRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		hi, lo := UnpackByte(byte(b))
		if got := PackByte(hi, lo); got != byte(b) {
			t.Errorf("PackByte(UnpackByte(%d)) = %d, want %d", b, got, b)
		}
	}
}
