package crypto

import (
	"math/big"

	"rsatoolkit/src/types"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
	bigEight = big.NewInt(8)
)

// Jacobi computes the Jacobi symbol (a/n) in {-1, 0, +1}. Preconditions:
// a > 0, n > a, n odd. These are internal invariants the core never violates
// by construction; a caller that does gets an InvariantError rather than a
// silently wrong answer.
func Jacobi(a, n *big.Int) (int, error) {
	if a.Sign() <= 0 {
		return 0, types.NewInvariantError("jacobi: a must be positive, got %s", a)
	}
	if n.Cmp(a) <= 0 {
		return 0, types.NewInvariantError("jacobi: n must be greater than a, got n=%s a=%s", n, a)
	}
	if n.Bit(0) == 0 {
		return 0, types.NewInvariantError("jacobi: n must be odd, got %s", n)
	}

	a = new(big.Int).Set(a)
	n = new(big.Int).Set(n)
	t := 1

	for a.Sign() != 0 {
		for a.Bit(0) == 0 {
			a.Rsh(a, 1)
			r := new(big.Int).Mod(n, bigEight)
			if r.Cmp(bigThree) == 0 || r.Cmp(big.NewInt(5)) == 0 {
				t = -t
			}
		}

		a, n = n, a

		if new(big.Int).Mod(a, bigFour).Cmp(bigThree) == 0 &&
			new(big.Int).Mod(n, bigFour).Cmp(bigThree) == 0 {
			t = -t
		}

		a.Mod(a, n)
	}

	if n.Cmp(bigOne) == 0 {
		return t, nil
	}
	return 0, nil
}
