package sha256

import (
	"github.com/cryptoprim/cp-digest/pkg/wordops"
)

// CompressBlock applies the compression function to a single block's
// message schedule, returning the updated hash state. All 64 rounds are
// identical in structure: two temporaries are derived from the working
// registers, after which the registers shift down by one position. The
// input state is folded back into the result at the end, making the
// function a pure mapping from (state, schedule, constants) to a new
// state.
func CompressBlock(state [8]uint32, schedule, constants *[64]uint32) [8]uint32 {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i++ {
		t1 := h + wordops.BigSigma1(e) + wordops.Choose(e, f, g) + constants[i] + schedule[i]
		t2 := wordops.BigSigma0(a) + wordops.Majority(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return [8]uint32{
		state[0] + a, state[1] + b, state[2] + c, state[3] + d,
		state[4] + e, state[5] + f, state[6] + g, state[7] + h,
	}
}
