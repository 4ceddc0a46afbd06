package bigu

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/ykiselev/arena"
)

// MaxPowerOfFive is the largest exponent held by the powers-of-five table.
// The smallest subnormal double is 2^-1074; half-ulp bounds need two more
// factors of two, which a decimal scale turns into 5^1076.
const MaxPowerOfFive = 1076

var pow5 struct {
	once  sync.Once
	words []uint32
	offs  [MaxPowerOfFive + 2]int32
}

func buildPowersOfFive() {
	words := make([]uint32, 0, 46*1024)
	cur := make([]uint32, 1, 128)
	cur[0] = 1
	for n := 0; n <= MaxPowerOfFive; n++ {
		pow5.offs[n] = int32(len(words))
		words = append(words, cur...)
		if c := mulVW(cur, cur, 5); c != 0 {
			cur = append(cur, c)
		}
	}
	pow5.offs[MaxPowerOfFive+1] = int32(len(words))
	pow5.words = words
}

// PowerOfFive returns 5^n as normalized base-10^9 words, least significant
// first. The slice is shared and must not be modified.
func PowerOfFive(n int) []uint32 {
	if n < 0 || n > MaxPowerOfFive {
		panic(errors.Wrapf(arena.ErrIndexOutOfRange, "power of five %d, max %d", n, MaxPowerOfFive))
	}
	pow5.once.Do(buildPowersOfFive)
	lo, hi := pow5.offs[n], pow5.offs[n+1]
	return pow5.words[lo:hi:hi]
}
