package ports

// RandomSource is the randomness handed to shuffles and choices.
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}
