package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// LastTwoDigits returns the tens and ones digits of n, treating n < 10 as zero padded.
func LastTwoDigits(n int) (tens, ones int) {
	return (n / 10) % 10, n % 10
}
