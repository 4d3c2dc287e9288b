package cnp

// weights for the first twelve digits.
var weights = [12]int{2, 7, 9, 1, 4, 6, 3, 5, 8, 2, 7, 9}

// Checksum returns the check digit for the first twelve digits of an
// identifier, given as numeric values 0-9. A remainder of 10 maps to 1.
func Checksum(digits [12]int) int {
	total := 0
	for i, d := range digits {
		total += d * weights[i]
	}
	r := total % 11
	if r == 10 {
		return 1
	}
	return r
}

// checksumOf computes the check digit of a 12-character ASCII digit prefix.
// Callers guarantee the prefix shape.
func checksumOf(prefix string) int {
	var digits [12]int
	for i := range digits {
		digits[i] = int(prefix[i] - '0')
	}
	return Checksum(digits)
}
