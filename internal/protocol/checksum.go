package protocol

// Checksum is the device's 1-byte wrapping checksum: the sum of all
// input bytes modulo 256. Requests and responses use the same function.
func Checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return sum
}
