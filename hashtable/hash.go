package hashtable

import "hash/maphash"

// seed randomizes string and byte hashing per process, which keeps bucket
// distributions independent of attacker-chosen keys.
var seed = maphash.MakeSeed()

// Integer covers the built-in integer kinds accepted by IntegerHasher.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// StringHasher hashes string keys.
func StringHasher(key string) uint64 {
	return maphash.String(seed, key)
}

// BytesHasher hashes byte-slice derived keys.
func BytesHasher(key []byte) uint64 {
	return maphash.Bytes(seed, key)
}

// IntegerHasher returns a hash function for any integer key kind. It
// applies a splitmix64 finalizer so that sequential keys spread over
// all buckets instead of clustering.
func IntegerHasher[K Integer]() func(K) uint64 {
	return func(key K) uint64 {
		x := uint64(key)
		x ^= x >> 30
		x *= 0xbf58476d1ce4e5b9
		x ^= x >> 27
		x *= 0x94d049bb133111eb
		x ^= x >> 31

		return x
	}
}
