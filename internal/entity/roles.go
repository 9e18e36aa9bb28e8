package entity

import "crypto/sha256"

// AssignMarks deterministically splits the X and O marks between the host
// and the guest of a game. The raw bytes of the host identity followed by
// the raw bytes of the guest identity are hashed with SHA-256, and the
// lowest bit of the first digest byte picks the split: 0 gives the host O,
// 1 gives the host X. The guest always receives the opposite mark. Byte
// order (host first) and the examined bit are fixed; the split must be
// reproducible from the two identities alone.
func AssignMarks(host, guest string) (string, string) {
	digest := sha256.Sum256([]byte(host + guest))

	if digest[0]&1 == 0 {
		return MarkO, MarkX
	}

	return MarkX, MarkO
}
