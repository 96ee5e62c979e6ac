// Package cryptography holds the algorithm backends: keyed BLAKE3 hashing, Ed25519
// signatures and ChaCha20-Poly1305 encryption, plus loading and generating the
// 32-byte key material they consume.
package cryptography
