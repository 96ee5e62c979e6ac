// Package cryptoalg defines the core types and contracts of the text-processing engine:
// the closed set of supported formats, fixed-size key material, the signing, verification,
// encryption and decryption capabilities implemented per format, and the error taxonomy
// shared by every layer above it.
package cryptoalg
