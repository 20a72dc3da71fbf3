// Package uuid62 converts UUIDs to and from compact encodings.
//
// Three independent codecs are provided:
//   - EncodeBytes/DecodeBytes: the 16-byte big-endian binary form.
//   - Encode/Decode: a 128-bit unsigned integer (Uint128) as a fixed-width,
//     22-character positional base62 string over Alphabet.
//   - EncodePacked/DecodePacked: the variable-length bit-packing base62 form
//     produced by earlier releases.
//
// ToBase62 and FromBase62 compose the first two so callers never handle
// Uint128 values directly. All functions are pure and safe for concurrent use.
package uuid62
