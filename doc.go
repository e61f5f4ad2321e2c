// Package sodium implements chunked authenticated stream encryption.
//
// A plaintext stream of unbounded length is split into blocks of at most
// blocksize bytes. Every block is sealed with ChaCha20-Poly1305 under a
// deterministically incrementing nonce, and a keyed BLAKE2b digest over all
// emitted chunks is appended as a trailer, so truncating the stream is
// detected even though every remaining chunk still verifies on its own.
//
// The ciphertext layout is
//
//	stream  := chunk* trailer
//	chunk   := tag(16 bytes) ‖ ciphertext(0..blocksize bytes)
//	trailer := digest(hashsize bytes)
//
// The key, digest key, base nonce and blocksize are out-of-band parameters;
// producer and consumer must agree on all four.
//
// Subpackages cover the surrounding primitives: aead (single-shot sealing),
// auth (secret-key MACs), sign (public-key signatures), keypair (curve25519
// key pairs) and secret (guarded key memory and nonces).
package sodium
