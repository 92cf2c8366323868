// Package bech32encoding implements the NIP-19 bech32 forms of nostr keys:
// npub and nsec for bare public and secret keys, and nprofile for a public key
// with relay hints.
//
// Decoding is strict: the human readable part must match and the payload must
// be exactly the expected length, so a string is valid in at most one form.
package bech32encoding
