// Package pluscodes implements the Open Location Code format ("Plus Codes"),
// a compact alphanumeric encoding for geographic areas.
//
// A code addresses a bounding box, not a point. Each digit pair narrows a
// 400°×400° addressing grid by a factor of 20 per axis; past ten digits,
// single characters refine a 4×5 sub-grid. The separator + sits after the
// eighth digit, and coarse codes pad the gap with zeros:
//
//	8FVC2222+22    10-digit code, roughly 14x14 meters
//	8FVC0000+      4-digit code, roughly 110x110 kilometers
//	2222+22        short code, needs a reference location to resolve
//
// # Operations
//
// Encode and EncodeWithLength produce codes, and Decode recovers the
// CodeArea a full code addresses. Shorten strips leading digits that a
// nearby reference location makes redundant, and RecoverNearest reverses
// that, picking the candidate cell closest to the reference. IsValid,
// IsShort and IsFull classify strings without error returns.
//
// Fallible operations come in pairs: the error-returning form (Decode) and
// a panicking form (MustDecode) for inputs known to be good.
//
// # Interoperability
//
// The alphabet, separator, padding character and separator position are
// fixed by the Open Location Code specification and shared by every
// conforming implementation. ToGeohash and FromGeohash bridge to the other
// widespread compact cell format.
//
// All functions are pure and safe for concurrent use.
package pluscodes
