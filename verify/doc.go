// Package verify checks that encoded vectors survive a round trip.
//
// RoundTrip compares decoded vectors against their originals component by
// component using the format tolerance, recording failed vectors in a
// roaring bitmap. SelfRetrieval replays the classic store-and-search check:
// every query vector, decoded from its buffer, must come back as its own
// nearest neighbour with a byte-identical payload.
package verify
