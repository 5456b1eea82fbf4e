// Package hash holds the checksum used for batch bodies and S3 uploads.
//
// Everything uses CRC32-Castagnoli (CRC32C). The standard library picks the
// hardware instruction (SSE4.2 on amd64, the CRC extension on arm64) when the
// CPU has one.
//
//	sum := hash.CRC32C(body)
//
//	h := hash.NewCRC32C()
//	h.Write(ids)
//	h.Write(vectors)
//	sum = h.Sum32()
package hash
