// Package alphabet resolves a language code and a letter case to a weighted
// sampling table of code points.
//
// # Catalog Format
//
// An alphabet catalog is a JSON object keyed by language code. Each entry
// lists code-point ranges for the lower-case variant ("ranges") and,
// optionally, the upper-case variant ("upper_ranges"):
//
//	{
//	  "es": {
//	    "//comment": "Spanish: latin letters plus ñ and accented vowels",
//	    "ranges":       [[97, 122], [225, 233, 237, 243, 250, 241, 252]],
//	    "upper_ranges": [[65, 90],  [193, 201, 205, 211, 218, 209, 220]]
//	  }
//	}
//
// A range with exactly two numbers is an inclusive interval [min, max]. Any
// other array is an explicit set of code points. A two-member set must be
// written as an object, {"set": [a, b]}, to keep it from reading as an
// interval. The comment field is ignored.
//
// # Sampling
//
// [Catalog.Resolve] derives a [Table] for one (language, case) pair and
// caches it. Each range is weighted by its size, so every code point in the
// alphabet is equally likely:
//
//	counts        = [26, 7]
//	probabilities = [0.788, 0.212]
//	accumulated   = [0.788, 1.0]
//
// [Table.Sample] draws u in [0, 1), picks the first range whose accumulated
// probability exceeds u, then draws uniformly inside that range.
//
// # Loading
//
// Catalog bytes come from a [Loader] chosen by the caller:
//
//   - [EmbeddedLoader]: the catalog compiled into the binary
//   - [FileLoader]: a directory on the local file system
//   - [HTTPLoader]: a remote server, with retries and an optional cache
//
// [Open] picks one from a source string ("", a path, or a URL).
//
// # Concurrency
//
// A [Catalog] is safe for concurrent use; the catalog resource is read once.
// A [Table] is immutable after construction and may be shared.
package alphabet
