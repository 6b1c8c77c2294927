// Package graph reads the dependency graph artifact written by the build plugin
//
// Design choices:
// - Stream the artifact line by line through bufio.Reader; never load the whole file.
// - Lines over the cap (32MB by default) are skipped with a diagnostic, like malformed ones.
// - Text is decoded BOM-aware via x/text so UTF-8 BOM and UTF-16 artifacts read the same as plain UTF-8.
// - One JSON object per line. Malformed lines are reported through the diagnostics channel and dropped.
// - Records are deduplicated on s::o and keep the first occurrence, in input order.
// - Seen keys and results live on the stack of a single Read call, so concurrent reads never share state.
// - The raw line is kept on each Record and re-emitted verbatim when serialized.
// - Node gives the typed plugin view (e, a, i, d, v); Mangle and Dependents answer reverse-dependency queries.
package graph
