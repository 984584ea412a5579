// Package msgpckdump renders MessagePack byte streams as
// deterministic, line-oriented text for inspection and debugging.
//
// Each decoded value produces exactly one line, indented two spaces
// per nesting level and tagged with the exact on-wire format name of
// its leading byte (PositiveFixInt, Str16, FixExt4, ...), never just
// its semantic category:
//
//	[FixArray] array(2)
//	  [PositiveFixInt] 1
//	  [FixStr] "abc"
//
// The walk is a single pre-order traversal that emits text as it
// decodes; no value tree is materialized, so memory stays
// proportional to the input size plus nesting depth.
//
// Output is fixed byte-for-byte: integers in decimal, booleans as
// lowercase true/false, floats in shortest round-trippable form,
// binary and ext payloads in uppercase hex. Decoded string bytes are
// emitted verbatim between double quotes with no escaping, so a
// string containing a quote or control character is ambiguous to
// re-parse; the output is for human inspection, not machine
// round-tripping.
package msgpckdump
