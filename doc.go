// Package nbt implements the Named Binary Tag format used by Minecraft, in
// both the Java (big-endian) and Bedrock (little-endian, length-prefixed)
// variants, along with its textual sibling SNBT.
//
// The twelve tag variants are modelled as a closed set of concrete Go types
// that all implement the Tag interface: Byte, Short, Int, Long, Float,
// Double, *ByteArray, String, *List, *Compound, *IntArray and *LongArray.
// Scalars and String are value types; the array and container kinds are
// pointers because they own mutable internal state (a backing buffer, a
// slice of elements, an ordered key index).
//
// Reading and writing raw bytes is handled by ReadNamedTag/WriteNamedTag and
// their Bedrock counterparts. Reading and writing the textual form is
// handled by the snbt subpackage. File-level framing (name, optional gzip)
// is handled by File.
package nbt
