// Package snbt implements Stringified NBT: a human-readable textual form
// of the tag model defined by the root nbt package, with a cursor-based
// recursive-descent parser and compact/indented printers.
//
// The package registers itself as nbt.Tag's String() backend through
// nbt.RegisterSNBTPrinter, so callers never need to import it just to get
// readable output from fmt.Println(tag).
package snbt

import nbt "github.com/ValentiMS/amulet-nbt-go"

func init() {
	nbt.RegisterSNBTPrinter(func(t nbt.Tag) string { return Print(t) })
}
