// Command nbtdump converts between the binary and textual NBT forms: by
// default it reads an NBT file (gzip auto-detected, Java big-endian unless
// -le is given) and prints it as indented SNBT; with -from-snbt it parses
// an SNBT source file and writes the binary form to stdout instead. It
// carries no codec logic of its own — it is a thin driver over the nbt and
// snbt packages.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	nbt "github.com/ValentiMS/amulet-nbt-go"
	"github.com/ValentiMS/amulet-nbt-go/snbt"
)

func main() {
	littleEndian := flag.Bool("le", false, "read/write little-endian (Bedrock) byte order")
	bedrock := flag.Bool("bedrock", false, "frame as a Bedrock root tag (8-byte version+length header)")
	bedrockVersion := flag.Int("bedrock-version", 8, "format version to write into the Bedrock header")
	fromSNBT := flag.Bool("from-snbt", false, "treat <path> as SNBT text and write binary NBT to stdout")
	gzipOut := flag.Bool("gzip", false, "gzip-compress binary output (with -from-snbt)")
	compact := flag.Bool("compact", false, "print compact SNBT instead of indented")
	indent := flag.Int("indent", 2, "number of spaces per indent level")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: nbtdump [flags] <path>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	order := binary.ByteOrder(binary.BigEndian)
	if *littleEndian {
		order = binary.LittleEndian
	}

	if *fromSNBT {
		if err := snbtToBinary(path, order, *bedrock, int32(*bedrockVersion), *gzipOut); err != nil {
			fmt.Fprintln(os.Stderr, "nbtdump:", err)
			os.Exit(1)
		}
		return
	}

	if err := binaryToSNBT(path, order, *bedrock, *compact, *indent); err != nil {
		fmt.Fprintln(os.Stderr, "nbtdump:", err)
		os.Exit(1)
	}
}

func binaryToSNBT(path string, order binary.ByteOrder, bedrock, compact bool, indent int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var root *nbt.Compound
	if bedrock {
		_, file, err := nbt.ReadBedrockFile(f)
		if err != nil {
			return err
		}
		root = file.Root
	} else {
		file, err := nbt.ReadFile(f, order)
		if err != nil {
			return err
		}
		root = file.Root
	}

	if compact {
		fmt.Println(snbt.Print(root))
	} else {
		fmt.Println(snbt.PrintIndent(root, snbt.IndentSpaces(indent)))
	}
	return nil
}

func snbtToBinary(path string, order binary.ByteOrder, bedrock bool, version int32, gzipOut bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tag, err := snbt.Parse(string(src))
	if err != nil {
		return err
	}
	root, ok := tag.(*nbt.Compound)
	if !ok {
		return fmt.Errorf("root of %s is %v, want %v", path, tag.Id(), nbt.IdCompound)
	}

	file := &nbt.File{Name: "", Root: root}
	if bedrock {
		return nbt.WriteBedrockFile(os.Stdout, version, file)
	}
	return nbt.WriteFile(os.Stdout, file, order, gzipOut)
}
