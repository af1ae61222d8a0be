package nbt

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"io"
)

// gzipMagic is the two leading bytes of every gzip stream (RFC 1952 §2.3.1).
var gzipMagic = [2]byte{0x1F, 0x8B}

// File is the root of an on-disk NBT document: a single named Compound,
// exactly as produced by ReadFile/consumed by WriteFile.
type File struct {
	Name string
	Root *Compound
}

// ReadFile reads a Java-style NBT file from r: it peeks two bytes to detect
// a gzip wrapper, transparently decompressing if present, then parses one
// Named Tag in the given byte order and requires its payload to be a
// Compound (the only legal root tag for a file).
func ReadFile(r io.Reader, order binary.ByteOrder) (*File, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(2)
	var src io.Reader = br
	if err == nil && peek[0] == gzipMagic[0] && peek[1] == gzipMagic[1] {
		gz, gzErr := gzip.NewReader(br)
		if gzErr != nil {
			return nil, newDecodeError("opening gzip stream", gzErr)
		}
		defer gz.Close()
		src = gz
	}

	name, tag, err := ReadNamedTag(src, order)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, newDecodeError("file begins with "+IdEnd.String()+"; no root tag", nil)
	}
	root, ok := tag.(*Compound)
	if !ok {
		return nil, newDecodeError("file root tag must be "+IdCompound.String()+", got "+tag.Id().String(), nil)
	}
	return &File{Name: name, Root: root}, nil
}

// WriteFile writes f as a single Named Tag in the given byte order,
// optionally gzip-compressing the output — matching the write side of
// ReadFile's auto-detection.
func WriteFile(w io.Writer, f *File, order binary.ByteOrder, gzipCompress bool) error {
	if !gzipCompress {
		return WriteNamedTag(w, order, f.Name, f.Root)
	}
	gz := gzip.NewWriter(w)
	if err := WriteNamedTag(gz, order, f.Name, f.Root); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

// ReadBedrockFile reads a Bedrock-format world file: the 8-byte header
// handled by ReadBedrockRoot, with no gzip wrapper (Bedrock's on-disk
// LevelDB values are never gzip-compressed at this layer).
func ReadBedrockFile(r io.Reader) (version int32, f *File, err error) {
	version, name, tag, err := ReadBedrockRoot(r)
	if err != nil {
		return 0, nil, err
	}
	if tag == nil {
		return 0, nil, newDecodeError("bedrock payload begins with "+IdEnd.String()+"; no root tag", nil)
	}
	root, ok := tag.(*Compound)
	if !ok {
		return 0, nil, newDecodeError("bedrock root tag must be "+IdCompound.String()+", got "+tag.Id().String(), nil)
	}
	return version, &File{Name: name, Root: root}, nil
}

// WriteBedrockFile writes f with the Bedrock 8-byte header, mirroring
// ReadBedrockFile.
func WriteBedrockFile(w io.Writer, version int32, f *File) error {
	return WriteBedrockRoot(w, version, f.Name, f.Root)
}
