package nbt

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// hashScalar and hashScalarFloat fold a (tag id, payload) pair into a
// single 64-bit digest via xxHash64. Hashing the id together with the
// payload's fixed-width encoding keeps distinct variants carrying the
// same numeric value distinct.
func hashScalar(id Id, v int64) (uint64, error) {
	var buf [9]byte
	buf[0] = byte(id)
	binary.BigEndian.PutUint64(buf[1:], uint64(v))
	return xxhash.Sum64(buf[:]), nil
}

func hashScalarFloat(id Id, v float64) (uint64, error) {
	var buf [9]byte
	buf[0] = byte(id)
	binary.BigEndian.PutUint64(buf[1:], math.Float64bits(v))
	return xxhash.Sum64(buf[:]), nil
}

func hashString(v string) (uint64, error) {
	var d xxhash.Digest
	d.Write([]byte{byte(IdString)})
	d.WriteString(v)
	return d.Sum64(), nil
}

// Hash on the three Array kinds, *List and *Compound always fails: a
// mutable tag's contents can change out from under a map key.
func (a *ByteArray) Hash() (uint64, error) { return 0, ErrUnhashable }
func (a *IntArray) Hash() (uint64, error) { return 0, ErrUnhashable }
func (a *LongArray) Hash() (uint64, error) { return 0, ErrUnhashable }
func (l *List) Hash() (uint64, error) { return 0, ErrUnhashable }
func (c *Compound) Hash() (uint64, error) { return 0, ErrUnhashable }
