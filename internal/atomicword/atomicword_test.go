package atomicword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadStore(t *testing.T) {
	var u8 uint8
	var u16 uint16
	var u32 uint32
	var u64 uint64

	Store(&u8, uint8(0x12))
	Store(&u16, uint16(0x1234))
	Store(&u32, uint32(0x12345678))
	Store(&u64, uint64(0x1234567890abcdef))

	assert.Equal(t, uint8(0x12), Load(&u8))
	assert.Equal(t, uint16(0x1234), Load(&u16))
	assert.Equal(t, uint32(0x12345678), Load(&u32))
	assert.Equal(t, uint64(0x1234567890abcdef), Load(&u64))
}

func TestCompareAndSwap(t *testing.T) {
	var v uint32 = 1
	assert.False(t, CompareAndSwap(&v, 0, 2), "CAS should fail on a mismatched old value")
	assert.Equal(t, uint32(1), v)

	assert.True(t, CompareAndSwap(&v, 1, 2))
	assert.Equal(t, uint32(2), v)
}

func TestAddSub(t *testing.T) {
	var v uint32

	assert.Equal(t, uint32(1), Add(&v, 1))
	assert.Equal(t, uint32(5), Add(&v, 4))
	assert.Equal(t, uint32(3), Sub(&v, 2))

	var u8 uint8 = 0
	assert.Equal(t, uint8(0xff), Sub(&u8, 1), "unsigned wraparound on subtract")
}

func TestBit(t *testing.T) {
	var v uint32 = 1 << 31
	assert.True(t, Bit(v, 31))
	assert.False(t, Bit(v, 0))
	assert.False(t, Bit(v, 30))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, Width[uint8]())
	assert.Equal(t, 2, Width[uint16]())
	assert.Equal(t, 4, Width[uint32]())
	assert.Equal(t, 8, Width[uint64]())
}

func TestPointer(t *testing.T) {
	var v uint32
	assert.NotNil(t, Pointer(&v))
}
