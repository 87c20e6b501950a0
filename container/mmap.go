// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build unix

package container

import (
	"encoding/binary"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MappedWords is a memory-mapped file reinterpreted as a slice of
// little-endian uint32 words, per the container formats' word-oriented
// layout. Close must be called to release the mapping.
type MappedWords struct {
	Words []uint32

	data  []byte // non-nil only when data is the live mmap region
	owned bool   // true if Words was copied out of data (big-endian hosts)
}

// OpenMapped maps path read-only and exposes its contents as Words. On
// little-endian hosts this is zero-copy: Words aliases the mapped pages
// directly via an unsafe reinterpretation, matching the byte layout a
// memory-mapped []uint32 would have in the reference implementation. On
// big-endian hosts the bytes are copied once and byte-swapped into an
// owned slice, since the kernel mapping is read-only (MAP_SHARED) and must
// not be mutated to byte-swap in place.
func OpenMapped(path string) (*MappedWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size%4 != 0 {
		return nil, ErrTruncated
	}
	if size == 0 {
		return &MappedWords{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	if isLittleEndian() {
		words := unsafe.Slice((*uint32)(unsafe.Pointer(&data[0])), len(data)/4)
		return &MappedWords{Words: words, data: data}, nil
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	if err := unix.Munmap(data); err != nil {
		return nil, err
	}
	return &MappedWords{Words: words, owned: true}, nil
}

// Close unmaps the underlying file region. It is a no-op for an
// already-owned (big-endian, copied) MappedWords.
func (m *MappedWords) Close() error {
	if m.owned || m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	m.Words = nil
	return unix.Munmap(data)
}

func isLittleEndian() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}
