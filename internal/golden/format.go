// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package golden

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

const (
	magic   = "L2GV"
	version = 1
)

// ErrFormat reports a vector file that does not follow the L2GV layout.
var ErrFormat = errors.New("golden: malformed vector file")

// Vector is one recorded evaluation. Only the first len(Func.Args) entries
// of Args are meaningful; results a function does not produce are zero.
type Vector struct {
	Func   string
	Args   [3]uint64
	Result [2]uint64
}

// Write stores vs as a zstd-compressed L2GV stream:
//
//	"L2GV" | version u16 | function count u16
//	per function: name length u8 | name | argument count u8
//	record count u64
//	per record: function index u16 | args u64... | result u64 | result u64
//
// All integers are little endian.
func Write(w io.Writer, vs []Vector) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("golden: zstd writer: %w", err)
	}
	bw := bufio.NewWriter(enc)

	index := make(map[string]uint16)
	var names []string
	arity := make(map[string]int)
	for _, v := range vs {
		if _, ok := index[v.Func]; ok {
			continue
		}
		f, ok := Lookup(v.Func)
		if !ok {
			enc.Close()
			return fmt.Errorf("%w: %q", ErrUnknownFunction, v.Func)
		}
		if len(v.Func) > 255 || len(names) == 1<<16-1 {
			enc.Close()
			return fmt.Errorf("golden: cannot encode function %q", v.Func)
		}
		index[v.Func] = uint16(len(names))
		names = append(names, v.Func)
		arity[v.Func] = len(f.Args)
	}

	var buf []byte
	buf = append(buf, magic...)
	buf = binary.LittleEndian.AppendUint16(buf, version)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(names)))
	for _, name := range names {
		buf = append(buf, byte(len(name)))
		buf = append(buf, name...)
		buf = append(buf, byte(arity[name]))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(vs)))
	if _, err := bw.Write(buf); err != nil {
		enc.Close()
		return err
	}

	for _, v := range vs {
		buf = binary.LittleEndian.AppendUint16(buf[:0], index[v.Func])
		for i := 0; i < arity[v.Func]; i++ {
			buf = binary.LittleEndian.AppendUint64(buf, v.Args[i])
		}
		buf = binary.LittleEndian.AppendUint64(buf, v.Result[0])
		buf = binary.LittleEndian.AppendUint64(buf, v.Result[1])
		if _, err := bw.Write(buf); err != nil {
			enc.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Read decodes a stream produced by Write.
func Read(r io.Reader) ([]Vector, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("golden: zstd reader: %w", err)
	}
	defer dec.Close()
	br := bufio.NewReader(dec)

	var head [8]byte
	if _, err := io.ReadFull(br, head[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrFormat, err)
	}
	if string(head[:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, head[:4])
	}
	if v := binary.LittleEndian.Uint16(head[4:]); v != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, v)
	}

	type entry struct {
		name  string
		arity int
	}
	funcs := make([]entry, binary.LittleEndian.Uint16(head[6:]))
	for i := range funcs {
		n, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: function table: %v", ErrFormat, err)
		}
		name := make([]byte, int(n)+1)
		if _, err := io.ReadFull(br, name); err != nil {
			return nil, fmt.Errorf("%w: function table: %v", ErrFormat, err)
		}
		arity := int(name[n])
		if arity > 3 {
			return nil, fmt.Errorf("%w: %q takes %d arguments", ErrFormat, name[:n], arity)
		}
		funcs[i] = entry{name: string(name[:n]), arity: arity}
	}

	var cnt [8]byte
	if _, err := io.ReadFull(br, cnt[:]); err != nil {
		return nil, fmt.Errorf("%w: record count: %v", ErrFormat, err)
	}
	count := binary.LittleEndian.Uint64(cnt[:])

	var vs []Vector
	var rec [2 + 5*8]byte
	for k := uint64(0); k < count; k++ {
		if _, err := io.ReadFull(br, rec[:2]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrFormat, k, err)
		}
		idx := int(binary.LittleEndian.Uint16(rec[:2]))
		if idx >= len(funcs) {
			return nil, fmt.Errorf("%w: record %d: function index %d out of range", ErrFormat, k, idx)
		}
		e := funcs[idx]
		body := rec[2 : 2+(e.arity+2)*8]
		if _, err := io.ReadFull(br, body); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrFormat, k, err)
		}
		v := Vector{Func: e.name}
		for i := 0; i < e.arity; i++ {
			v.Args[i] = binary.LittleEndian.Uint64(body[i*8:])
		}
		v.Result[0] = binary.LittleEndian.Uint64(body[e.arity*8:])
		v.Result[1] = binary.LittleEndian.Uint64(body[e.arity*8+8:])
		vs = append(vs, v)
	}
	return vs, nil
}
