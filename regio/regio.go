// Package regio provides read-only access to a physical register
// window, either mapped live from /dev/mem or replayed from a
// snapshot.
package regio

import (
	"encoding/binary"
	"fmt"
	"io/ioutil"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/platinasystems/log"
)

const (
	memFile  = "/dev/mem"
	pageSize = 4096 // Theoretically, we could get this via whatever getconf does
)

// Mem is a live register window. Reads go straight to the hardware on
// every call; nothing is cached.
type Mem struct {
	buf  mmap.MMap
	offs uintptr
}

// MapMem maps size bytes of physical address space starting at base,
// read-only. Since the mapping has to start at a page boundary, base is
// rounded down to the nearest page boundary and the in-page offset is
// applied on every read.
func MapMem(base uintptr, size int) (*Mem, error) {
	f, err := os.OpenFile(memFile, os.O_RDONLY|os.O_SYNC, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %v", memFile, err)
	}

	pagemask := ^uintptr(pageSize - 1)
	mapAddr := base & pagemask
	size += int(base - mapAddr)
	mm, err := mmap.MapRegion(f, size, mmap.RDONLY, 0, int64(mapAddr))
	if err != nil {
		f.Close() // Ignore error
		return nil, fmt.Errorf("couldn't map region (%08X, %v): %v", base, size, err)
	}
	f.Close() // Ignore error
	log.Printf("daemon", "mapped %08X+%X from %s", base, size, memFile)

	return &Mem{buf: mm, offs: base & (pageSize - 1)}, nil
}

// Read32 returns the current word at the given byte offset into the
// window. The registers are little-endian.
func (m *Mem) Read32(off uint32) uint32 {
	return binary.LittleEndian.Uint32(m.buf[m.offs+uintptr(off):])
}

// Close unmaps the window.
func (m *Mem) Close() error {
	return m.buf.Unmap()
}

// Image is a register snapshot: offsets not present read as zero. It
// serves as the test double and as the backing for offline dumps.
type Image map[uint32]uint32

// Read32 returns the snapshotted word at the given byte offset.
func (im Image) Read32(off uint32) uint32 {
	return im[off]
}

// LoadImage reads a raw little-endian dump of a register window, as
// produced by e.g. dd'ing the window out of /dev/mem on the target.
func LoadImage(path string) (Image, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %v", path, err)
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%s: %d bytes isn't a whole number of registers", path, len(b))
	}
	im := make(Image, len(b)/4)
	for off := 0; off < len(b); off += 4 {
		im[uint32(off)] = binary.LittleEndian.Uint32(b[off:])
	}
	return im, nil
}
