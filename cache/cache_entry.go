package cache

import "time"
import "image"
import "sync/atomic"

// Identifies a rendered raster. Font is an identity value for the font
// (typically its pointer), and Signature tells rasterizers apart.
type Key struct {
	Font      uint64
	Signature uint64
	Rune      rune
	Canvas    int32
	PPEM      int32
	Lift      int32
}

const constRasterSizeFactor = 64

// Returns the approximate memory used by the given raster, in bytes.
func RasterByteSize(raster *image.Gray) uint32 {
	if raster == nil { return constRasterSizeFactor }
	return uint32(len(raster.Pix)) + constRasterSizeFactor
}

// A cached raster with additional information to estimate how
// much the entry is being used.
type cachedRasterEntry struct {
	Raster *image.Gray // Read-only.
	ByteSize uint32 // Read-only.
	CreationInstant uint32 // see cacheEntryInstant(). Read-only.
	accessCount uint32 // number of times the entry has been accessed
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedRasterEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction. Concurrent-safe.
func (self *cachedRasterEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := uint64(self.ByteSize)*uint64(atomic.LoadUint32(&self.accessCount))
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	hotness := (ConstEvictionCost + bytesHit)/uint64(elapsed)
	if hotness > 0xFFFFFFFE { return 0xFFFFFFFE }
	return uint32(hotness)
}

// Lets tests move time forward without sleeping. One second would be
// 1000_000_000, half a second 500_000_000, etc.
var testInstantNanosHack int64

var processStart = time.Now()

// A time instant related to the process's monotonic clock, with
// some arbitrary downscaling applied (roughly 134ms per unit).
func cacheEntryInstant() uint32 {
	elapsed := time.Since(processStart).Nanoseconds()
	return uint32((elapsed + testInstantNanosHack) >> 27)
}

func newCachedRasterEntry(raster *image.Gray) (*cachedRasterEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedRasterEntry {
		Raster: raster,
		ByteSize: RasterByteSize(raster),
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}
