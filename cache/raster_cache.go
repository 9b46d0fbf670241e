package cache

import "sync"
import "image"
import "sync/atomic"

// A concurrent-safe raster cache with memory bounds. When full, it
// evicts the coldest entry out of a small random sample (Go's map
// iteration order takes care of the randomness).
//
// Cached rasters must be treated as read-only. Callers that need to
// modify a raster should copy it first.
type RasterCache struct {
	cachedRasters map[Key]*cachedRasterEntry
	spaceBytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	hits uint32
	misses uint32
	mutex sync.RWMutex
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
func NewRasterCache(maxByteSize int) *RasterCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &RasterCache {
		cachedRasters: make(map[Key]*cachedRasterEntry, 32),
		spaceBytesLeft: uint32(maxByteSize),
		lowestBytesLeft: uint32(maxByteSize),
		byteSizeLimit: uint32(maxByteSize),
	}
}

// Attempts to remove the entry with the lowest eviction cost from a
// small pool of samples. May not remove anything if all samples are
// hotter than the given hotness.
//
// The returned value is the freed space, which must be manually
// added to spaceBytesLeft by the caller.
func (self *RasterCache) removeRandEntry(hotness uint32, instant uint32) uint32 {
	const SampleSize = 10

	self.mutex.RLock()
	var selectedKey Key
	lowestHotness := ^uint32(0)
	samplesTaken  := 0
	for key, entry := range self.cachedRasters {
		currHotness := entry.Hotness(instant)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}
		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	self.mutex.RUnlock()

	freedSpace := uint32(0)
	if lowestHotness < hotness {
		self.mutex.Lock()
		entry, stillExists := self.cachedRasters[selectedKey]
		if stillExists {
			delete(self.cachedRasters, selectedKey)
			freedSpace = entry.ByteSize
		}
		self.mutex.Unlock()
	}
	return freedSpace
}

// Stores the given raster with the given key. Rasters bigger than the
// cache limit are ignored, and so are rasters for keys that are already
// present.
func (self *RasterCache) Put(key Key, raster *image.Gray) {
	const MaxMakeRoomAttempts = 3

	entry, instant := newCachedRasterEntry(raster)
	if entry.ByteSize > self.byteSizeLimit { return }
	spaceBytesLeft := atomic.LoadUint32(&self.spaceBytesLeft)
	freedSpace := uint32(0)
	if entry.ByteSize > spaceBytesLeft {
		hotness := entry.Hotness(instant)
		missingSpace := entry.ByteSize - spaceBytesLeft
		for i := 0; i < MaxMakeRoomAttempts; i++ {
			freedSpace += self.removeRandEntry(hotness, instant)
			if freedSpace >= missingSpace { break }
		}
		if freedSpace < missingSpace {
			// we didn't make enough room for the new entry. desist.
			if freedSpace != 0 { atomic.AddUint32(&self.spaceBytesLeft, freedSpace) }
			return
		}
	}

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if freedSpace != 0 { atomic.AddUint32(&self.spaceBytesLeft, freedSpace) }
	_, alreadyExists := self.cachedRasters[key]
	if alreadyExists { return }
	if atomic.LoadUint32(&self.spaceBytesLeft) < entry.ByteSize { return }
	newLeft := atomic.AddUint32(&self.spaceBytesLeft, ^uint32(entry.ByteSize - 1))
	if newLeft < atomic.LoadUint32(&self.lowestBytesLeft) {
		atomic.StoreUint32(&self.lowestBytesLeft, newLeft)
	}
	self.cachedRasters[key] = entry
}

// Gets the raster associated to the given key.
func (self *RasterCache) Get(key Key) (*image.Gray, bool) {
	self.mutex.RLock()
	entry, found := self.cachedRasters[key]
	self.mutex.RUnlock()
	if !found {
		atomic.AddUint32(&self.misses, 1)
		return nil, false
	}
	atomic.AddUint32(&self.hits, 1)
	entry.IncreaseAccessCount()
	return entry.Raster, true
}

// Returns the number of cached rasters.
func (self *RasterCache) Len() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.cachedRasters)
}

// Returns an approximation of the number of bytes taken by the
// rasters currently stored in the cache.
func (self *RasterCache) ApproxByteSize() int {
	return int(self.byteSizeLimit - atomic.LoadUint32(&self.spaceBytesLeft))
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life.
func (self *RasterCache) PeakSize() int {
	return int(self.byteSizeLimit - atomic.LoadUint32(&self.lowestBytesLeft))
}

// Returns the number of cache hits and misses so far.
func (self *RasterCache) Stats() (hits, misses int) {
	return int(atomic.LoadUint32(&self.hits)), int(atomic.LoadUint32(&self.misses))
}
