// Package index provides an R-Tree spatial index over parsed coordinate
// lists, for bounding-box, radius and nearest-neighbor queries against the
// waypoints a codec run produced.
package index

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dhconnelly/rtreego"

	"github.com/kass/go-iso6709/pkg/coord"
)

const (
	tolerance   = 0.01
	minChildren = 25
	maxChildren = 50
	dimensions  = 2

	earthRadiusMeters = 6371e3
)

// Entry is one indexed waypoint: a coordinate plus the caller's identifier
// (for list-derived indexes, the element's position rendered as text).
type Entry struct {
	ID    string
	Coord coord.Coordinate
}

// spatialEntry wraps an Entry for R-Tree indexing
type spatialEntry struct {
	Entry
	rect *rtreego.Rect
}

func (se *spatialEntry) Bounds() *rtreego.Rect {
	return se.rect
}

// Index is a thread-safe R-Tree over geographic waypoints.
type Index struct {
	tree  *rtreego.Rtree
	mu    sync.RWMutex
	count atomic.Int64
}

// New creates an empty index.
func New() *Index {
	return &Index{
		tree: rtreego.NewTree(dimensions, minChildren, maxChildren),
	}
}

// FromList builds an index over a coordinate list, typically the output of
// iso6709.ParseList. Entry IDs are the zero-based list positions.
func FromList(l coord.List) *Index {
	entries := make([]Entry, len(l))
	for i, c := range l {
		entries[i] = Entry{ID: fmt.Sprintf("%d", i), Coord: c}
	}
	idx := New()
	idx.Insert(entries)
	return idx
}

// Insert indexes a batch of entries, building bounding rects in parallel
// across CPU cores before taking the write lock.
func (x *Index) Insert(entries []Entry) {
	if len(entries) == 0 {
		return
	}

	numCPU := runtime.NumCPU()
	items := make([]rtreego.Spatial, len(entries))
	var wg sync.WaitGroup

	batchSize := len(entries) / numCPU
	if batchSize < 1 {
		batchSize = 1
		numCPU = len(entries)
	}

	for i := 0; i < numCPU && i*batchSize < len(entries); i++ {
		wg.Add(1)
		start := i * batchSize
		end := start + batchSize
		if end > len(entries) {
			end = len(entries)
		}

		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				lat, lon := entries[j].Coord.Degrees()
				rect := rtreego.Point{lat, lon}.ToRect(tolerance)
				items[j] = &spatialEntry{Entry: entries[j], rect: rect}
			}
		}(start, end)
	}

	wg.Wait()

	x.mu.Lock()
	defer x.mu.Unlock()

	for _, item := range items {
		x.tree.Insert(item)
	}
	x.count.Add(int64(len(items)))
}

// SearchBox returns all entries inside the box spanned by the bottom-left
// and top-right corners.
func (x *Index) SearchBox(bottomLeft, topRight coord.Coordinate) ([]Entry, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	latBL, lonBL := bottomLeft.Degrees()
	latTR, lonTR := topRight.Degrees()

	bounds, err := rtreego.NewRect(
		rtreego.Point{latBL, lonBL},
		[]float64{latTR - latBL, lonTR - lonBL},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid bounding box: %w", err)
	}

	results := x.tree.SearchIntersect(bounds)

	// Re-check candidates: rects carry the insertion tolerance.
	entries := make([]Entry, 0, len(results))
	for _, result := range results {
		item, ok := result.(*spatialEntry)
		if !ok {
			continue
		}
		lat, lon := item.Coord.Degrees()
		if lat >= latBL && lat <= latTR && lon >= lonBL && lon <= lonTR {
			entries = append(entries, item.Entry)
		}
	}
	return entries, nil
}

// SearchRadius returns all entries within the given great-circle distance
// (meters) of the center point.
func (x *Index) SearchRadius(center coord.Coordinate, meters float64) ([]Entry, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	// Over-approximate the radius as a degree box, then filter by the real
	// haversine distance.
	deg := meters / earthRadiusMeters * (180 / math.Pi)
	centerLat, centerLon := center.Degrees()

	bounds, err := rtreego.NewRect(
		rtreego.Point{centerLat - deg, centerLon - deg},
		[]float64{2 * deg, 2 * deg},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid radius search: %w", err)
	}

	results := x.tree.SearchIntersect(bounds)

	entries := make([]Entry, 0, len(results))
	for _, result := range results {
		item, ok := result.(*spatialEntry)
		if !ok {
			continue
		}
		if coord.Distance(center, item.Coord) <= meters {
			entries = append(entries, item.Entry)
		}
	}
	return entries, nil
}

// Nearest returns the n entries closest to the given point.
func (x *Index) Nearest(center coord.Coordinate, n int) []Entry {
	x.mu.RLock()
	defer x.mu.RUnlock()

	lat, lon := center.Degrees()
	results := x.tree.NearestNeighbors(n, rtreego.Point{lat, lon})

	entries := make([]Entry, 0, len(results))
	for _, result := range results {
		if item, ok := result.(*spatialEntry); ok {
			entries = append(entries, item.Entry)
		}
	}
	return entries
}

// Size returns the number of indexed entries.
func (x *Index) Size() int64 {
	return x.count.Load()
}

// Clear removes all entries.
func (x *Index) Clear() {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.tree = rtreego.NewTree(dimensions, minChildren, maxChildren)
	x.count.Store(0)
}
