package colour

import (
	"fmt"
	"image"
	"math/rand"
	"time"
)

// convergenceThreshold is the per-channel centroid movement below which an
// iteration is considered to have converged.
const convergenceThreshold = 1.0

// KMeansExtractor extracts dominant colours using Lloyd's k-means clustering
// over distinct opaque pixel samples in RGB space.
//
// Centroid initialisation is a uniform random permutation of the samples, so
// cluster assignment is non-deterministic across runs by design. Call Seed to
// pin the permutation for reproducible output.
type KMeansExtractor struct {
	maxIterations int
	rng           *rand.Rand
}

// NewKMeansExtractor creates a KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: DefaultMaxIterations,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed replaces the extractor's randomness source with a deterministic one.
func (e *KMeansExtractor) Seed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// SetMaxIterations overrides the iteration cap. Values below 1 are ignored.
func (e *KMeansExtractor) SetMaxIterations(n int) {
	if n >= 1 {
		e.maxIterations = n
	}
}

// Extract extracts up to count dominant colours from an image.
//
// When the image holds fewer distinct opaque colours than count, every
// distinct colour is returned directly in first-occurrence order and no
// clustering runs; a fully transparent image yields an empty palette. Both
// are valid outcomes, not errors.
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > MaxColourCount {
		return nil, fmt.Errorf("colour count too large: %d (maximum: %d)", count, MaxColourCount)
	}

	samples := Samples(img)

	// Degenerate case: nothing to synthesize, show every colour present.
	if len(samples) <= count {
		return NewPaletteFromRGB(samples), nil
	}

	centroids := e.cluster(samples, count)

	swatches := make([]Swatch, len(centroids))
	for i, c := range centroids {
		swatches[i] = Swatch{R: c.r, G: c.g, B: c.b}
	}
	return NewPalette(swatches), nil
}

// point is a position in 3D RGB space. Centroids are real-valued because
// they are means of assigned samples.
type point struct {
	r, g, b float64
}

// sqDist returns the squared Euclidean distance between two points. The
// square root is skipped: it is monotonic, so comparisons are unaffected.
func (p point) sqDist(other point) float64 {
	dr := p.r - other.r
	dg := p.g - other.g
	db := p.b - other.b
	return dr*dr + dg*dg + db*db
}

// cluster partitions samples into k clusters and returns the k centroids.
// Requires len(samples) > k; Extract guarantees this by taking the
// degenerate branch otherwise.
func (e *KMeansExtractor) cluster(samples []RGB, k int) []point {
	points := make([]point, len(samples))
	for i, s := range samples {
		points[i] = point{r: float64(s.R), g: float64(s.G), b: float64(s.B)}
	}

	// Initial centroids: shuffle uniformly, take the first k.
	perm := e.rng.Perm(len(points))
	centroids := make([]point, k)
	for i := range centroids {
		centroids[i] = points[perm[i]]
	}

	return lloyd(points, centroids, e.maxIterations)
}

// lloyd runs assignment/update iterations in place on centroids until every
// centroid's channels move less than convergenceThreshold in one update, or
// maxIterations is reached. The first iteration always runs.
func lloyd(points []point, centroids []point, maxIterations int) []point {
	k := len(centroids)
	previous := make([]point, k)
	sums := make([]point, k)
	counts := make([]int, k)

	for iter := 0; iter < maxIterations; iter++ {
		copy(previous, centroids)

		for i := range sums {
			sums[i] = point{}
			counts[i] = 0
		}

		// Assignment: nearest centroid wins; ties go to the lowest index.
		for _, p := range points {
			nearest := nearestCentroid(p, centroids)
			sums[nearest].r += p.r
			sums[nearest].g += p.g
			sums[nearest].b += p.b
			counts[nearest]++
		}

		// Update: each non-empty cluster moves to the mean of its members.
		// An empty cluster keeps its previous centroid and is never
		// reseeded, even if it stays empty for the rest of the run.
		for i := range centroids {
			if counts[i] > 0 {
				centroids[i] = point{
					r: sums[i].r / float64(counts[i]),
					g: sums[i].g / float64(counts[i]),
					b: sums[i].b / float64(counts[i]),
				}
			}
		}

		if converged(previous, centroids) {
			break
		}
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to p, scanning
// in order so the first minimum wins on exact ties.
func nearestCentroid(p point, centroids []point) int {
	nearest := 0
	best := p.sqDist(centroids[0])

	for i := 1; i < len(centroids); i++ {
		if d := p.sqDist(centroids[i]); d < best {
			best = d
			nearest = i
		}
	}

	return nearest
}

// converged reports whether every channel of every centroid moved less than
// convergenceThreshold since the previous iteration.
func converged(previous, current []point) bool {
	for i := range current {
		if abs(current[i].r-previous[i].r) >= convergenceThreshold ||
			abs(current[i].g-previous[i].g) >= convergenceThreshold ||
			abs(current[i].b-previous[i].b) >= convergenceThreshold {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
