// bbolt-backed cache in front of a Source. Repeated sweeps over the same
// year (horizon regeneration, the orrery ticker) hit the cache instead of
// re-interpolating the kernel.
package ephemeris

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.etcd.io/bbolt"

	"github.com/astrodyn-tools/refframes/pkg/errs"
)

var bucketStates = []byte("states")

// QuantizeJD snaps a julian date onto a truncation grid. Sweep-style callers
// that can tolerate a coarser epoch (the orrery ticker) quantize their
// requests before the lookup so nearby epochs share a cache entry; one-shot
// conversions pass exact epochs and must not call this.
func QuantizeJD(jd float64, trunc time.Duration) float64 {
	if trunc <= 0 {
		return jd
	}
	step := trunc.Seconds() / 86400.0
	return math.Round(jd/step) * step
}

// CachedSource wraps a Source with a persistent state cache.
// States are computed and keyed at the exact requested epoch; the cache
// never substitutes a nearby one.
type CachedSource struct {
	src Source
	db  *bbolt.DB
}

// NewCachedSource opens (or creates) the cache database at path.
func NewCachedSource(src Source, path string) (*CachedSource, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, errs.Wrap(err, errs.ErrCacheRead, "cache.open").WithResource(path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketStates)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errs.Wrap(err, errs.ErrCacheWrite, "cache.init").WithResource(path)
	}

	return &CachedSource{src: src, db: db}, nil
}

// StateKm implements Source. The state is computed at the requested epoch.
func (c *CachedSource) StateKm(jdTDB float64, target, center Body) (State, error) {
	key := []byte(fmt.Sprintf("%s|%s|%.9f", target.Name, center.Name, jdTDB))

	var st State
	found := false
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStates).Get(key)
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &st)
	})
	if err != nil {
		return State{}, errs.Wrap(err, errs.ErrCacheRead, "cache.get").WithResource(string(key))
	}
	if found {
		return st, nil
	}

	st, err = c.src.StateKm(jdTDB, target, center)
	if err != nil {
		return State{}, err
	}

	data, err := json.Marshal(st)
	if err != nil {
		return State{}, errs.Wrap(err, errs.ErrCacheWrite, "cache.marshal")
	}
	err = c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketStates).Put(key, data)
	})
	if err != nil {
		return State{}, errs.Wrap(err, errs.ErrCacheWrite, "cache.put").WithResource(string(key))
	}
	return st, nil
}

// Len returns the number of cached states.
func (c *CachedSource) Len() (int, error) {
	n := 0
	err := c.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketStates).Stats().KeyN
		return nil
	})
	return n, err
}

// Close closes the cache database.
func (c *CachedSource) Close() error {
	return c.db.Close()
}
