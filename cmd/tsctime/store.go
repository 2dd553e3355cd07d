package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/dropbox/godropbox/errors"
	"github.com/shirou/gopsutil/v3/host"
)

// record is what we remember about a calibration. Only Rate gets fed back into the
// calibrator, the rest is for humans.
type record struct {
	Rate         float64       `json:"rate"` // GHz.
	CalibratedAt time.Time     `json:"calibratedAt"`
	Wait         time.Duration `json:"wait"`
}

// store maps host IDs to the rate last calibrated on that host. A single file may be
// shared by several machines, e.g. on a network home directory.
type store map[string]record

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "tsctime", "rates.json")
}

// loadStore reads the store at path. A missing file is an empty store.
func loadStore(path string) (store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store{}, nil
		}

		return nil, errors.Wrapf(err, "failed to read rate store %s", path)
	}

	s := store{}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "failed to parse rate store %s", path)
	}

	return s, nil
}

// save writes the store to path through a temporary file, so that concurrent readers
// never see a partial write.
func (s store) save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for rate store %s", path)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode rate store")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write rate store %s", tmp)
	}

	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "failed to replace rate store %s", path)
	}

	return nil
}

// hostKey identifies this machine in the store.
var hostKey = func() (string, error) {
	id, err := host.HostID()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine host ID")
	}

	if id == "" {
		return "", errors.New("host ID is empty")
	}

	return id, nil
}

// lookupRate returns the stored record for this host, if any.
func lookupRate(path string) (rec record, ok bool, err error) {
	key, err := hostKey()
	if err != nil {
		return rec, false, err
	}

	s, err := loadStore(path)
	if err != nil {
		return rec, false, err
	}

	rec, ok = s[key]

	return rec, ok, nil
}

// storeRate records rec for this host, keeping the records of other hosts intact.
func storeRate(path string, rec record) error {
	if !validRate(rec.Rate) {
		return errors.Newf("refusing to store invalid rate %f", rec.Rate)
	}

	key, err := hostKey()
	if err != nil {
		return err
	}

	s, err := loadStore(path)
	if err != nil {
		return err
	}

	s[key] = rec

	return s.save(path)
}
