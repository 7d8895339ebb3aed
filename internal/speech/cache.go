package speech

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
)

// cacheFilePath builds a content-addressed path under dir from the given
// key parts. The first two hash characters become a subdirectory for better
// file system performance.
func cacheFilePath(dir, ext string, keys ...string) string {
	h := md5.New()
	for _, k := range keys {
		h.Write([]byte(k))
	}
	hash := hex.EncodeToString(h.Sum(nil))

	subdir := hash[:2]
	filename := hash[2:] + ext

	return filepath.Join(dir, subdir, filename)
}

// writeCacheFile writes data to path, creating parent directories.
func writeCacheFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// cached reports whether the cache file already exists.
func cached(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
