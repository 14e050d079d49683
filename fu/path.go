package fu

import (
	"os"
	"path/filepath"

	"go-ml.dev/pkg/iokit"
)

/*
DatasetPath returns s if it's absolute or exists relative to the working directory,
otherwise the path of s in the shared go-ml datasets cache
*/
func DatasetPath(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	if _, err := os.Stat(s); err == nil {
		return s
	}
	return iokit.CacheFile(filepath.Join("go-ml", "Datasets", s))
}
