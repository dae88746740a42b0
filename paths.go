package growthcurve

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(home, path[2:])
	}

	return path
}
