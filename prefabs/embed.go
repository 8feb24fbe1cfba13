package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scenes/*.yaml
var ScenesFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a scene file, preferring an on-disk copy under prefabs/scenes/
// (so edits and hot reload work in dev) and falling back to the embedded
// copy.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name, "scenes")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScenesFS.ReadFile(clean)
}

// LoadScript reads a timeline script the same way.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPath(name, "scripts")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// WatchDirs lists the on-disk directories a hot-reload watcher should cover.
func WatchDirs() []string {
	return []string{
		filepath.Join("prefabs", "scenes"),
		filepath.Join("prefabs", "scripts"),
	}
}

func cleanPath(path, dir string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "prefabs/")
	s = strings.TrimPrefix(s, dir+"/")
	return dir + "/" + s
}

func diskPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
