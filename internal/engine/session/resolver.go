package session

import (
	"path/filepath"
	"strings"
)

// ResolveEntity maps a changed path to the id of the entity directory it belongs to.
// The entity id is the first component of path relative to root. Paths outside
// root and paths that sit directly in root yield no entity.
func ResolveEntity(root, path string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return "", false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	entity, rest, found := strings.Cut(rel, string(filepath.Separator))
	if !found || entity == "" || rest == "" {
		return "", false
	}
	return entity, true
}
