package trash

import (
	"fmt"
	"path/filepath"

	"github.com/babarot/brm/internal/fs"
	"github.com/babarot/brm/internal/location"
	"github.com/babarot/brm/internal/shell"
	"github.com/gobwas/glob"
)

// protector refuses paths whose removal would break the trash itself or
// that the user asked to keep
type protector struct {
	// the trash directory and the record file, both as configured and
	// with symlinks resolved
	keep  []string
	inner []string

	patterns []string
	globs    []glob.Glob
}

func newProtector(loc location.Locations, patterns []string) (*protector, error) {
	p := &protector{}

	for _, path := range []string{loc.TrashDir, loc.RecordPath} {
		if path == "" {
			continue
		}
		p.keep = append(p.keep, variants(path)...)
	}
	if loc.TrashDir != "" {
		p.inner = variants(loc.TrashDir)
	}

	for _, pattern := range patterns {
		expanded, err := shell.ExpandHome(pattern)
		if err != nil {
			return nil, fmt.Errorf("protected pattern %q: %w", pattern, err)
		}
		g, err := glob.Compile(filepath.Clean(expanded), filepath.Separator)
		if err != nil {
			return nil, fmt.Errorf("protected pattern %q: %w", pattern, err)
		}
		p.patterns = append(p.patterns, pattern)
		p.globs = append(p.globs, g)
	}

	return p, nil
}

// check expects a canonical absolute path
func (p *protector) check(abs string) error {
	if fs.IsUnsafePath(abs) {
		return ErrProtectedPath
	}
	for _, keep := range p.keep {
		// removing an ancestor would take the trash or its records along
		if fs.IsWithin(keep, abs) {
			return fmt.Errorf("%w: contains %s", ErrProtectedPath, keep)
		}
	}
	for _, dir := range p.inner {
		if fs.IsWithin(abs, dir) {
			return fmt.Errorf("%w: already in the trash", ErrProtectedPath)
		}
	}
	for i, g := range p.globs {
		if g.Match(abs) {
			return fmt.Errorf("%w: matches %q", ErrProtectedPath, p.patterns[i])
		}
	}
	return nil
}

func variants(path string) []string {
	clean := filepath.Clean(path)
	resolved, err := filepath.EvalSymlinks(clean)
	if err != nil || resolved == clean {
		return []string{clean}
	}
	return []string{clean, resolved}
}
