// Package walker enumerates source files under a project root and maps
// them to mirrored target paths.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Discover returns root-relative, slash-separated paths of all files
// whose extension is in exts, in lexicographic order. Paths containing
// a hidden segment (leading ".") or an OS-metadata segment such as
// __MACOSX are excluded.
func Discover(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("walker: source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: source root %s is not a directory", root)
	}

	extSet := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		extSet[strings.ToLower(e)] = struct{}{}
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			base := filepath.Base(path)
			if excludedSegment(base) {
				return filepath.SkipDir
			}
			return nil
		}
		if hasExcludedSegment(rel) {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(rel))
		if _, ok := extSet[ext]; ok {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// MirrorRel swaps a discovered relative path's extension for targetExt.
func MirrorRel(rel, targetExt string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + targetExt
}

// TargetPath mirrors a discovered relative path into the target root,
// swapping the source extension for targetExt and creating intermediate
// directories.
func TargetPath(targetRoot, rel, targetExt string) (string, error) {
	abs := filepath.Join(targetRoot, filepath.FromSlash(MirrorRel(rel, targetExt)))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	return abs, nil
}

// Sanitize removes macOS metadata (__MACOSX directories and ._* resource
// fork files) under root. Best effort: failures are logged and never
// returned.
func Sanitize(root string, log logrus.FieldLogger) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	var dirs []string
	var forks []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		base := filepath.Base(path)
		if d.IsDir() && base == "__MACOSX" {
			dirs = append(dirs, path)
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasPrefix(base, "._") {
			forks = append(forks, path)
		}
		return nil
	})
	for _, d := range dirs {
		if err := os.RemoveAll(d); err != nil {
			log.WithError(err).Warnf("could not remove metadata directory %s", d)
			continue
		}
		log.Debugf("removed macOS metadata directory: %s", d)
	}
	for _, f := range forks {
		if err := os.Remove(f); err != nil {
			log.WithError(err).Warnf("could not remove resource fork file %s", f)
			continue
		}
		log.Debugf("removed macOS resource fork file: %s", f)
	}
}

func excludedSegment(seg string) bool {
	return strings.HasPrefix(seg, ".") || strings.HasPrefix(seg, "__MACOSX")
}

func hasExcludedSegment(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if excludedSegment(seg) {
			return true
		}
	}
	return false
}
