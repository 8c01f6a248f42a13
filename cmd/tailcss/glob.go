package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// globAll returns the files matching any of patterns, sorted and without
// duplicates. A "**" path segment matches any number of directories.
func globAll(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range patterns {
		a, err := glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, f := range a {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				files = append(files, f)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func glob(pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)
	if !strings.Contains(pattern, "**") {
		a, err := filepath.Glob(filepath.FromSlash(pattern))
		if err != nil {
			return nil, errors.Wrapf(err, "glob %q", pattern)
		}
		return regularFiles(a), nil
	}

	// Walk from the longest directory prefix without wildcards.
	pattern = strings.TrimPrefix(pattern, "./")
	root := "."
	if i := strings.IndexAny(pattern, "*?["); i > 0 {
		if j := strings.LastIndexByte(pattern[:i], '/'); j > 0 {
			root = pattern[:j]
		}
	}

	var files []string
	err := filepath.WalkDir(filepath.FromSlash(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		} else if d.IsDir() {
			return nil
		}
		ok, err := matchGlob(pattern, filepath.ToSlash(path))
		if err != nil {
			return err
		} else if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "glob %q", pattern)
	}
	return files, nil
}

// matchGlob reports whether a slash-separated path matches pattern.
func matchGlob(pattern, path string) (bool, error) {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(strings.TrimPrefix(path, "./"), "/"))
}

func matchSegments(pattern, path []string) (bool, error) {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			for i := 0; i <= len(path); i++ {
				if ok, err := matchSegments(pattern[1:], path[i:]); ok || err != nil {
					return ok, err
				}
			}
			return false, nil
		}

		if len(path) == 0 {
			return false, nil
		}
		ok, err := filepath.Match(pattern[0], path[0])
		if !ok || err != nil {
			return false, err
		}
		pattern, path = pattern[1:], path[1:]
	}
	return len(path) == 0, nil
}

func regularFiles(paths []string) []string {
	a := paths[:0]
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			a = append(a, p)
		}
	}
	return a
}
