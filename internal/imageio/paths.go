// SPDX-License-Identifier: MIT

package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrNoMatch is returned when a glob pattern matches no file.
var ErrNoMatch = errors.New("imageio: pattern matched no files")

// ExtractNumber returns the integer formed by the trailing digits of the
// file name without its extension ("MFPS12.bmp" → 12).
func ExtractNumber(filename string) (int, error) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	i := len(base)
	for i > 0 && base[i-1] >= '0' && base[i-1] <= '9' {
		i--
	}
	if i == len(base) {
		return 0, fmt.Errorf("imageio: no trailing number in %q", filename)
	}

	return strconv.Atoi(base[i:])
}

// SortNatural orders paths by their trailing number so that "p2" precedes
// "p10". Names without a number sort lexically after numbered ones.
func SortNatural(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		ni, ei := ExtractNumber(paths[i])
		nj, ej := ExtractNumber(paths[j])
		switch {
		case ei == nil && ej == nil:
			if ni != nj {
				return ni < nj
			}
			return paths[i] < paths[j]
		case ei == nil:
			return true
		case ej == nil:
			return false
		default:
			return paths[i] < paths[j]
		}
	})
}

// Expand resolves capture arguments into an ordered file list. Plain paths
// are kept as given; an argument containing glob metacharacters is expanded
// and its matches are sorted with SortNatural.
func Expand(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[") {
			out = append(out, arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, arg)
		}
		SortNatural(matches)
		out = append(out, matches...)
	}

	return out, nil
}
