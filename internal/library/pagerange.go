package library

import (
	"sort"
	"strconv"
	"strings"
)

// parsePageRange turns an expression like "1-5,8,10-12" into an ascending,
// duplicate-free list of 1-based pages within [1, maxPage]. Single pages out
// of bounds and malformed tokens are dropped silently; for an A-B range, A is
// clamped to [1, maxPage] and B to [A, maxPage], so reversed or out-of-bounds
// ranges degrade to a valid interval instead of failing. An empty result is
// the caller's signal that no valid pages were specified.
func parsePageRange(expr string, maxPage int) []int {
	if expr == "" || maxPage < 1 {
		return nil
	}

	seen := make(map[int]struct{})
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if a, b, ok := strings.Cut(token, "-"); ok {
			start, err1 := strconv.Atoi(strings.TrimSpace(a))
			end, err2 := strconv.Atoi(strings.TrimSpace(b))
			if err1 != nil || err2 != nil {
				continue
			}
			start = clamp(start, 1, maxPage)
			end = clamp(end, start, maxPage)
			for p := start; p <= end; p++ {
				seen[p] = struct{}{}
			}
			continue
		}

		page, err := strconv.Atoi(token)
		if err != nil || page < 1 || page > maxPage {
			continue
		}
		seen[page] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}
	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
