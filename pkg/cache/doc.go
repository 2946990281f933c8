// Package cache provides a small generic LRU used to keep compiled
// artifacts, such as regular expressions from validation rules, bounded in
// memory.
//
//	patterns := cache.New[string, *regexp.Regexp](64)
//	re, err := patterns.GetOrAdd(expr, func() (*regexp.Regexp, error) {
//		return regexp.Compile(expr)
//	})
//
// All operations are O(1) and guarded by a single mutex.
package cache
