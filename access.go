package record

// Map-style access. Reads resolve defaults like Get and Has; writes are
// rejected because a record never changes after construction. Use Set,
// Merge, Update or Reset to obtain a modified copy.

// Exists is the map-style presence check. It matches Has.
func (r *Record) Exists(key string) bool {
	return r.Has(key)
}

// Index is the map-style read. It matches Get.
func (r *Record) Index(key string) (any, error) {
	return r.Get(key)
}

// Put always fails with ErrImmutableMutation.
func (r *Record) Put(key string, _ any) error {
	return newFieldError(r.schema, key, ErrImmutableMutation)
}

// Delete always fails with ErrImmutableMutation.
func (r *Record) Delete(key string) error {
	return newFieldError(r.schema, key, ErrImmutableMutation)
}
