// Package pretrained implements the pretrained-model registry: a static
// name -> (vocabulary resource key, URL set, spanning pattern, special
// tokens) table, and the loader that turns a resolved local file into a
// UnifiedTokenVocab. The disk cache and URL downloader that resolve a key
// to a local path are an external collaborator, consumed only through the
// ResourceLoader interface below (spec.md §1, "out of scope: the disk
// cache and URL resource downloader").
package pretrained

// ResourceLoader is the capability the registry consumes to turn a
// resource key and its candidate URLs into a local file path. The core
// never downloads or caches anything itself; an outer collaborator
// (WORDCHIPPER_CACHE_DIR / WORDCHIPPER_DATA_DIR aware, per spec.md §6)
// implements this against whatever storage and transport it likes.
type ResourceLoader interface {
	// LoadResourcePath returns a local path for the resource named by key,
	// trying urls in order as the loader sees fit (mirror fallback,
	// caching, hash verification, etc. are all the loader's concern).
	LoadResourcePath(key string, urls []string) (string, error)
}
