package orderedmap

// Element is a struct holding a key-value pair as well as the links to the previous and next element.
type Element[K comparable, V any] struct {
	key   K
	value V
	prev  *Element[K, V]
	next  *Element[K, V]
}
