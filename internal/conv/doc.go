// Package conv provides overflow-checked integer arithmetic and conversions.
//
// Capacity and layout computations must never wrap silently: a wrapped size
// turns into a tiny allocation followed by out-of-bounds writes. Every helper
// here reports overflow instead of wrapping.
//
// Use cases:
//   - Computing element capacities (len + additional, cap * 2)
//   - Computing byte sizes (n * elemSize)
//   - Converting byte sizes to the int64 weights used by semaphores
package conv
