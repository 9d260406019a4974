package vec

import "reflect"

// Dropper is implemented by element types that must be destroyed explicitly.
//
// A container calls Drop exactly once for every element it destroys itself
// (Clear, Truncate, Set, Release, IntoIter.Close). Elements moved out to the
// caller (Pop, Remove, SwapRemove, Replace, IntoIter.Next) are not dropped.
type Dropper interface {
	Drop()
}

var dropperType = reflect.TypeFor[Dropper]()

// dropFuncFor returns the drop glue for T, or nil if T never needs dropping.
func dropFuncFor[T any]() func(*T) {
	t := reflect.TypeFor[T]()
	switch {
	case t.Kind() == reflect.Interface:
		return func(p *T) {
			if d, ok := any(*p).(Dropper); ok {
				d.Drop()
			}
		}
	case reflect.PointerTo(t).Implements(dropperType):
		return func(p *T) {
			any(p).(Dropper).Drop()
		}
	case t.Implements(dropperType):
		// Pointer element type with a pointer-receiver Drop.
		return func(p *T) {
			if reflect.ValueOf(p).Elem().IsNil() {
				return
			}
			any(*p).(Dropper).Drop()
		}
	default:
		return nil
	}
}

// dropRange drops s[i] in order and zeroes each slot.
func dropRange[T any](drop func(*T), s []T) {
	if drop != nil {
		for i := range s {
			drop(&s[i])
		}
	}
	clear(s)
}

// dropZeroSized drops n synthesized values of a zero-sized T.
func dropZeroSized[T any](drop func(*T), n int) {
	if drop == nil {
		return
	}
	var zero T
	for ; n > 0; n-- {
		drop(&zero)
	}
}
