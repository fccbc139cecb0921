package alloc

import "reflect"

// pointerFree reports whether values of t can be stored outside the Go heap
// without hiding references from the collector. Aggregates are walked
// recursively; anything the collector would need to trace (or that carries a
// hidden pointer, like strings and interfaces) disqualifies the type.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// String, Slice, Map, Pointer, Interface, Func, Chan, UnsafePointer.
		return false
	}
}
