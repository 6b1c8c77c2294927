package module

import "reflect"

// PortsOf extracts T from m.Ports(), either directly or from an exported field of a port struct
func PortsOf[T any](m Module) (t T, ok bool) {
	p := m.Ports()
	if p == nil {
		return t, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return t, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return t, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return t, false
}

// MustPortsOf is PortsOf that panics naming the module
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	panic("module: requested port not found on module " + m.Name())
}
