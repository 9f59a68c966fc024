package easyosc

import (
	"reflect"

	"github.com/easyosc/go-easyosc/osc"
)

// A listener binds one destination to one address. The four kinds mirror the
// destination flavors: a pointer to caller-owned storage, a named function
// compared by code pointer, an owned anonymous callable, and a method on some
// receiver object.
//
// The decode step is resolved once, at registration, into the invoke closure.
type listenerKind uint8

const (
	listenerVariable listenerKind = iota
	listenerFunc
	listenerClosure
	listenerMethod
)

type listener struct {
	kind   listenerKind
	target interface{} // the destination pointer, or the method receiver
	entry  uintptr     // code pointer for function and method listeners
	invoke func(m *osc.Message)
}

// equals implements the removal matching rules. Variables match on storage
// identity, functions on code pointer, methods on receiver plus code pointer.
// Closures never match anything, not even themselves.
func (l *listener) equals(o *listener) bool {
	if l.kind != o.kind {
		return false
	}
	switch l.kind {
	case listenerVariable:
		return l.target == o.target
	case listenerFunc:
		return l.entry == o.entry
	case listenerMethod:
		return l.target == o.target && l.entry == o.entry
	}
	return false
}

// newVariableListener resolves a destination pointer into a listener that
// assigns on every delivery. Returns nil for unsupported destination types.
func newVariableListener(dest interface{}) *listener {
	var invoke func(m *osc.Message)

	switch p := dest.(type) {
	case *bool:
		invoke = func(m *osc.Message) { *p = boolArg(m, 0) }
	case *byte:
		invoke = func(m *osc.Message) { *p = byteArg(m, 0) }
	case *int:
		invoke = func(m *osc.Message) { *p = intArg(m, 0) }
	case *int32:
		invoke = func(m *osc.Message) { *p = int32Arg(m, 0) }
	case *float32:
		invoke = func(m *osc.Message) { *p = floatArg(m, 0) }
	case *float64:
		invoke = func(m *osc.Message) { *p = doubleArg(m, 0) }
	case *string:
		invoke = func(m *osc.Message) { *p = stringArg(m, 0) }
	case *osc.Message:
		invoke = func(m *osc.Message) { *p = *m.Clone() }

	case Aggregate:
		// Catches *Vec2 and friends, and any adapted external math type.
		invoke = func(m *osc.Message) { decodeAggregate(m, 0, p) }

	case *[]bool:
		invoke = func(m *osc.Message) { *p = sliceArg(m, boolArg) }
	case *[]byte:
		invoke = func(m *osc.Message) { *p = sliceArg(m, byteArg) }
	case *[]int:
		invoke = func(m *osc.Message) { *p = sliceArg(m, intArg) }
	case *[]int32:
		invoke = func(m *osc.Message) { *p = sliceArg(m, int32Arg) }
	case *[]float32:
		invoke = func(m *osc.Message) { *p = sliceArg(m, floatArg) }
	case *[]float64:
		invoke = func(m *osc.Message) { *p = sliceArg(m, doubleArg) }
	case *[]string:
		invoke = func(m *osc.Message) { *p = sliceArg(m, stringArg) }
	case *[]Vec2:
		invoke = func(m *osc.Message) { *p = aggregateSlice[Vec2, *Vec2](m) }
	case *[]Vec3:
		invoke = func(m *osc.Message) { *p = aggregateSlice[Vec3, *Vec3](m) }
	case *[]Vec4:
		invoke = func(m *osc.Message) { *p = aggregateSlice[Vec4, *Vec4](m) }
	case *[]Mat3:
		invoke = func(m *osc.Message) { *p = aggregateSlice[Mat3, *Mat3](m) }
	case *[]Mat4:
		invoke = func(m *osc.Message) { *p = aggregateSlice[Mat4, *Mat4](m) }

	default:
		return nil
	}

	return &listener{kind: listenerVariable, target: dest, invoke: invoke}
}

// callableInvoke resolves a function value of any supported signature into an
// invoke closure. Shared by closure and named-function listeners.
func callableInvoke(fn interface{}) (func(m *osc.Message), bool) {
	switch f := fn.(type) {
	case func():
		return func(*osc.Message) { f() }, true
	case func(bool):
		return func(m *osc.Message) { f(boolArg(m, 0)) }, true
	case func(byte):
		return func(m *osc.Message) { f(byteArg(m, 0)) }, true
	case func(int):
		return func(m *osc.Message) { f(intArg(m, 0)) }, true
	case func(int32):
		return func(m *osc.Message) { f(int32Arg(m, 0)) }, true
	case func(float32):
		return func(m *osc.Message) { f(floatArg(m, 0)) }, true
	case func(float64):
		return func(m *osc.Message) { f(doubleArg(m, 0)) }, true
	case func(string):
		return func(m *osc.Message) { f(stringArg(m, 0)) }, true
	case func(*osc.Message):
		return func(m *osc.Message) { f(messageArg(m, 0)) }, true

	case func(Vec2):
		return func(m *osc.Message) {
			var v Vec2
			decodeAggregate(m, 0, &v)
			f(v)
		}, true
	case func(Vec3):
		return func(m *osc.Message) {
			var v Vec3
			decodeAggregate(m, 0, &v)
			f(v)
		}, true
	case func(Vec4):
		return func(m *osc.Message) {
			var v Vec4
			decodeAggregate(m, 0, &v)
			f(v)
		}, true
	case func(Mat3):
		return func(m *osc.Message) {
			var v Mat3
			decodeAggregate(m, 0, &v)
			f(v)
		}, true
	case func(Mat4):
		return func(m *osc.Message) {
			var v Mat4
			decodeAggregate(m, 0, &v)
			f(v)
		}, true

	case func([]bool):
		return func(m *osc.Message) { f(sliceArg(m, boolArg)) }, true
	case func([]byte):
		return func(m *osc.Message) { f(sliceArg(m, byteArg)) }, true
	case func([]int):
		return func(m *osc.Message) { f(sliceArg(m, intArg)) }, true
	case func([]int32):
		return func(m *osc.Message) { f(sliceArg(m, int32Arg)) }, true
	case func([]float32):
		return func(m *osc.Message) { f(sliceArg(m, floatArg)) }, true
	case func([]float64):
		return func(m *osc.Message) { f(sliceArg(m, doubleArg)) }, true
	case func([]string):
		return func(m *osc.Message) { f(sliceArg(m, stringArg)) }, true
	case func([]Vec2):
		return func(m *osc.Message) { f(aggregateSlice[Vec2, *Vec2](m)) }, true
	case func([]Vec3):
		return func(m *osc.Message) { f(aggregateSlice[Vec3, *Vec3](m)) }, true
	case func([]Vec4):
		return func(m *osc.Message) { f(aggregateSlice[Vec4, *Vec4](m)) }, true
	case func([]Mat3):
		return func(m *osc.Message) { f(aggregateSlice[Mat3, *Mat3](m)) }, true
	case func([]Mat4):
		return func(m *osc.Message) { f(aggregateSlice[Mat4, *Mat4](m)) }, true
	}

	return nil, false
}

// funcEntry returns the code pointer identifying a function value, or 0 when
// the value is not a function.
func funcEntry(fn interface{}) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return 0
	}
	return v.Pointer()
}

// newClosureListener wraps an owned callable. Closures cannot be removed by
// identity, only via RemoveClosures.
func newClosureListener(fn interface{}) *listener {
	invoke, ok := callableInvoke(fn)
	if !ok {
		return nil
	}
	return &listener{kind: listenerClosure, invoke: invoke}
}

// newFuncListener wraps a named function; identity for removal is its code
// pointer, so distinct closures built from the same literal should use Add
// instead.
func newFuncListener(fn interface{}) *listener {
	invoke, ok := callableInvoke(fn)
	if !ok {
		return nil
	}
	return &listener{
		kind:   listenerFunc,
		entry:  funcEntry(fn),
		invoke: invoke,
	}
}

var (
	aggregateType = reflect.TypeOf((*Aggregate)(nil)).Elem()
	messageType   = reflect.TypeOf((*osc.Message)(nil))
)

// decoderFor resolves a reflect type into a decoder producing values of that
// type. Only the method-listener path pays for reflection; everything else is
// resolved through the static type switches above.
func decoderFor(t reflect.Type) (func(m *osc.Message) reflect.Value, bool) {
	switch t {
	case reflect.TypeOf(false):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(boolArg(m, 0)) }, true
	case reflect.TypeOf(byte(0)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(byteArg(m, 0)) }, true
	case reflect.TypeOf(int(0)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(intArg(m, 0)) }, true
	case reflect.TypeOf(int32(0)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(int32Arg(m, 0)) }, true
	case reflect.TypeOf(float32(0)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(floatArg(m, 0)) }, true
	case reflect.TypeOf(float64(0)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(doubleArg(m, 0)) }, true
	case reflect.TypeOf(""):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(stringArg(m, 0)) }, true
	case messageType:
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(messageArg(m, 0)) }, true

	case reflect.TypeOf([]bool(nil)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(sliceArg(m, boolArg)) }, true
	case reflect.TypeOf([]byte(nil)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(sliceArg(m, byteArg)) }, true
	case reflect.TypeOf([]int(nil)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(sliceArg(m, intArg)) }, true
	case reflect.TypeOf([]int32(nil)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(sliceArg(m, int32Arg)) }, true
	case reflect.TypeOf([]float32(nil)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(sliceArg(m, floatArg)) }, true
	case reflect.TypeOf([]float64(nil)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(sliceArg(m, doubleArg)) }, true
	case reflect.TypeOf([]string(nil)):
		return func(m *osc.Message) reflect.Value { return reflect.ValueOf(sliceArg(m, stringArg)) }, true
	}

	if reflect.PointerTo(t).Implements(aggregateType) {
		return func(m *osc.Message) reflect.Value {
			v := reflect.New(t)
			decodeAggregate(m, 0, v.Interface().(Aggregate))
			return v.Elem()
		}, true
	}

	if t.Kind() == reflect.Slice && reflect.PointerTo(t.Elem()).Implements(aggregateType) {
		elem := t.Elem()
		arity := reflect.New(elem).Interface().(Aggregate).NumComponents()
		return func(m *osc.Message) reflect.Value {
			n := len(m.Arguments) / arity
			s := reflect.MakeSlice(t, n, n)
			for i := 0; i < n; i++ {
				decodeAggregate(m, i*arity, s.Index(i).Addr().Interface().(Aggregate))
			}
			return s
		}, true
	}

	return nil, false
}

// newMethodListener binds a receiver object and a method expression like
// (*Player).Play. The method takes the receiver and at most one decodable
// argument. Returns nil when the pair doesn't bind.
func newMethodListener(recv, method interface{}) *listener {
	if recv == nil {
		return nil
	}

	mv := reflect.ValueOf(method)
	if mv.Kind() != reflect.Func {
		return nil
	}

	mt := mv.Type()
	rv := reflect.ValueOf(recv)
	if mt.NumIn() < 1 || mt.NumIn() > 2 || !rv.Type().AssignableTo(mt.In(0)) {
		return nil
	}

	var invoke func(m *osc.Message)
	if mt.NumIn() == 1 {
		invoke = func(*osc.Message) { mv.Call([]reflect.Value{rv}) }
	} else {
		dec, ok := decoderFor(mt.In(1))
		if !ok {
			return nil
		}
		invoke = func(m *osc.Message) { mv.Call([]reflect.Value{rv, dec(m)}) }
	}

	return &listener{
		kind:   listenerMethod,
		target: recv,
		entry:  mv.Pointer(),
		invoke: invoke,
	}
}
