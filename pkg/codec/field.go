package codec

// Entity is a schema-defined composite type. Token returns the lead
// token its list form always starts with; Fields returns the ordered
// field bindings for this instance. Fields must be deterministic for a
// given concrete type: same order, same classes, same tokens.
type Entity interface {
	Token() string
	Fields() []Field
}

// TokenAliases is implemented by entities that accept alternate lead
// tokens from older file formats. The canonical token is still the one
// returned by Token and the only one ever written.
type TokenAliases interface {
	TokenAliases() []string
}

// FieldClass is the resolved shape of one declared field.
type FieldClass int

const (
	// ClassAtomic is a bare positional scalar with no wrapping token.
	ClassAtomic FieldClass = iota
	// ClassNamedValue is a scalar wrapped as (token value).
	ClassNamedValue
	// ClassOptionalNamedValue is a NamedValue that may be entirely
	// absent from the input and is omitted on encode when unset.
	ClassOptionalNamedValue
	// ClassEntity is a required nested entity.
	ClassEntity
	// ClassOptionalEntity is a nested entity that may be absent.
	ClassOptionalEntity
	// ClassFlag is a presence marker with an optional auxiliary scalar.
	ClassFlag
	// ClassSimpleFlag is a bare presence symbol.
	ClassSimpleFlag
	// ClassRepeatedGroup is zero or more homogeneous occurrences
	// sharing one token name.
	ClassRepeatedGroup
)

// String returns the class name.
func (c FieldClass) String() string {
	switch c {
	case ClassAtomic:
		return "atomic"
	case ClassNamedValue:
		return "named-value"
	case ClassOptionalNamedValue:
		return "optional-named-value"
	case ClassEntity:
		return "entity"
	case ClassOptionalEntity:
		return "optional-entity"
	case ClassFlag:
		return "flag"
	case ClassSimpleFlag:
		return "simple-flag"
	case ClassRepeatedGroup:
		return "repeated-group"
	default:
		return "unknown"
	}
}

// ScalarValue constrains the Go types a scalar field may use.
type ScalarValue interface {
	string | int | float64 | bool
}

// childPtr constrains optional-entity and group bindings to pointer
// types whose pointee is an entity.
type childPtr[T any] interface {
	*T
	Entity
}

// Field is one bound field of an entity instance. Instances are built
// with the constructor helpers below; the closures tie the binding to
// the owning struct's storage so the engine reads and writes fields
// without introspection.
type Field struct {
	Name     string
	Class    FieldClass
	Token    string
	Optional bool

	// asSymbol makes string scalars encode as bare symbols rather than
	// quoted strings (pad types, via types, pin styles).
	asSymbol bool

	getScalar func() (any, bool)
	setScalar func(any) error

	child   func() Entity
	ensure  func() Entity
	present func() bool

	getFlag   func() Flag
	setFlag   func(Flag)
	getSimple func() bool
	setSimple func(bool)

	appendNew    func() Entity
	eachChild    func(func(Entity) error) error
	appendScalar func(any) error
	eachScalar   func(func(any))
	resetGroup   func()
}

// AsSymbol marks a string-valued field to encode as a bare symbol.
func (f Field) AsSymbol() Field {
	f.asSymbol = true
	return f
}

// Scalar binds a required bare positional scalar.
func Scalar[T ScalarValue](name string, ref *T) Field {
	return Field{
		Name:  name,
		Class: ClassAtomic,
		getScalar: func() (any, bool) {
			return *ref, true
		},
		setScalar: func(raw any) error {
			v, err := convertScalar[T](raw)
			if err != nil {
				return err
			}
			*ref = v
			return nil
		},
	}
}

// ScalarOpt binds an optional bare positional scalar. A nil pointer is
// absent and emits nothing.
func ScalarOpt[T ScalarValue](name string, ref **T) Field {
	return Field{
		Name:     name,
		Class:    ClassAtomic,
		Optional: true,
		getScalar: func() (any, bool) {
			if *ref == nil {
				return nil, false
			}
			return **ref, true
		},
		setScalar: func(raw any) error {
			v, err := convertScalar[T](raw)
			if err != nil {
				return err
			}
			*ref = &v
			return nil
		},
	}
}

// Named binds a required (token value) scalar wrapper.
func Named[T ScalarValue](name, token string, ref *T) Field {
	f := Scalar(name, ref)
	f.Class = ClassNamedValue
	f.Token = token
	return f
}

// NamedOpt binds an optional (token value) scalar wrapper. A nil
// pointer is absent and emits nothing.
func NamedOpt[T ScalarValue](name, token string, ref **T) Field {
	f := ScalarOpt(name, ref)
	f.Class = ClassOptionalNamedValue
	f.Token = token
	f.Optional = true
	return f
}

// Child binds a required nested entity. The bound value is always
// present; when the input lacks the token the default-constructed
// instance is kept.
func Child(name string, ref Entity) Field {
	return Field{
		Name:  name,
		Class: ClassEntity,
		Token: ref.Token(),
		child: func() Entity { return ref },
	}
}

// ChildOpt binds an optional nested entity. The pointer is allocated
// only when the token is found; nil is absent and emits nothing.
func ChildOpt[T any, PT childPtr[T]](name string, ref *PT) Field {
	token := PT(new(T)).Token()
	return Field{
		Name:     name,
		Class:    ClassOptionalEntity,
		Token:    token,
		Optional: true,
		present:  func() bool { return *ref != nil },
		ensure: func() Entity {
			if *ref == nil {
				*ref = PT(new(T))
			}
			return *ref
		},
		child: func() Entity {
			if *ref == nil {
				return nil
			}
			return *ref
		},
	}
}

// FlagField binds a presence-or-presence+value marker.
func FlagField(name, token string, ref *Flag) Field {
	return Field{
		Name:     name,
		Class:    ClassFlag,
		Token:    token,
		Optional: true,
		getFlag:  func() Flag { return *ref },
		setFlag:  func(f Flag) { *ref = f },
	}
}

// SimpleFlagField binds a bare presence symbol.
func SimpleFlagField(name, token string, ref *SimpleFlag) Field {
	return Field{
		Name:      name,
		Class:     ClassSimpleFlag,
		Token:     token,
		Optional:  true,
		getSimple: func() bool { return ref.Present },
		setSimple: func(v bool) { ref.Present = v },
	}
}

// Group binds zero or more nested entities sharing one token name.
// Decode replaces the slice; every instance owns its own storage.
func Group[T any, PT childPtr[T]](name string, ref *[]PT) Field {
	token := PT(new(T)).Token()
	return Field{
		Name:     name,
		Class:    ClassRepeatedGroup,
		Token:    token,
		Optional: true,
		appendNew: func() Entity {
			e := PT(new(T))
			*ref = append(*ref, e)
			return e
		},
		eachChild: func(fn func(Entity) error) error {
			for _, e := range *ref {
				if e == nil {
					return errNilGroupEntry
				}
				if err := fn(e); err != nil {
					return err
				}
			}
			return nil
		},
		resetGroup: func() { *ref = nil },
	}
}

// ScalarGroup binds zero or more (token value) wrappers collected into
// a slice, preserving input order.
func ScalarGroup[T ScalarValue](name, token string, ref *[]T) Field {
	return Field{
		Name:     name,
		Class:    ClassRepeatedGroup,
		Token:    token,
		Optional: true,
		appendScalar: func(raw any) error {
			v, err := convertScalar[T](raw)
			if err != nil {
				return err
			}
			*ref = append(*ref, v)
			return nil
		},
		eachScalar: func(fn func(any)) {
			for _, v := range *ref {
				fn(v)
			}
		},
		resetGroup: func() { *ref = nil },
	}
}

// RestScalars binds every remaining unconsumed bare atom, in input
// order. Layer sets such as (layers "F.Cu" "B.Cu") use this shape.
func RestScalars[T ScalarValue](name string, ref *[]T) Field {
	f := ScalarGroup[T](name, "", ref)
	return f
}
