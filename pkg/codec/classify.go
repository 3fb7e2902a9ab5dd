package codec

import (
	"fmt"
	"reflect"
	"sync"
)

// fieldMeta is the cached classification of one declared field.
type fieldMeta struct {
	Name     string
	Class    FieldClass
	Token    string
	Optional bool
}

// descriptor is the cached classification of one entity type.
type descriptor struct {
	token   string
	aliases []string
	fields  []fieldMeta
}

// accepts reports whether head is a valid lead token for this entity.
func (d *descriptor) accepts(head string) bool {
	if head == d.token {
		return true
	}
	for _, a := range d.aliases {
		if head == a {
			return true
		}
	}
	return false
}

// descriptors caches one descriptor per concrete entity type. The
// closure-based bindings make classification static; the concrete type
// is used only as the cache key. The map is read-mostly after startup
// and LoadOrStore keeps concurrent first population harmless.
var descriptors sync.Map // reflect.Type -> *descriptor

// Register validates an entity type's field bindings and caches its
// classification. Self-contradictory bindings are a schema-authoring
// defect and are rejected here, never during decode.
func Register(proto Entity) error {
	_, err := descriptorFor(proto)
	return err
}

// MustRegister registers entity types and panics on a schema defect.
// Concrete schema packages call this from init so defects surface at
// program start.
func MustRegister(protos ...Entity) {
	for _, p := range protos {
		if err := Register(p); err != nil {
			panic(err)
		}
	}
}

func descriptorFor(e Entity) (*descriptor, error) {
	key := reflect.TypeOf(e)
	if d, ok := descriptors.Load(key); ok {
		return d.(*descriptor), nil
	}
	d, err := buildDescriptor(e)
	if err != nil {
		return nil, err
	}
	actual, _ := descriptors.LoadOrStore(key, d)
	return actual.(*descriptor), nil
}

func buildDescriptor(e Entity) (*descriptor, error) {
	token := e.Token()
	if token == "" {
		return nil, fmt.Errorf("entity %T has no token name: %w", e, ErrSchemaDefect)
	}

	d := &descriptor{token: token}
	if al, ok := e.(TokenAliases); ok {
		d.aliases = al.TokenAliases()
	}

	seen := make(map[string]bool)
	for _, f := range e.Fields() {
		if f.Name == "" {
			return nil, fmt.Errorf("%s: field without a name: %w", token, ErrSchemaDefect)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%s: duplicate field %q: %w", token, f.Name, ErrSchemaDefect)
		}
		seen[f.Name] = true

		class, err := Classify(f)
		if err != nil {
			return nil, fmt.Errorf("%s: field %q: %w", token, f.Name, err)
		}
		d.fields = append(d.fields, fieldMeta{
			Name:     f.Name,
			Class:    class,
			Token:    f.Token,
			Optional: f.Optional,
		})
	}
	return d, nil
}

// Classify resolves a field binding to its class, verifying that the
// installed accessors are consistent with the declared shape. A binding
// that mixes shapes (scalar and nested entity at once, a group with
// both element kinds) has no consistent resolution and is rejected.
func Classify(f Field) (FieldClass, error) {
	hasScalar := f.getScalar != nil || f.setScalar != nil
	hasChild := f.child != nil || f.ensure != nil
	hasFlag := f.getFlag != nil || f.setFlag != nil
	hasSimple := f.getSimple != nil || f.setSimple != nil
	hasGroup := f.appendNew != nil || f.appendScalar != nil

	switch f.Class {
	case ClassAtomic:
		if !hasScalar || hasChild || hasFlag || hasGroup {
			return 0, fmt.Errorf("atomic field with non-scalar accessors: %w", ErrSchemaDefect)
		}
		if f.Token != "" {
			return 0, fmt.Errorf("atomic field carries token %q: %w", f.Token, ErrSchemaDefect)
		}
	case ClassNamedValue, ClassOptionalNamedValue:
		if !hasScalar || hasChild || hasFlag || hasGroup {
			return 0, fmt.Errorf("named value with non-scalar accessors: %w", ErrSchemaDefect)
		}
		if f.Token == "" {
			return 0, fmt.Errorf("named value without a token: %w", ErrSchemaDefect)
		}
	case ClassEntity:
		if f.child == nil || hasScalar || hasFlag || hasGroup {
			return 0, fmt.Errorf("entity field with inconsistent accessors: %w", ErrSchemaDefect)
		}
	case ClassOptionalEntity:
		if f.child == nil || f.ensure == nil || f.present == nil || hasScalar || hasGroup {
			return 0, fmt.Errorf("optional entity with inconsistent accessors: %w", ErrSchemaDefect)
		}
	case ClassFlag:
		if !hasFlag || hasScalar || hasChild || hasGroup {
			return 0, fmt.Errorf("flag with inconsistent accessors: %w", ErrSchemaDefect)
		}
		if f.Token == "" {
			return 0, fmt.Errorf("flag without a token: %w", ErrSchemaDefect)
		}
	case ClassSimpleFlag:
		if !hasSimple || hasScalar || hasChild || hasGroup {
			return 0, fmt.Errorf("simple flag with inconsistent accessors: %w", ErrSchemaDefect)
		}
		if f.Token == "" {
			return 0, fmt.Errorf("simple flag without a token: %w", ErrSchemaDefect)
		}
	case ClassRepeatedGroup:
		if f.appendNew != nil && f.appendScalar != nil {
			return 0, fmt.Errorf("group is both entity- and scalar-valued: %w", ErrSchemaDefect)
		}
		if f.appendNew == nil && f.appendScalar == nil {
			return 0, fmt.Errorf("group without an element accessor: %w", ErrSchemaDefect)
		}
		if f.resetGroup == nil {
			return 0, fmt.Errorf("group without owned storage: %w", ErrSchemaDefect)
		}
		if f.appendNew != nil && f.Token == "" {
			return 0, fmt.Errorf("entity group without a token: %w", ErrSchemaDefect)
		}
	default:
		return 0, fmt.Errorf("unknown field class %d: %w", f.Class, ErrSchemaDefect)
	}
	return f.Class, nil
}
