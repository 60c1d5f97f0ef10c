package atlas

import (
	"encoding/json"
	"maps"
	"reflect"
	"slices"

	"github.com/rohanthewiz/atlas/consts"
	"github.com/vmihailenco/msgpack/v5"
)

// Attributes maps attribute names to values.
type Attributes map[string]any

// Accessor reads and writes one attribute of a model.
// The synthesized ones delegate to Model.Get and Model.Set.
type Accessor struct {
	Name string
	Get  func(m *Model) any
	Set  func(m *Model, value any)
}

// ModelType is a model definition: its defaults and the accessor table built from them.
type ModelType struct {
	name      string
	parent    *ModelType
	defaults  Attributes
	accessors map[string]Accessor
}

// DefineModel creates a model type. Every name in defaults except "id" gets
// an accessor. The table is built here, once, and defining the same name and
// defaults again yields an equivalent type. Nil defaults give an empty table.
func DefineModel(name string, defaults Attributes) *ModelType {
	return (*ModelType)(nil).Extend(name, defaults)
}

// Extend defines a child type inheriting the defaults and accessors of t,
// including overrides. Defaults given here take precedence.
func (t *ModelType) Extend(name string, defaults Attributes) *ModelType {
	child := &ModelType{
		name:      name,
		parent:    t,
		defaults:  make(Attributes, len(defaults)),
		accessors: make(map[string]Accessor, len(defaults)),
	}

	if t != nil {
		maps.Copy(child.defaults, t.defaults)
		maps.Copy(child.accessors, t.accessors)
	}
	maps.Copy(child.defaults, defaults)

	for attr := range defaults {
		if attr == consts.IDAttribute {
			continue
		}
		child.accessors[attr] = synthesize(attr)
	}
	return child
}

func synthesize(attr string) Accessor {
	return Accessor{
		Name: attr,
		Get:  func(m *Model) any { return m.Get(attr) },
		Set:  func(m *Model, value any) { m.Set(Attributes{attr: value}) },
	}
}

// Name returns the type name.
func (t *ModelType) Name() string {
	return t.name
}

// Parent returns the type t extends, nil for a base type.
func (t *ModelType) Parent() *ModelType {
	return t.parent
}

// Defaults returns a copy of the type defaults.
func (t *ModelType) Defaults() Attributes {
	return maps.Clone(t.defaults)
}

// Accessor returns the accessor for attr.
func (t *ModelType) Accessor(attr string) (Accessor, bool) {
	acc, ok := t.accessors[attr]
	return acc, ok
}

// Accessors lists the accessor table sorted by attribute name.
func (t *ModelType) Accessors() []Accessor {
	names := slices.Sorted(maps.Keys(t.accessors))
	list := make([]Accessor, 0, len(names))
	for _, name := range names {
		list = append(list, t.accessors[name])
	}
	return list
}

// Override replaces or adds the accessor for attr. Nil Get or Set fall back to the synthesized ones.
func (t *ModelType) Override(attr string, acc Accessor) {
	base := synthesize(attr)
	acc.Name = attr
	if acc.Get == nil {
		acc.Get = base.Get
	}
	if acc.Set == nil {
		acc.Set = base.Set
	}
	t.accessors[attr] = acc
}

// New creates a model seeded with the type defaults, then attrs.
func (t *ModelType) New(attrs Attributes) *Model {
	m := &Model{typ: t, attrs: make(Attributes, len(t.defaults)+len(attrs))}
	maps.Copy(m.attrs, t.defaults)
	maps.Copy(m.attrs, attrs)
	return m
}

var untyped = DefineModel("", nil)

// Model is an attribute bag that announces its changes.
// Not safe for concurrent use.
type Model struct {
	Events
	typ   *ModelType
	attrs Attributes
}

// NewModel creates a model without a type, and so without accessors.
func NewModel(attrs Attributes) *Model {
	return untyped.New(attrs)
}

// Type returns the model type.
func (m *Model) Type() *ModelType {
	return m.typ
}

// Get returns the value of attr, nil when unset.
func (m *Model) Get(attr string) any {
	return m.attrs[attr]
}

// Has reports whether attr is set to a non-nil value.
func (m *Model) Has(attr string) bool {
	return m.attrs[attr] != nil
}

// ID returns the identity attribute.
func (m *Model) ID() any {
	return m.attrs[consts.IDAttribute]
}

// Attributes returns a copy of all attributes.
func (m *Model) Attributes() Attributes {
	return maps.Clone(m.attrs)
}

// Set updates attributes. Unless silent, "change:<attr>" fires for each
// changed attribute (in name order) with (model, value), then "change" with (model).
func (m *Model) Set(attrs Attributes, opts ...SetOptions) *Model {
	if m.attrs == nil {
		m.attrs = Attributes{}
	}

	var changed []string
	for attr, value := range attrs {
		current, ok := m.attrs[attr]
		if !ok || !reflect.DeepEqual(current, value) {
			changed = append(changed, attr)
		}
		m.attrs[attr] = value
	}

	if len(changed) == 0 || (len(opts) > 0 && opts[0].Silent) {
		return m
	}

	slices.Sort(changed)
	for _, attr := range changed {
		m.Trigger(consts.EventChangePrefix+attr, m, m.attrs[attr])
	}
	m.Trigger(consts.EventChange, m)
	return m
}

// Unset removes attr, announcing it like Set does.
func (m *Model) Unset(attr string, opts ...SetOptions) *Model {
	if _, ok := m.attrs[attr]; !ok {
		return m
	}
	delete(m.attrs, attr)

	if len(opts) > 0 && opts[0].Silent {
		return m
	}
	m.Trigger(consts.EventChangePrefix+attr, m, nil)
	m.Trigger(consts.EventChange, m)
	return m
}

// Prop reads attr through the type accessor table.
// ok is false when the type has no accessor for attr.
func (m *Model) Prop(attr string) (value any, ok bool) {
	acc, ok := m.accessor(attr)
	if !ok {
		return nil, false
	}
	return acc.Get(m), true
}

// SetProp writes attr through the type accessor table.
// It reports false, writing nothing, when the type has no accessor for attr.
func (m *Model) SetProp(attr string, value any) bool {
	acc, ok := m.accessor(attr)
	if !ok {
		return false
	}
	acc.Set(m, value)
	return true
}

func (m *Model) accessor(attr string) (Accessor, bool) {
	if m.typ == nil {
		return Accessor{}, false
	}
	return m.typ.Accessor(attr)
}

// MarshalJSON encodes the attributes as a JSON object.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.attrs)
}

// EncodeMsgpack encodes the attributes as a msgpack map.
func (m *Model) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(map[string]any(m.attrs))
}

// DecodeMsgpack replaces the attributes with a decoded msgpack map. No events fire.
func (m *Model) DecodeMsgpack(dec *msgpack.Decoder) error {
	var attrs map[string]any
	if err := dec.Decode(&attrs); err != nil {
		return err
	}
	m.attrs = attrs
	if m.attrs == nil {
		m.attrs = Attributes{}
	}
	if m.typ == nil {
		m.typ = untyped
	}
	return nil
}
