package types

import (
	"log/slog"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/streamtype/ilerr"
	"github.com/cottand/streamtype/internal/log"
)

// Thunk builds a new term each time it is called
type Thunk func() *Type

// Registry maps type names to the terms they stand for. Dotted names extend
// the type of their root with fields: registering "a.b" makes values of type
// "a" expose a field "b".
//
// The table itself is immutable and replaced on every registration, but the
// Registry is not safe for concurrent registration.
type Registry struct {
	types  *immutable.SortedMap[string, Thunk]
	logger *slog.Logger
}

func NewRegistry() *Registry {
	return &Registry{
		types:  immutable.NewSortedMap[string, Thunk](nil),
		logger: log.For("registry"),
	}
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, name := range groundNames {
		r.Register(name, func() *Type { return MakeGround(name) })
	}
	return r
}

// DefaultRegistry is the process-wide registry, which knows the ground types
func DefaultRegistry() *Registry { return defaultRegistry }

// RegisterType registers in the DefaultRegistry
func RegisterType(name string, thunk Thunk) { defaultRegistry.Register(name, thunk) }

// FindType looks up in the DefaultRegistry
func FindType(name string) (Thunk, bool) { return defaultRegistry.Find(name) }

func (r *Registry) Register(name string, thunk Thunk) {
	r.RegisterWithDoc(name, "", thunk)
}

// RegisterWithDoc registers thunk under name. For a plain name, any previous
// entry is replaced. For a dotted name "root.a.b", the entry of root is
// replaced by one which builds the previous root type (unit if there was none)
// and adds the path a.b to it, b being a field of type thunk() documented by
// doc. Fields missing along the path are created with type unit.
func (r *Registry) RegisterWithDoc(name string, doc string, thunk Thunk) {
	root, path, dotted := strings.Cut(name, ".")
	if !dotted {
		r.types = r.types.Set(name, thunk)
		r.logger.Debug("registered type", "name", name)
		return
	}
	previous, ok := r.types.Get(root)
	if !ok {
		previous = MakeUnit
	}
	segments := SplitPath(path)
	r.types = r.types.Set(root, func() *Type {
		return attachPath(previous(), segments, doc, thunk)
	})
	r.logger.Debug("registered type field", "root", root, "path", path, "extends", ok)
}

func attachPath(base *Type, segments []string, doc string, leaf Thunk) *Type {
	name := segments[0]
	if len(segments) == 1 {
		return AddMeth(base, Method{Name: name, Scheme: Mono(leaf()), Doc: doc})
	}
	field, ok := findMeth(base, name)
	if !ok {
		field = Method{Name: name, Scheme: Mono(MakeUnit())}
	}
	field.Scheme = Scheme{
		Vars: field.Scheme.Vars,
		Type: attachPath(field.Scheme.Type, segments[1:], doc, leaf),
	}
	return AddMeth(base, field)
}

// Find returns the thunk registered under a top-level name
func (r *Registry) Find(name string) (Thunk, bool) {
	return r.types.Get(name)
}

// Materialize builds the type registered under name
func (r *Registry) Materialize(name string) (*Type, error) {
	thunk, ok := r.Find(name)
	if !ok {
		return nil, ilerr.New(ilerr.NewNotFound{Name: name, Where: "type"})
	}
	return thunk(), nil
}

// Names returns the registered top-level names in order
func (r *Registry) Names() []string {
	names := make([]string, 0, r.types.Len())
	itr := r.types.Iterator()
	for !itr.Done() {
		name, _, _ := itr.Next()
		names = append(names, name)
	}
	return names
}
