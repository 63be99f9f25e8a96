package docid

import (
	"log/slog"
	"sort"

	"github.com/trevorprinn/XmlDocRinse/ir"
)

// TypeSource is the read-only query interface over a module's type metadata.
type TypeSource interface {
	// ExportedTypes returns the types the module exports.
	ExportedTypes() []*ir.TypeDescriptor

	// Members returns every declared member of t: instance and static,
	// public and non-public.
	Members(t *ir.TypeDescriptor) []*ir.MemberDescriptor
}

// Surface is the set of identifiers making up a module's public surface.
// It is read-only once built.
type Surface struct {
	ids map[ID]struct{}
}

// NewSurface returns a surface holding ids. It is mainly useful in tests.
func NewSurface(ids ...ID) *Surface {
	s := &Surface{ids: make(map[ID]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Contains reports whether name is an identifier of the surface. Matching is
// ordinal.
func (s *Surface) Contains(name string) bool {
	_, ok := s.ids[ID(name)]
	return ok
}

// Len returns the number of identifiers.
func (s *Surface) Len() int {
	return len(s.ids)
}

// IDs returns the identifiers in sorted order.
func (s *Surface) IDs() []ID {
	ids := make([]ID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Walker collects the public surface of a TypeSource.
type Walker struct {
	builder *Builder
	logger  *slog.Logger
}

// NewWalker creates a Walker. A nil builder renders without caching; a nil
// logger falls back to slog.Default().
func NewWalker(builder *Builder, logger *slog.Logger) *Walker {
	if builder == nil {
		builder = &Builder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{builder: builder, logger: logger}
}

// BuildSurface collects the public surface of src with an uncached Builder.
func BuildSurface(src TypeSource) *Surface {
	return NewWalker(nil, nil).Build(src)
}

// Build walks every exported type of src and returns the identifiers of the
// visible types and members.
//
// Types that are not visible are skipped along with all of their members.
// All members of a visible type are inspected whatever their declared access,
// because a non-public accessor can still decide a property's visibility.
// Nested types are descended into from their containing type; each type is
// walked at most once even if src also reports it as exported.
func (w *Walker) Build(src TypeSource) *Surface {
	run := &walk{
		Walker:  w,
		src:     src,
		surface: &Surface{ids: make(map[ID]struct{})},
		seen:    make(map[*ir.TypeDescriptor]bool),
	}
	for _, t := range src.ExportedTypes() {
		run.addType(t)
	}
	w.logger.Debug("surface built",
		slog.Int("types", run.types),
		slog.Int("identifiers", run.surface.Len()))
	return run.surface
}

// walk holds the state of one Build call.
type walk struct {
	*Walker
	src     TypeSource
	surface *Surface
	seen    map[*ir.TypeDescriptor]bool
	types   int
}

func (r *walk) addType(t *ir.TypeDescriptor) {
	if t == nil || r.seen[t] {
		return
	}
	r.seen[t] = true

	if !TypeVisible(t) {
		r.logger.Debug("type skipped", slog.String("type", t.String()))
		return
	}
	r.types++

	if id, ok := r.builder.TypeIdentifier(t); ok {
		r.add(id)
	}
	for _, m := range r.src.Members(t) {
		r.addMember(m)
	}
}

func (r *walk) addMember(m *ir.MemberDescriptor) {
	if m == nil {
		return
	}
	if id, ok := r.builder.Identifier(m); ok {
		r.add(id)
	}
	if m.Kind == ir.KindNestedType {
		r.addType(m.Type)
	}
}

func (r *walk) add(id ID) {
	r.surface.ids[id] = struct{}{}
}
