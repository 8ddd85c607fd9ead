package par

import "sort"

// Registry is the bidirectional mapping between human-readable
// primitive type names and opaque numeric labels (spec §4.1). Label
// zero is reserved for "unlabelled"; the first allocated label is 1.
//
// The forward map (label → canonical name) is one-to-one. The reverse
// map (name → label) is many-to-one: aliases add extra reverse
// bindings without allocating a new label.
type Registry struct {
	forward map[uint32]string
	reverse map[string]uint32
	next    uint32
}

// NewRegistry returns an empty registry. Call Bootstrap to populate it
// with Table D before building the device graph (spec §4.3 step 1).
func NewRegistry() *Registry {
	return &Registry{
		forward: make(map[uint32]string),
		reverse: make(map[string]uint32),
		next:    1,
	}
}

// Allocate returns the existing label for canonicalName if already
// registered, otherwise allocates the next integer and records both
// directions.
func (r *Registry) Allocate(canonicalName string) uint32 {
	if label, ok := r.reverse[canonicalName]; ok {
		return label
	}
	label := r.next
	r.next++
	r.forward[label] = canonicalName
	r.reverse[canonicalName] = label
	return label
}

// Alias adds an additional reverse binding name → label without
// allocating a new label or touching the forward map.
func (r *Registry) Alias(name string, label uint32) {
	r.reverse[name] = label
}

// Resolve performs a reverse lookup: canonical names first, then
// aliases (the reverse map holds both, aliases are simply additional
// entries, so this is a single map lookup in practice).
func (r *Registry) Resolve(name string) (uint32, bool) {
	label, ok := r.reverse[name]
	return label, ok
}

// CanonicalName returns the one canonical name for a label (forward
// lookup). Used for human-readable placer logging (spec §6).
func (r *Registry) CanonicalName(label uint32) (string, bool) {
	name, ok := r.forward[label]
	return name, ok
}

// LabelEntry is one row of Registry.Entries: a label, its one
// canonical name, and any additional alias names that resolve to it.
type LabelEntry struct {
	Label     uint32
	Canonical string
	Aliases   []string
}

// Entries returns every allocated label in ascending label order, for
// CLI listing (`gp4par labels list`). Not used by graph construction
// itself.
func (r *Registry) Entries() []LabelEntry {
	aliasesByLabel := make(map[uint32][]string)
	for name, label := range r.reverse {
		if name != r.forward[label] {
			aliasesByLabel[label] = append(aliasesByLabel[label], name)
		}
	}

	out := make([]LabelEntry, 0, len(r.forward))
	for label, canonical := range r.forward {
		aliases := aliasesByLabel[label]
		sort.Strings(aliases)
		out = append(out, LabelEntry{Label: label, Canonical: canonical, Aliases: aliases})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Bootstrap allocates the Table D canonical labels in spec order and
// installs the Table D aliases. Idempotent: calling it twice on the
// same registry re-resolves the same labels rather than allocating new
// ones, since Allocate itself is idempotent per name.
func (r *Registry) Bootstrap() {
	for _, name := range canonicalPrimitiveNames {
		r.Allocate(name)
	}
	for alias, canonical := range primitiveAliases {
		label, ok := r.reverse[canonical]
		if !ok {
			label = r.Allocate(canonical)
		}
		r.Alias(alias, label)
	}
}
