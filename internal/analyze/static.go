package analyze

import "fmt"

// StaticProvider is a Provider over a fixed set of descriptors.
type StaticProvider struct {
	types map[TypeID]*TypeDescriptor
}

// NewStaticProvider creates a StaticProvider holding descs.
func NewStaticProvider(descs ...*TypeDescriptor) *StaticProvider {
	p := &StaticProvider{types: make(map[TypeID]*TypeDescriptor, len(descs))}
	for _, d := range descs {
		p.Add(d)
	}

	return p
}

// Add registers desc under its ID, replacing any previous entry.
func (p *StaticProvider) Add(desc *TypeDescriptor) {
	for i := range desc.Properties {
		if desc.Properties[i].Owner == (TypeID{}) {
			desc.Properties[i].Owner = desc.ID
		}
	}

	p.types[desc.ID] = desc
}

// Describe implements Provider.
func (p *StaticProvider) Describe(id TypeID) (*TypeDescriptor, error) {
	desc, ok := p.types[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	return desc, nil
}
