package activity

import (
	"context"
	"fmt"

	"github.com/wonny/renthub/backend/internal/contracts"
)

// UnknownName is the placeholder used when a property or tenant id
// cannot be resolved to a display name. A resolution miss never blocks
// generation for the lease.
const UnknownName = "unknown"

// Directory is the id→name lookup table for properties and tenants,
// built from one read per repository per engine run.
type Directory struct {
	Properties map[string]string `json:"properties"`
	Tenants    map[string]string `json:"tenants"`
}

// BuildDirectory fetches the full property and tenant lists once and
// indexes them by id. Either read failing fails the build: the engine
// treats an unreachable resolver as fatal for the run.
func BuildDirectory(ctx context.Context, properties contracts.PropertyRepository, tenants contracts.TenantRepository) (*Directory, error) {
	props, err := properties.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	tens, err := tenants.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	dir := &Directory{
		Properties: make(map[string]string, len(props)),
		Tenants:    make(map[string]string, len(tens)),
	}
	for _, p := range props {
		dir.Properties[p.ID] = p.Name
	}
	for _, t := range tens {
		dir.Tenants[t.ID] = t.Name
	}

	return dir, nil
}

// PropertyName resolves a property id, falling back to the placeholder
func (d *Directory) PropertyName(id string) string {
	if name, ok := d.Properties[id]; ok && name != "" {
		return name
	}
	return UnknownName
}

// TenantName resolves an optional tenant id, falling back to the placeholder
func (d *Directory) TenantName(id *string) string {
	if id == nil {
		return UnknownName
	}
	if name, ok := d.Tenants[*id]; ok && name != "" {
		return name
	}
	return UnknownName
}

// Names returns the resolved party names for one lease
func (d *Directory) Names(lease *contracts.Lease) PartyNames {
	return PartyNames{
		Property: d.PropertyName(lease.PropertyID),
		Tenant:   d.TenantName(lease.TenantID),
	}
}
