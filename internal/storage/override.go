package storage

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// OverrideKind tags an Override
type OverrideKind string

// Override kinds
const (
	OverrideUpsert    OverrideKind = "upsert"
	OverrideTombstone OverrideKind = "tombstone"
)

// Override replaces or deletes a baseline crop. Exactly one of the two
// shapes is meaningful: Upsert carries Crop, Tombstone carries only ID.
type Override struct {
	Kind OverrideKind
	ID   string
	Crop domain.Crop
}

// Upsert returns an override that replaces the baseline crop with the same id
func Upsert(c domain.Crop) Override {
	return Override{Kind: OverrideUpsert, ID: c.ID, Crop: c}
}

// Tombstone returns an override that removes the baseline crop with id
func Tombstone(id string) Override {
	return Override{Kind: OverrideTombstone, ID: id}
}

type overrideRecord struct {
	Kind OverrideKind `json:"kind"`
	ID   string       `json:"id"`
	Crop *domain.Crop `json:"crop,omitempty"`
}

// MarshalJSON encodes the override as {"kind", "id", "crop"?}
func (o Override) MarshalJSON() ([]byte, error) {
	rec := overrideRecord{Kind: o.Kind, ID: o.ID}
	if o.Kind == OverrideUpsert {
		c := o.Crop
		rec.Crop = &c
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes the tagged form
func (o *Override) UnmarshalJSON(data []byte) error {
	var rec overrideRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	switch rec.Kind {
	case OverrideUpsert:
		if rec.Crop == nil {
			return fmt.Errorf("upsert override %q has no crop", rec.ID)
		}
		*o = Upsert(*rec.Crop)
		if o.ID == "" {
			o.ID = rec.ID
			o.Crop.ID = rec.ID
		}
	case OverrideTombstone:
		*o = Tombstone(rec.ID)
	default:
		return fmt.Errorf("unknown override kind %q", rec.Kind)
	}
	return nil
}

// Merge builds the crop collection: baseline in order with overrides applied
// by id, then every user-created crop. Upserts for ids absent from the
// baseline are ignored. The last override for an id wins.
func Merge(baseline []domain.Crop, overrides []Override, user []domain.Crop) []domain.Crop {
	latest := make(map[string]Override, len(overrides))
	for _, o := range overrides {
		latest[o.ID] = o
	}

	out := make([]domain.Crop, 0, len(baseline)+len(user))
	for _, c := range baseline {
		o, ok := latest[c.ID]
		switch {
		case !ok:
			out = append(out, c)
		case o.Kind == OverrideUpsert:
			o.Crop.ID = c.ID
			out = append(out, o.Crop)
		}
	}
	return append(out, user...)
}

// SetOverride replaces any existing override for the same id
func SetOverride(overrides []Override, o Override) []Override {
	for i := range overrides {
		if overrides[i].ID == o.ID {
			overrides[i] = o
			return overrides
		}
	}
	return append(overrides, o)
}
