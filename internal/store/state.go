package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/lingua/ent"
	"github.com/abhisek/lingua/ent/staterecord"
)

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Save(ctx context.Context, name string, value any) error {
	dataMap, err := valueToMap(value)
	if err != nil {
		return fmt.Errorf("marshal state %q: %w", name, err)
	}

	n, err := r.client.StateRecord.Update().
		Where(staterecord.Name(name)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update state %q: %w", name, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.StateRecord.Create().
		SetName(name).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create state %q: %w", name, err)
	}
	return nil
}

func (r *stateRepo) Load(ctx context.Context, name string, out any) (bool, error) {
	rec, err := r.client.StateRecord.Query().
		Where(staterecord.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query state %q: %w", name, err)
	}

	if err := roundTrip(rec.Data, out); err != nil {
		return false, fmt.Errorf("unmarshal state %q: %w", name, err)
	}
	return true, nil
}

func (r *stateRepo) Delete(ctx context.Context, name string) error {
	_, err := r.client.StateRecord.Delete().
		Where(staterecord.Name(name)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete state %q: %w", name, err)
	}
	return nil
}

// valueToMap converts an arbitrary value to map[string]any for ent JSON storage.
func valueToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
