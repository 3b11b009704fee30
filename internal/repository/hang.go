package repository

import (
	"context"
	"errors"

	"github.com/forgo/hangs/internal/database"
	"github.com/forgo/hangs/internal/model"
)

// HangRepository handles hang data access
type HangRepository struct {
	db database.Database
}

// NewHangRepository creates a new hang repository
func NewHangRepository(db database.Database) *HangRepository {
	return &HangRepository{db: db}
}

// List returns every hang, oldest first
func (r *HangRepository) List(ctx context.Context) ([]*model.Hang, error) {
	query := `SELECT * FROM hang ORDER BY createdAt ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows, ok := extractQueryResults(result)
	if !ok && len(result) > 0 {
		return nil, errUnexpectedResult
	}
	hangs := make([]*model.Hang, 0, len(rows))
	for _, row := range rows {
		data, ok := plainValue(row).(map[string]interface{})
		if !ok {
			return nil, errUnexpectedResult
		}
		hangs = append(hangs, parseHang(data))
	}
	return hangs, nil
}

// Get retrieves a hang by key, returning nil when it does not exist
func (r *HangRepository) Get(ctx context.Context, id string) (*model.Hang, error) {
	query := `SELECT * FROM $id`
	vars := map[string]interface{}{"id": recordID(model.HangTable, id)}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return hangFromResult(result)
}

// Create stores a new hang and fills in its key and timestamps
func (r *HangRepository) Create(ctx context.Context, hang *model.Hang) error {
	query := `CREATE hang CONTENT $content`
	vars := map[string]interface{}{
		"content": map[string]interface{}{
			model.FieldTitle:       hang.Title,
			model.FieldDate:        hang.Date,
			model.FieldTime:        hang.Time,
			model.FieldLocation:    hang.Location,
			model.FieldDescription: hang.Description,
			model.FieldOwner:       recordID(model.UserTable, hang.Owner),
		},
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := hangFromResult(result)
	if err != nil {
		return err
	}
	if created == nil {
		return errUnexpectedResult
	}

	*hang = *created
	return nil
}

// Update merges patch into the stored hang and returns the result.
// A missing hang yields nil with no error.
func (r *HangRepository) Update(ctx context.Context, id string, patch model.Fields) (*model.Hang, error) {
	query := `UPDATE $id MERGE $patch RETURN AFTER`
	vars := map[string]interface{}{
		"id":    recordID(model.HangTable, id),
		"patch": map[string]interface{}(patch),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return hangFromResult(result)
}

// Delete removes a hang
func (r *HangRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE $id`
	vars := map[string]interface{}{"id": recordID(model.HangTable, id)}

	return r.db.Execute(ctx, query, vars)
}

// AppendRSVP appends entry to the hang's RSVP list in a single statement
// so concurrent appends are never lost.
func (r *HangRepository) AppendRSVP(ctx context.Context, id string, entry model.Fields) (*model.Hang, error) {
	query := `UPDATE $id SET rsvp += $entry RETURN AFTER`
	vars := map[string]interface{}{
		"id":    recordID(model.HangTable, id),
		"entry": map[string]interface{}(entry),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return hangFromResult(result)
}

// Helper functions

func hangFromResult(result interface{}) (*model.Hang, error) {
	data, err := firstRecord(result)
	if err != nil || data == nil {
		return nil, err
	}
	return parseHang(data), nil
}

func parseHang(data map[string]interface{}) *model.Hang {
	hang := &model.Hang{
		ID:          recordKey(data[model.FieldID]),
		Title:       getString(data, model.FieldTitle),
		Date:        getString(data, model.FieldDate),
		Time:        getString(data, model.FieldTime),
		Location:    getString(data, model.FieldLocation),
		Description: getString(data, model.FieldDescription),
		Owner:       recordKey(data[model.FieldOwner]),
		CreatedAt:   parseTime(data[model.FieldCreatedAt]),
		UpdatedAt:   parseTime(data[model.FieldUpdatedAt]),
		RSVP:        []model.Fields{},
	}

	if entries, ok := data[model.FieldRSVP].([]interface{}); ok {
		for _, e := range entries {
			if m, ok := plainValue(e).(map[string]interface{}); ok {
				hang.RSVP = append(hang.RSVP, model.Fields(m))
			}
		}
	}

	return hang
}
