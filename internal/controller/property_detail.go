package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nexuscrm/internal/fixture"
	"nexuscrm/internal/model"
	"nexuscrm/internal/notify"
	"nexuscrm/internal/remote"
)

// PropertyDetail drives one listing's detail screen: the property, its
// transaction (zero or one), and its append-only activity log.
type PropertyDetail struct {
	mu          sync.RWMutex
	propertyID  string
	property    *model.Property
	transaction *model.Transaction
	activities  []model.PropertyActivity
	loading     bool

	store  remote.Store
	notifs *notify.Store
}

func NewPropertyDetail(store remote.Store, notifs *notify.Store) *PropertyDetail {
	return &PropertyDetail{store: store, notifs: notifs}
}

// Load fetches the property, its transaction and its activity log
// concurrently. Read failures substitute the keyed fixtures: fixture property
// "1" carries a transaction and two activities, an unknown id resolves to an
// empty screen. A query that simply matched no rows also leaves the entity
// absent — an unknown id is not a remote failure.
func (c *PropertyDetail) Load(ctx context.Context, id string) error {
	c.setLoading(true)
	defer c.setLoading(false)

	var (
		wg          sync.WaitGroup
		property    *model.Property
		transaction *model.Transaction
		activities  []model.PropertyActivity
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		row, err := c.store.GetByKey(ctx, "properties", id)
		switch {
		case err == nil:
			if p, derr := remote.Decode[model.Property](row); derr == nil {
				property = &p
			} else {
				log.Warn().Err(derr).Str("property_id", id).Msg("property decode failed, using fixture")
				property = fixture.PropertyByID(id)
			}
		case errors.Is(err, remote.ErrNoRows):
			// Known-absent: leave the screen empty.
		default:
			log.Warn().Err(err).Str("property_id", id).Msg("property fetch failed, using fixture")
			property = fixture.PropertyByID(id)
		}
	}()
	go func() {
		defer wg.Done()
		rows, err := c.store.Select(ctx, "transactions", remote.Query{
			Filters: []remote.Filter{{Column: "property_id", Value: id}},
		})
		if err != nil {
			log.Warn().Err(err).Str("property_id", id).Msg("transaction fetch failed, using fixture")
			transaction = fixture.TransactionForProperty(id)
			return
		}
		if len(rows) > 0 {
			if t, derr := remote.Decode[model.Transaction](rows[0]); derr == nil {
				transaction = &t
			}
		}
	}()
	go func() {
		defer wg.Done()
		rows, err := c.store.Select(ctx, "property_activities", remote.Query{
			Filters: []remote.Filter{{Column: "property_id", Value: id}},
			OrderBy: "created_at", Descending: true,
		})
		if err == nil {
			activities, err = remote.DecodeRows[model.PropertyActivity](rows)
		}
		if err != nil {
			log.Warn().Err(err).Str("property_id", id).Msg("activity fetch failed, using fixture")
			activities = fixture.ActivitiesForProperty(id)
		}
	}()
	wg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	// Default the joined agent when the roster fixture knows it.
	if property != nil && property.Agent == nil {
		property.Agent = fixture.AgentByID(property.AgentID)
	}

	c.mu.Lock()
	c.propertyID = id
	c.property = property
	c.transaction = transaction
	c.activities = activities
	c.mu.Unlock()
	return nil
}

// Property returns the loaded listing, or nil for an unknown id.
func (c *PropertyDetail) Property() *model.Property {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.property
}

// Transaction returns the listing's live transaction, or nil.
func (c *PropertyDetail) Transaction() *model.Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transaction
}

// Activities returns the activity log, most recent first.
func (c *PropertyDetail) Activities() []model.PropertyActivity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.PropertyActivity, len(c.activities))
	copy(out, c.activities)
	return out
}

func (c *PropertyDetail) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *PropertyDetail) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// AddActivityInput is the form payload for a new log entry.
type AddActivityInput struct {
	Type        string
	Notes       string
	PerformedBy *string
}

// AddActivity appends an entry to the property's audit log, optimistically:
// a failed remote write keeps the entry under a local id, and in both cases
// the entry lands at the head of the log with one notification emitted.
func (c *PropertyDetail) AddActivity(ctx context.Context, propertyID string, in AddActivityInput) Written[model.PropertyActivity] {
	candidate := model.PropertyActivity{
		PropertyID:  propertyID,
		Type:        in.Type,
		Notes:       in.Notes,
		PerformedBy: in.PerformedBy,
	}

	written := Written[model.PropertyActivity]{Origin: OriginRemote}
	row, err := c.store.Insert(ctx, "property_activities", map[string]any{
		"property_id":  candidate.PropertyID,
		"type":         candidate.Type,
		"notes":        candidate.Notes,
		"performed_by": candidate.PerformedBy,
	})
	if err == nil {
		written.Record, err = remote.Decode[model.PropertyActivity](row)
	}
	if err != nil {
		log.Warn().Err(err).Str("property_id", propertyID).Msg("activity insert failed, keeping entry locally")
		candidate.ID = uuid.NewString()
		candidate.CreatedAt = time.Now().Format("2006-01-02")
		written = Written[model.PropertyActivity]{Record: candidate, Origin: OriginLocal}
	}

	c.mu.Lock()
	if c.propertyID == propertyID {
		c.activities = append([]model.PropertyActivity{written.Record}, c.activities...)
	}
	c.mu.Unlock()

	if written.Origin == OriginRemote {
		c.notifs.Add("Actividad Registrada",
			"Se registró una actividad de tipo "+written.Record.Type+".", model.NotifySuccess)
	} else {
		c.notifs.Add("Actividad Registrada (Local)",
			"La actividad se guardó localmente.", model.NotifyInfo)
	}
	return written
}
