package controller

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"nexuscrm/internal/fixture"
	"nexuscrm/internal/model"
	"nexuscrm/internal/notify"
	"nexuscrm/internal/remote"
)

// PropertyList drives the inventory screen: the listing grid, its status
// filter and text search, creation of new listings, and the status
// advancement action.
type PropertyList struct {
	mu         sync.RWMutex
	properties []model.Property
	agents     []model.Profile
	loading    bool
	filter     string // "all" or a PropertyStatus value
	search     string

	store  remote.Store
	notifs *notify.Store
}

func NewPropertyList(store remote.Store, notifs *notify.Store) *PropertyList {
	return &PropertyList{
		filter: "all",
		store:  store,
		notifs: notifs,
	}
}

// Load fetches the inventory and the agent roster concurrently. Either read
// failing substitutes its fixture dataset — the screen is never blank and no
// error reaches the user. A cancelled ctx drops the responses instead of
// applying them to a discarded screen.
func (c *PropertyList) Load(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	var (
		wg         sync.WaitGroup
		properties []model.Property
		agents     []model.Profile
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rows, err := c.store.Select(ctx, "properties", remote.Query{
			OrderBy: "created_at", Descending: true,
		})
		if err == nil {
			properties, err = remote.DecodeRows[model.Property](rows)
		}
		if err != nil {
			log.Warn().Err(err).Msg("properties fetch failed, using fixtures")
			properties = fixture.Properties()
		}
	}()
	go func() {
		defer wg.Done()
		rows, err := c.store.Select(ctx, "profiles", remote.Query{OrderBy: "full_name"})
		if err == nil {
			agents, err = remote.DecodeRows[model.Profile](rows)
		}
		if err != nil {
			log.Warn().Err(err).Msg("profiles fetch failed, using fixtures")
			agents = fixture.Agents()
		}
	}()
	wg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	byID := make(map[string]*model.Profile, len(agents))
	for i := range agents {
		byID[agents[i].ID] = &agents[i]
	}
	for i := range properties {
		if a, ok := byID[properties[i].AgentID]; ok {
			properties[i].Agent = a
		}
	}

	c.mu.Lock()
	c.properties = properties
	c.agents = agents
	c.mu.Unlock()
	return nil
}

// SetFilter restricts the listing to one pipeline stage ("all" lifts it).
func (c *PropertyList) SetFilter(filter string) {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
}

// SetSearch sets the free-text query matched against title, address and owner.
func (c *PropertyList) SetSearch(q string) {
	c.mu.Lock()
	c.search = q
	c.mu.Unlock()
}

// Properties returns the visible listings under the current filter and search.
func (c *PropertyList) Properties() []model.Property {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Property, 0, len(c.properties))
	q := strings.ToLower(c.search)
	for _, p := range c.properties {
		if c.filter != "all" && string(p.Status) != c.filter {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Address), q) &&
			!strings.Contains(strings.ToLower(p.OwnerName), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *PropertyList) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *PropertyList) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// CreatePropertyInput is the form payload for a new listing. Required-field
// presence is enforced at the binding layer; there is no deeper validation.
type CreatePropertyInput struct {
	Title     string
	Address   string
	Price     decimal.Decimal
	AgentID   string
	OwnerName string
	ImageURL  *string
}

// Create registers a new listing. The remote insert is attempted once; on
// failure the record is synthesized locally under a random id and the action
// still succeeds. Either way the record is spliced onto the front of the list
// and exactly one notification is emitted.
func (c *PropertyList) Create(ctx context.Context, in CreatePropertyInput) Written[model.Property] {
	candidate := model.Property{
		Title:     in.Title,
		Address:   in.Address,
		Price:     in.Price,
		Status:    model.StatusCaptado,
		AgentID:   in.AgentID,
		OwnerName: in.OwnerName,
		ImageURL:  in.ImageURL,
	}

	written := Written[model.Property]{Origin: OriginRemote}
	row, err := c.store.Insert(ctx, "properties", map[string]any{
		"title":      candidate.Title,
		"address":    candidate.Address,
		"price":      candidate.Price,
		"status":     candidate.Status,
		"agent_id":   candidate.AgentID,
		"owner_name": candidate.OwnerName,
		"image_url":  candidate.ImageURL,
	})
	if err == nil {
		written.Record, err = remote.Decode[model.Property](row)
	}
	if err != nil {
		log.Warn().Err(err).Msg("property insert failed, keeping record locally")
		candidate.ID = uuid.NewString()
		candidate.CreatedAt = time.Now().Format("2006-01-02")
		written = Written[model.Property]{Record: candidate, Origin: OriginLocal}
	}

	c.mu.Lock()
	c.properties = append([]model.Property{written.Record}, c.properties...)
	c.mu.Unlock()

	if written.Origin == OriginRemote {
		c.notifs.Add("Propiedad Creada",
			written.Record.Title+" se ha añadido al inventario.", model.NotifySuccess)
	} else {
		c.notifs.Add("Propiedad Creada (Local)",
			written.Record.Title+" se ha guardado localmente.", model.NotifyInfo)
	}
	return written
}

// AdvanceStatus moves a listing one step along the pipeline cycle. The remote
// update is attempted once; whether it lands or not, local state advances
// identically — the two outcomes differ only in the notification text.
func (c *PropertyList) AdvanceStatus(ctx context.Context, id string) (Written[model.Property], bool) {
	c.mu.RLock()
	var current *model.Property
	for i := range c.properties {
		if c.properties[i].ID == id {
			p := c.properties[i]
			current = &p
			break
		}
	}
	c.mu.RUnlock()
	if current == nil {
		return Written[model.Property]{}, false
	}

	next := current.Status.Next()
	origin := OriginRemote
	if _, err := c.store.UpdateByKey(ctx, "properties", id, map[string]any{"status": next}); err != nil {
		log.Warn().Err(err).Str("property_id", id).Msg("status update failed, advancing locally")
		origin = OriginLocal
	}

	c.mu.Lock()
	for i := range c.properties {
		if c.properties[i].ID == id {
			c.properties[i].Status = next
			current = &c.properties[i]
			break
		}
	}
	updated := *current
	c.mu.Unlock()

	if origin == OriginRemote {
		c.notifs.Add("Estado Actualizado",
			updated.Title+" ahora está en "+string(next)+".", model.NotifySuccess)
	} else {
		c.notifs.Add("Estado Actualizado (Local)",
			updated.Title+" ahora está en "+string(next)+".", model.NotifyInfo)
	}
	return Written[model.Property]{Record: updated, Origin: origin}, true
}
