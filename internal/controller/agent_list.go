package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nexuscrm/internal/fixture"
	"nexuscrm/internal/model"
	"nexuscrm/internal/notify"
	"nexuscrm/internal/remote"
)

// ErrConfirmRequired is returned when a member removal is attempted without
// explicit confirmation.
var ErrConfirmRequired = errors.New("controller: removal requires confirmation")

// AgentList drives the team screen: the roster, its text search, member
// creation, and local-only member removal.
type AgentList struct {
	mu      sync.RWMutex
	agents  []model.Profile
	loading bool
	search  string

	store  remote.Store
	notifs *notify.Store
}

func NewAgentList(store remote.Store, notifs *notify.Store) *AgentList {
	return &AgentList{store: store, notifs: notifs}
}

// Load fetches the roster ordered by full name, or falls back to the fixture
// team when the read fails.
func (c *AgentList) Load(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	rows, err := c.store.Select(ctx, "profiles", remote.Query{OrderBy: "full_name"})
	var agents []model.Profile
	if err == nil {
		agents, err = remote.DecodeRows[model.Profile](rows)
	}
	if err != nil {
		log.Warn().Err(err).Msg("profiles fetch failed, using fixtures")
		agents = fixture.Agents()
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	c.mu.Lock()
	c.agents = agents
	c.mu.Unlock()
	return nil
}

// SetSearch sets the free-text query matched against name and email.
func (c *AgentList) SetSearch(q string) {
	c.mu.Lock()
	c.search = q
	c.mu.Unlock()
}

// Agents returns the roster entries matching the current search.
func (c *AgentList) Agents() []model.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(c.search)
	out := make([]model.Profile, 0, len(c.agents))
	for _, a := range c.agents {
		if q != "" &&
			!strings.Contains(strings.ToLower(a.FullName), q) &&
			!strings.Contains(strings.ToLower(a.Email), q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (c *AgentList) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *AgentList) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// AddMemberInput is the form payload for a new team member.
type AddMemberInput struct {
	FullName string
	Email    string
	Role     string
}

// AddMember creates a profile optimistically: a failed remote write keeps the
// member under a local id, the roster gains the entry at its head, and one
// notification is emitted.
func (c *AgentList) AddMember(ctx context.Context, in AddMemberInput) Written[model.Profile] {
	candidate := model.Profile{
		FullName: in.FullName,
		Email:    in.Email,
		Role:     in.Role,
	}

	written := Written[model.Profile]{Origin: OriginRemote}
	row, err := c.store.Insert(ctx, "profiles", map[string]any{
		"full_name": candidate.FullName,
		"email":     candidate.Email,
		"role":      candidate.Role,
	})
	if err == nil {
		written.Record, err = remote.Decode[model.Profile](row)
	}
	if err != nil {
		log.Warn().Err(err).Msg("profile insert failed, keeping member locally")
		candidate.ID = uuid.NewString()
		written = Written[model.Profile]{Record: candidate, Origin: OriginLocal}
	}

	c.mu.Lock()
	c.agents = append([]model.Profile{written.Record}, c.agents...)
	c.mu.Unlock()

	if written.Origin == OriginRemote {
		c.notifs.Add("Miembro Añadido",
			written.Record.FullName+" se ha unido al equipo.", model.NotifySuccess)
	} else {
		c.notifs.Add("Miembro Añadido (Local)",
			written.Record.FullName+" se ha guardado localmente.", model.NotifyInfo)
	}
	return written
}

// RemoveMember removes a profile from the in-memory roster. The removal is
// entirely local — no remote call is issued — and requires explicit
// confirmation. A warning notification records the revocation.
func (c *AgentList) RemoveMember(id string, confirm bool) (bool, error) {
	if !confirm {
		return false, ErrConfirmRequired
	}

	c.mu.Lock()
	var removed *model.Profile
	for i := range c.agents {
		if c.agents[i].ID == id {
			a := c.agents[i]
			removed = &a
			c.agents = append(c.agents[:i], c.agents[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if removed == nil {
		return false, nil
	}
	c.notifs.Add("Miembro Eliminado",
		"El acceso para "+removed.FullName+" ha sido revocado.", model.NotifyWarning)
	return true, nil
}
