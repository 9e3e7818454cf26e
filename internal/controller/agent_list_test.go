package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuscrm/internal/model"
)

func TestAgentListLoadFromRemote(t *testing.T) {
	store := newStubStore()
	store.put("profiles",
		model.Profile{ID: "a1", FullName: "Beatriz Campos", Email: "bea@nexus.com", Role: model.RoleAgent},
	)

	c := NewAgentList(store, newTestNotify())
	require.NoError(t, c.Load(context.Background()))

	agents := c.Agents()
	require.Len(t, agents, 1)
	assert.Equal(t, "Beatriz Campos", agents[0].FullName)
}

func TestAgentListLoadFallsBackToFixtures(t *testing.T) {
	store := newStubStore()
	store.failAll = true

	c := NewAgentList(store, newTestNotify())
	require.NoError(t, c.Load(context.Background()))

	agents := c.Agents()
	require.Len(t, agents, 3)
	assert.Equal(t, "Carlos Agente", agents[0].FullName)
	assert.False(t, c.Loading())
}

func TestAgentListSearch(t *testing.T) {
	store := newStubStore()
	store.failAll = true
	c := NewAgentList(store, newTestNotify())
	require.NoError(t, c.Load(context.Background()))

	c.SetSearch("ana")
	agents := c.Agents()
	require.Len(t, agents, 1)
	assert.Equal(t, "Ana García", agents[0].FullName)

	// Email matches too
	c.SetSearch("luis@")
	agents = c.Agents()
	require.Len(t, agents, 1)
	assert.Equal(t, "Luis Admin", agents[0].FullName)
}

func TestAddMemberRemote(t *testing.T) {
	store := newStubStore()
	notifs := newTestNotify()
	c := NewAgentList(store, notifs)

	written := c.AddMember(context.Background(), AddMemberInput{
		FullName: "Nuevo Agente", Email: "nuevo@nexus.com", Role: model.RoleAgent,
	})

	assert.Equal(t, OriginRemote, written.Origin)
	assert.Equal(t, "srv-1", written.Record.ID)
	require.Len(t, c.Agents(), 1)
	assert.Equal(t, "Miembro Añadido", notifs.List()[0].Title)
	assert.Equal(t, model.NotifySuccess, notifs.List()[0].Type)
}

func TestAddMemberLocalFallback(t *testing.T) {
	store := newStubStore()
	store.failAll = true
	notifs := newTestNotify()
	c := NewAgentList(store, notifs)

	written := c.AddMember(context.Background(), AddMemberInput{
		FullName: "Sin Conexión", Email: "off@nexus.com", Role: model.RoleEditor,
	})

	assert.Equal(t, []string{"profiles"}, store.inserts)
	assert.Equal(t, OriginLocal, written.Origin)
	assert.NotEmpty(t, written.Record.ID)
	require.Len(t, c.Agents(), 1)

	// The local outcome is announced as informational, not as a success
	list := notifs.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Miembro Añadido (Local)", list[0].Title)
	assert.Equal(t, model.NotifyInfo, list[0].Type)
}

func TestRemoveMemberRequiresConfirmation(t *testing.T) {
	store := newStubStore()
	store.failAll = true
	c := NewAgentList(store, newTestNotify())
	require.NoError(t, c.Load(context.Background()))

	_, err := c.RemoveMember("1", false)
	assert.ErrorIs(t, err, ErrConfirmRequired)
	assert.Len(t, c.Agents(), 3)
}

func TestRemoveMemberIsLocalOnly(t *testing.T) {
	store := newStubStore()
	store.failAll = true
	notifs := newTestNotify()
	c := NewAgentList(store, notifs)
	require.NoError(t, c.Load(context.Background()))

	removed, err := c.RemoveMember("2", true)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Len(t, c.Agents(), 2)

	// No remote write of any kind was issued
	assert.Empty(t, store.inserts)
	assert.Empty(t, store.updates)

	list := notifs.List()
	assert.Equal(t, "Miembro Eliminado", list[0].Title)
	assert.Equal(t, model.NotifyWarning, list[0].Type)
	assert.Equal(t, "El acceso para Ana García ha sido revocado.", list[0].Message)
}

func TestRemoveMemberUnknownID(t *testing.T) {
	store := newStubStore()
	c := NewAgentList(store, newTestNotify())

	removed, err := c.RemoveMember("nope", true)
	require.NoError(t, err)
	assert.False(t, removed)
}
