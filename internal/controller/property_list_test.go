package controller

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuscrm/internal/model"
)

func TestPropertyListLoadFromRemote(t *testing.T) {
	store := newStubStore()
	store.put("properties",
		model.Property{ID: "p1", Title: "Casa Norte", Status: model.StatusCaptado, AgentID: "a1"},
		model.Property{ID: "p2", Title: "Loft Sur", Status: model.StatusVendido, AgentID: "a9"},
	)
	store.put("profiles", model.Profile{ID: "a1", FullName: "Carlos Agente"})

	c := NewPropertyList(store, newTestNotify())
	require.NoError(t, c.Load(context.Background()))

	props := c.Properties()
	require.Len(t, props, 2)
	// Roster join by agent id; unknown agents stay unjoined
	require.NotNil(t, props[0].Agent)
	assert.Equal(t, "Carlos Agente", props[0].Agent.FullName)
	assert.Nil(t, props[1].Agent)
	assert.False(t, c.Loading())
}

func TestPropertyListLoadFallsBackPerRead(t *testing.T) {
	store := newStubStore()
	store.fail["properties"] = true
	store.put("profiles", model.Profile{ID: "a1", FullName: "Carlos Agente"})

	c := NewPropertyList(store, newTestNotify())
	require.NoError(t, c.Load(context.Background()))

	// Inventory came from fixtures, roster from the remote read
	props := c.Properties()
	require.Len(t, props, 4)
	assert.Equal(t, "Modern Apartment in City Center", props[0].Title)
	require.NotNil(t, props[0].Agent)
	assert.Equal(t, "Carlos Agente", props[0].Agent.FullName)
}

func TestPropertyListLoadBothReadsFail(t *testing.T) {
	store := newStubStore()
	store.failAll = true

	c := NewPropertyList(store, newTestNotify())
	require.NoError(t, c.Load(context.Background()))

	// The screen is never blank and loading always clears
	assert.Len(t, c.Properties(), 4)
	assert.False(t, c.Loading())
}

func TestPropertyListLoadCancelledContext(t *testing.T) {
	store := newStubStore()
	store.put("properties", model.Property{ID: "p1", Title: "Casa"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewPropertyList(store, newTestNotify())
	assert.Error(t, c.Load(ctx))
	assert.Empty(t, c.Properties())
}

func TestPropertyListFilterAndSearch(t *testing.T) {
	store := newStubStore()
	store.failAll = true // fixtures: 4 listings
	c := NewPropertyList(store, newTestNotify())
	require.NoError(t, c.Load(context.Background()))

	c.SetFilter(string(model.StatusVendido))
	props := c.Properties()
	require.Len(t, props, 1)
	assert.Equal(t, "Luxury Villa with Pool", props[0].Title)

	c.SetFilter("all")
	c.SetSearch("MODERN")
	props = c.Properties()
	require.Len(t, props, 1)
	assert.Equal(t, "1", props[0].ID)

	// Search matches owner name too
	c.SetSearch("inversiones")
	props = c.Properties()
	require.Len(t, props, 1)
	assert.Equal(t, "Commercial Office Space", props[0].Title)
}

func TestCreateRemoteSuccess(t *testing.T) {
	store := newStubStore()
	notifs := newTestNotify()
	c := NewPropertyList(store, notifs)

	written := c.Create(context.Background(), CreatePropertyInput{
		Title: "Villa Sol", Address: "Calle 1", Price: decimal.NewFromInt(100000),
		AgentID: "a1", OwnerName: "Pedro",
	})

	assert.Equal(t, OriginRemote, written.Origin)
	assert.Equal(t, "srv-1", written.Record.ID)
	assert.Equal(t, model.StatusCaptado, written.Record.Status)

	props := c.Properties()
	require.Len(t, props, 1)
	assert.Equal(t, "srv-1", props[0].ID)

	list := notifs.List()
	require.Len(t, list, 2) // welcome + created
	assert.Equal(t, "Propiedad Creada", list[0].Title)
}

func TestCreateFailedWriteKeepsRecordLocally(t *testing.T) {
	store := newStubStore()
	store.failAll = true
	notifs := newTestNotify()
	c := NewPropertyList(store, notifs)

	written := c.Create(context.Background(), CreatePropertyInput{
		Title: "Villa Luna", Address: "Calle 2", Price: decimal.NewFromInt(200000),
		AgentID: "a1", OwnerName: "Lucia",
	})

	// Exactly one attempt, record kept under a distinct local id
	assert.Equal(t, []string{"properties"}, store.inserts)
	assert.Equal(t, OriginLocal, written.Origin)
	assert.NotEmpty(t, written.Record.ID)
	assert.NotEqual(t, "srv-1", written.Record.ID)

	// Spliced onto the head, exactly one notification emitted
	props := c.Properties()
	require.Len(t, props, 1)
	assert.Equal(t, written.Record.ID, props[0].ID)

	list := notifs.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Propiedad Creada (Local)", list[0].Title)
	assert.Equal(t, model.NotifyInfo, list[0].Type)
}

func TestAdvanceStatusRemote(t *testing.T) {
	store := newStubStore()
	store.put("properties", model.Property{ID: "p1", Title: "Casa", Status: model.StatusCaptado})
	notifs := newTestNotify()
	c := NewPropertyList(store, notifs)
	require.NoError(t, c.Load(context.Background()))

	written, ok := c.AdvanceStatus(context.Background(), "p1")
	require.True(t, ok)
	assert.Equal(t, OriginRemote, written.Origin)
	assert.Equal(t, model.StatusVisitado, written.Record.Status)
	assert.Equal(t, []string{"properties/p1"}, store.updates)
	assert.Equal(t, "Estado Actualizado", notifs.List()[0].Title)
}

func TestAdvanceStatusLocalOnFailure(t *testing.T) {
	store := newStubStore()
	store.put("properties", model.Property{ID: "p1", Title: "Casa", Status: model.StatusFinanciado})
	notifs := newTestNotify()
	c := NewPropertyList(store, notifs)
	require.NoError(t, c.Load(context.Background()))
	store.failAll = true

	written, ok := c.AdvanceStatus(context.Background(), "p1")
	require.True(t, ok)
	assert.Equal(t, OriginLocal, written.Origin)
	// Last stage wraps to the first, locally as well
	assert.Equal(t, model.StatusCaptado, written.Record.Status)
	assert.Equal(t, model.StatusCaptado, c.Properties()[0].Status)
	assert.Equal(t, "Estado Actualizado (Local)", notifs.List()[0].Title)
}

func TestAdvanceStatusUnknownID(t *testing.T) {
	store := newStubStore()
	c := NewPropertyList(store, newTestNotify())

	_, ok := c.AdvanceStatus(context.Background(), "nope")
	assert.False(t, ok)
	assert.Empty(t, store.updates)
}
