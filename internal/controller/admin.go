package controller

import (
	"sync"

	"nexuscrm/internal/model"
	"nexuscrm/internal/notify"
)

// Admin drives the settings screen: the maintenance-mode toggle and the
// placeholder section actions. All state is local to the process.
type Admin struct {
	mu     sync.Mutex
	online bool

	notifs *notify.Store
}

func NewAdmin(notifs *notify.Store) *Admin {
	return &Admin{online: true, notifs: notifs}
}

// Online reports whether the platform is publicly available.
func (c *Admin) Online() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online
}

// ToggleStatus flips maintenance mode and notifies the change.
func (c *Admin) ToggleStatus() bool {
	c.mu.Lock()
	c.online = !c.online
	next := c.online
	c.mu.Unlock()

	if next {
		c.notifs.Add("Sistema Restaurado",
			"La plataforma vuelve a estar operativa para todos los usuarios.", model.NotifySuccess)
	} else {
		c.notifs.Add("Modo Mantenimiento",
			"El acceso público ha sido restringido temporalmente.", model.NotifyWarning)
	}
	return next
}

// SectionAction acknowledges a settings section that has no panel yet.
func (c *Admin) SectionAction(title string) {
	c.notifs.Add("Sección: "+title,
		"Este panel de configuración estará disponible en la próxima actualización.", model.NotifyInfo)
}
