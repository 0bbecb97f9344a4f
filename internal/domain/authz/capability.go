package authz

// Action es la operación gruesa que un permiso habilita sobre un tipo de recurso.
type Action string

// Resource es el tipo de recurso sobre el que aplica un permiso.
type Resource string

const (
	ActionAdd    Action = "add"
	ActionChange Action = "change"
	ActionDelete Action = "delete"
)

const (
	ResourceCompany    Resource = "company"
	ResourceQueue      Resource = "queue"
	ResourceQueueEntry Resource = "queueentry"
)

// Capability es un par tipado (acción, recurso). El token persistido/transmitido
// se deriva con Token(); nunca se comparan strings sueltos en el código.
type Capability struct {
	Action   Action
	Resource Resource
}

// Token devuelve la forma serializada "<action>_<resource>", ej. "add_company".
func (c Capability) Token() string {
	return string(c.Action) + "_" + string(c.Resource)
}

// Cap es un constructor corto para escribir authz.Cap(authz.ActionAdd, authz.ResourceQueue).
func Cap(a Action, r Resource) Capability {
	return Capability{Action: a, Resource: r}
}

// All enumera las capacidades válidas del sistema (la grilla acción × recurso).
func All() []Capability {
	actions := []Action{ActionAdd, ActionChange, ActionDelete}
	resources := []Resource{ResourceCompany, ResourceQueue, ResourceQueueEntry}
	caps := make([]Capability, 0, len(actions)*len(resources))
	for _, a := range actions {
		for _, r := range resources {
			caps = append(caps, Capability{Action: a, Resource: r})
		}
	}
	return caps
}

// ParseToken valida un token contra la grilla conocida y devuelve su forma tipada.
// Tokens desconocidos devuelven ok=false (se rechazan al otorgar permisos).
func ParseToken(token string) (Capability, bool) {
	for _, c := range All() {
		if c.Token() == token {
			return c, true
		}
	}
	return Capability{}, false
}
