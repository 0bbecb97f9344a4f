package authz

// Principal es la identidad autenticada que ejecuta la request. Se construye
// una vez por request (desde los claims del JWT) y viaja explícitamente como
// parámetro a cada caso de uso; no hay estado global ni thread-local.
type Principal struct {
	UserID         string
	Username       string
	OrganizationID string

	granted map[string]struct{}
}

// NewPrincipal construye el principal con el set de tokens otorgados.
// Tokens que no pertenecen a la grilla conocida se ignoran.
func NewPrincipal(userID, username, organizationID string, tokens []string) Principal {
	granted := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, ok := ParseToken(t); ok {
			granted[t] = struct{}{}
		}
	}
	return Principal{
		UserID:         userID,
		Username:       username,
		OrganizationID: organizationID,
		granted:        granted,
	}
}

// Can informa si el principal tiene otorgada la capacidad.
func (p Principal) Can(c Capability) bool {
	_, ok := p.granted[c.Token()]
	return ok
}

// Tokens devuelve los tokens otorgados (para serializar en claims/respuestas).
func (p Principal) Tokens() []string {
	out := make([]string, 0, len(p.granted))
	for t := range p.granted {
		out = append(out, t)
	}
	return out
}
