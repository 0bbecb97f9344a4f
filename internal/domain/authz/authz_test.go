package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/authz"
)

const (
	testOrgA = "00000000-0000-0000-0000-00000000000a"
	testOrgB = "00000000-0000-0000-0000-00000000000b"
)

func principalConTokens(tokens ...string) authz.Principal {
	return authz.NewPrincipal("user-1", "alicia", testOrgA, tokens)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Capability — grilla acción × recurso
// ──────────────────────────────────────────────────────────────────────────────

func TestCapability_TokenSerializado(t *testing.T) {
	assert.Equal(t, "add_company", authz.Cap(authz.ActionAdd, authz.ResourceCompany).Token())
	assert.Equal(t, "change_queue", authz.Cap(authz.ActionChange, authz.ResourceQueue).Token())
	assert.Equal(t, "delete_queueentry", authz.Cap(authz.ActionDelete, authz.ResourceQueueEntry).Token())
}

func TestCapability_GrillaCompleta(t *testing.T) {
	caps := authz.All()
	assert.Len(t, caps, 9, "3 acciones × 3 recursos = 9 capacidades")

	vistos := make(map[string]bool)
	for _, c := range caps {
		vistos[c.Token()] = true
	}
	assert.Len(t, vistos, 9, "no debe haber tokens duplicados en la grilla")
}

func TestParseToken_TokenConocido(t *testing.T) {
	c, ok := authz.ParseToken("change_queueentry")
	require.True(t, ok)
	assert.Equal(t, authz.ActionChange, c.Action)
	assert.Equal(t, authz.ResourceQueueEntry, c.Resource)
}

func TestParseToken_TokenDesconocido(t *testing.T) {
	casos := []string{"", "view_company", "add_", "_company", "add-company", "ADD_COMPANY"}
	for _, token := range casos {
		_, ok := authz.ParseToken(token)
		assert.False(t, ok, "token %q no pertenece a la grilla", token)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Principal
// ──────────────────────────────────────────────────────────────────────────────

func TestPrincipal_CanSoloConTokenOtorgado(t *testing.T) {
	p := principalConTokens("add_queue", "delete_queue")

	assert.True(t, p.Can(authz.Cap(authz.ActionAdd, authz.ResourceQueue)))
	assert.True(t, p.Can(authz.Cap(authz.ActionDelete, authz.ResourceQueue)))
	assert.False(t, p.Can(authz.Cap(authz.ActionChange, authz.ResourceQueue)),
		"capacidad no otorgada debe negarse")
	assert.False(t, p.Can(authz.Cap(authz.ActionAdd, authz.ResourceCompany)),
		"la capacidad es por recurso, no transversal")
}

func TestPrincipal_IgnoraTokensDesconocidos(t *testing.T) {
	p := principalConTokens("add_company", "superuser", "view_queue")
	assert.ElementsMatch(t, []string{"add_company"}, p.Tokens(),
		"tokens fuera de la grilla se descartan al construir el principal")
}

func TestPrincipal_SinTokens(t *testing.T) {
	p := principalConTokens()
	for _, c := range authz.All() {
		assert.False(t, p.Can(c), "principal sin permisos no puede %s", c.Token())
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests políticas — gate de capacidad y referencias a padres
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireCapability_Otorgada(t *testing.T) {
	p := principalConTokens("add_company")
	assert.NoError(t, authz.RequireCapability(p, authz.Cap(authz.ActionAdd, authz.ResourceCompany)))
}

func TestRequireCapability_NoOtorgada(t *testing.T) {
	p := principalConTokens("add_company")
	err := authz.RequireCapability(p, authz.Cap(authz.ActionDelete, authz.ResourceCompany))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Crear con padre inexistente: no hay objeto que ocultar, el lookup responde 404.
func TestRequireParentForCreate_PadreInexistente(t *testing.T) {
	p := principalConTokens("add_queue")
	err := authz.RequireParentForCreate(p, false, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Crear con padre de otra organización: el objeto existe y el acceso se niega.
func TestRequireParentForCreate_PadreAjeno(t *testing.T) {
	p := principalConTokens("add_queue")
	err := authz.RequireParentForCreate(p, true, testOrgB)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRequireParentForCreate_PadrePropio(t *testing.T) {
	p := principalConTokens("add_queue")
	assert.NoError(t, authz.RequireParentForCreate(p, true, testOrgA))
}

// En update el padre inexistente y el ajeno colapsan al mismo 403: lo que se
// prohíbe es mover el recurso fuera de la jerarquía propia.
func TestRequireParentForUpdate_PadreInexistenteOAjeno(t *testing.T) {
	p := principalConTokens("change_queue")

	assert.ErrorIs(t, authz.RequireParentForUpdate(p, false, ""), domain.ErrForbidden)
	assert.ErrorIs(t, authz.RequireParentForUpdate(p, true, testOrgB), domain.ErrForbidden)
}

func TestRequireParentForUpdate_PadrePropio(t *testing.T) {
	p := principalConTokens("change_queue")
	assert.NoError(t, authz.RequireParentForUpdate(p, true, testOrgA))
}
