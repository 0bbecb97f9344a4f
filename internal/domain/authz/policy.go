package authz

import (
	"github.com/jhoicas/Turnos-api/internal/domain"
)

// Decisión de autorización en dos etapas:
//
//  1. Gate grueso de capacidad: ¿el principal puede ejecutar esta acción sobre
//     este tipo de recurso en absoluto? Falla con ErrForbidden y se evalúa
//     SIEMPRE antes que cualquier chequeo de pertenencia.
//  2. Predicado fino de pertenencia sobre filas ya leídas. Para objetos
//     objetivo la pertenencia la impone el filtro de visibilidad en las
//     consultas (una fila ajena simplemente no aparece → ErrNotFound); para
//     referencias a padres en payloads se usan los Require* de este archivo.
//
// Las lecturas (list/retrieve) no pasan por el gate de capacidad: solo por el
// filtro de visibilidad.

// RequireCapability es el gate grueso. ErrForbidden si el token no está otorgado.
func RequireCapability(p Principal, c Capability) error {
	if !p.Can(c) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireParentForCreate valida la referencia al padre declarada al crear un
// recurso hijo (company de un queue, queue de un queue entry).
//
//   - Padre inexistente → ErrNotFound: no hay objeto que ocultar, el 404 es el
//     del propio lookup.
//   - Padre existente pero de otra organización → ErrForbidden: el objeto
//     existe y el acceso se niega.
func RequireParentForCreate(p Principal, parentExists bool, parentOrganizationID string) error {
	if !parentExists {
		return domain.ErrNotFound
	}
	if parentOrganizationID != p.OrganizationID {
		return domain.ErrForbidden
	}
	return nil
}

// RequireParentForUpdate valida la referencia al padre declarada al actualizar.
// Asimetría deliberada con el create: el principal ya posee legítimamente el
// objeto objetivo, así que revelar la existencia del padre no filtra nada; lo
// que se prohíbe es mover un recurso propio a la jerarquía de otro tenant.
// Padre inexistente o ajeno → ErrForbidden.
func RequireParentForUpdate(p Principal, parentExists bool, parentOrganizationID string) error {
	if !parentExists || parentOrganizationID != p.OrganizationID {
		return domain.ErrForbidden
	}
	return nil
}
