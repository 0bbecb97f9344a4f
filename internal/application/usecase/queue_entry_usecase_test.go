package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/usecase"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

func buildEntryUC() (*usecase.QueueEntryUseCase, *fakeQueueEntryRepo, *fakeQueueRepo, *fakeCompanyRepo) {
	companies := &fakeCompanyRepo{}
	queues := &fakeQueueRepo{companies: companies}
	entries := &fakeQueueEntryRepo{queues: queues}
	return usecase.NewQueueEntryUseCase(entries, queues), entries, queues, companies
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestEntryCreate_FijaStartWaitingEnServidor(t *testing.T) {
	uc, entries, queues, companies := buildEntryUC()
	propia := seedCompany(companies, orgA, "Notaría")
	fila := seedQueue(queues, propia, "Autenticaciones")
	p := principalDe(orgA, "add_queueentry")

	antes := time.Now()
	out, err := uc.Create(context.Background(), p, dto.CreateQueueEntryRequest{Queue: fila.ID, Description: "Sr. Pérez"})
	require.NoError(t, err)

	assert.False(t, out.StartWaiting.Before(antes), "start_waiting lo fija el servidor al crear")
	assert.Nil(t, out.EndWaiting, "un turno nuevo queda en espera")
	assert.Len(t, entries.items, 1)
}

// La pertenencia del padre se resuelve transitivamente: la queue no guarda
// organización propia, se hereda de su company.
func TestEntryCreate_BajoFilaDeEmpresaAjena_Forbidden(t *testing.T) {
	uc, entries, queues, companies := buildEntryUC()
	ajena := seedCompany(companies, orgB, "Banco")
	filaAjena := seedQueue(queues, ajena, "Caja")
	p := principalDe(orgA, "add_queueentry")

	_, err := uc.Create(context.Background(), p, dto.CreateQueueEntryRequest{Queue: filaAjena.ID, Description: "Intruso"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, entries.items)
}

func TestEntryCreate_FilaInexistente_NotFound(t *testing.T) {
	uc, _, _, _ := buildEntryUC()
	p := principalDe(orgA, "add_queueentry")

	_, err := uc.Create(context.Background(), p, dto.CreateQueueEntryRequest{Queue: "no-existe", Description: "Sr. Pérez"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — combinación de filtros sobre el scope
// ──────────────────────────────────────────────────────────────────────────────

func TestEntryList_FiltrosCombinados(t *testing.T) {
	uc, entries, queues, companies := buildEntryUC()
	propia := seedCompany(companies, orgA, "Clínica")
	urgencias := seedQueue(queues, propia, "Urgencias")
	consulta := seedQueue(queues, propia, "Consulta")

	hoy := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	ayer := hoy.AddDate(0, 0, -1)
	atendido := hoy.Add(30 * time.Minute)

	seedEntry(entries, urgencias, "esperando hoy", hoy, nil)
	seedEntry(entries, urgencias, "atendido hoy", hoy, &atendido)
	seedEntry(entries, urgencias, "esperando ayer", ayer, nil)
	seedEntry(entries, consulta, "otra fila hoy", hoy, nil)

	// Turnos de una fila ajena: existen pero nunca aparecen.
	ajena := seedCompany(companies, orgB, "Banco")
	filaAjena := seedQueue(queues, ajena, "Caja")
	seedEntry(entries, filaAjena, "ajeno", hoy, nil)

	p := principalDe(orgA)
	esperando := true
	out, err := uc.List(context.Background(), p, repository.QueueEntryFilter{
		QueueID:          urgencias.ID,
		Date:             &hoy,
		WaitingEndIsNull: &esperando,
	}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "los tres filtros se aplican en conjunto encima del scope")
	assert.Equal(t, "esperando hoy", out.Items[0].Description)

	// waiting_end_is_null=false → solo los atendidos.
	yaAtendidos := false
	out, err = uc.List(context.Background(), p, repository.QueueEntryFilter{WaitingEndIsNull: &yaAtendidos}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "atendido hoy", out.Items[0].Description)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Patch — end_waiting y movimiento entre filas
// ──────────────────────────────────────────────────────────────────────────────

func TestEntryPatch_MarcarAtendido(t *testing.T) {
	uc, entries, queues, companies := buildEntryUC()
	propia := seedCompany(companies, orgA, "Clínica")
	fila := seedQueue(queues, propia, "Urgencias")
	inicio := time.Now().Add(-15 * time.Minute)
	turno := seedEntry(entries, fila, "Sr. Pérez", inicio, nil)
	p := principalDe(orgA, "change_queueentry")

	fin := time.Now()
	out, err := uc.Patch(context.Background(), p, turno.ID, dto.PatchQueueEntryRequest{EndWaiting: &fin})
	require.NoError(t, err)

	require.NotNil(t, out.EndWaiting)
	assert.True(t, out.EndWaiting.Equal(fin))
	assert.True(t, out.StartWaiting.Equal(inicio), "start_waiting nunca se edita")
}

// PATCH sin end_waiting no toca el campo; PUT con end_waiting nil sí lo borra.
func TestEntryUpdateVsPatch_SemanticaEndWaiting(t *testing.T) {
	uc, entries, queues, companies := buildEntryUC()
	propia := seedCompany(companies, orgA, "Clínica")
	fila := seedQueue(queues, propia, "Urgencias")
	fin := time.Now()
	turno := seedEntry(entries, fila, "Sr. Pérez", fin.Add(-time.Hour), &fin)
	p := principalDe(orgA, "change_queueentry")

	desc := "Sr. Pérez (prioritario)"
	out, err := uc.Patch(context.Background(), p, turno.ID, dto.PatchQueueEntryRequest{Description: &desc})
	require.NoError(t, err)
	assert.NotNil(t, out.EndWaiting, "PATCH sin end_waiting conserva el valor")

	out, err = uc.Update(context.Background(), p, turno.ID, dto.UpdateQueueEntryRequest{
		Queue:       fila.ID,
		Description: desc,
		EndWaiting:  nil,
	})
	require.NoError(t, err)
	assert.Nil(t, out.EndWaiting, "PUT con end_waiting nulo devuelve el turno a espera")
}

func TestEntryUpdate_MoverAFilaAjena_Forbidden(t *testing.T) {
	uc, entries, queues, companies := buildEntryUC()
	propia := seedCompany(companies, orgA, "Clínica")
	fila := seedQueue(queues, propia, "Urgencias")
	turno := seedEntry(entries, fila, "Sr. Pérez", time.Now(), nil)

	ajena := seedCompany(companies, orgB, "Banco")
	filaAjena := seedQueue(queues, ajena, "Caja")
	p := principalDe(orgA, "change_queueentry")

	_, err := uc.Update(context.Background(), p, turno.ID, dto.UpdateQueueEntryRequest{
		Queue:       filaAjena.ID,
		Description: "Sr. Pérez",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, fila.ID, entries.items[0].QueueID, "el turno no debe moverse")
}

func TestEntryGetByID_AjenoEquivaleAInexistente(t *testing.T) {
	uc, entries, queues, companies := buildEntryUC()
	ajena := seedCompany(companies, orgB, "Banco")
	filaAjena := seedQueue(queues, ajena, "Caja")
	turnoAjeno := seedEntry(entries, filaAjena, "ajeno", time.Now(), nil)
	p := principalDe(orgA, todosLosTokens()...)

	_, err := uc.GetByID(context.Background(), p, turnoAjeno.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntryDelete_ObjetivoAjeno_NotFoundYSobrevive(t *testing.T) {
	uc, entries, queues, companies := buildEntryUC()
	ajena := seedCompany(companies, orgB, "Banco")
	filaAjena := seedQueue(queues, ajena, "Caja")
	turnoAjeno := seedEntry(entries, filaAjena, "ajeno", time.Now(), nil)
	p := principalDe(orgA, todosLosTokens()...)

	err := uc.Delete(context.Background(), p, turnoAjeno.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, entries.items, 1, "el turno ajeno debe sobrevivir")
}

func TestEntryDelete_SinCapacidad_Forbidden(t *testing.T) {
	uc, entries, queues, companies := buildEntryUC()
	propia := seedCompany(companies, orgA, "Clínica")
	fila := seedQueue(queues, propia, "Urgencias")
	turno := seedEntry(entries, fila, "Sr. Pérez", time.Now(), nil)
	p := principalDe(orgA, "add_queueentry", "change_queueentry")

	err := uc.Delete(context.Background(), p, turno.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, entries.items, 1)
}
