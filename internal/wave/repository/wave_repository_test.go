package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lane_wars/domain"
	"lane_wars/internal/service/logger"
)

var waveColumns = []string{
	"id",
	"lane_azul", "tipo_wave_azul", "campeao_azul", "estrategia_azul", "minions_total_azul",
	"lane_vermelho", "tipo_wave_vermelho", "campeao_vermelho", "estrategia_vermelho", "minions_total_vermelho",
	"estado", "vencedor", "id_usuario",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	logger.DBLogger = zap.NewNop()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func strPtr(v string) *string { return &v }

func TestCreateWave(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewWaveRepository(gormDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		wave := &domain.Wave{
			LaneAzul: "mid", TipoWaveAzul: "canhao", CampeaoAzul: strPtr("Garen"), EstrategiaAzul: "fast_push", MinionsTotalAzul: 6,
			LaneVermelho: "mid", TipoWaveVermelho: "normal", EstrategiaVermelho: "freeze", MinionsTotalVermelho: 6,
			Estado: domain.StateInProgress,
		}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "waves" ("lane_azul","tipo_wave_azul","campeao_azul","estrategia_azul","minions_total_azul","lane_vermelho","tipo_wave_vermelho","campeao_vermelho","estrategia_vermelho","minions_total_vermelho","estado","vencedor","id_usuario") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING "id"`)).
			WithArgs("mid", "canhao", "Garen", "fast_push", 6, "mid", "normal", nil, "freeze", 6, "em_andamento", nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(ctx, wave))
		assert.Equal(t, int64(7), wave.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Store Error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "waves"`)).WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := repo.Create(ctx, &domain.Wave{Estado: domain.StateInProgress})
		assert.ErrorIs(t, err, domain.ErrStore)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListWaves(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewWaveRepository(gormDB)
	ctx := context.Background()

	rows := sqlmock.NewRows(waveColumns).
		AddRow(1, "top", "normal", nil, "", 3, "top", "normal", nil, "", 3, "em_andamento", nil, nil).
		AddRow(2, "bot", "super", "Jinx", "slow_push", 4, "bot", "normal", nil, "freeze", 4, "finalizada", "azul", 9)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "waves"`)).WillReturnRows(rows)

	waves, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, waves, 2)
	assert.False(t, waves[0].HasChampionBlue())
	assert.Nil(t, waves[0].Vencedor)
	assert.Equal(t, "azul", *waves[1].Vencedor)
	assert.Equal(t, int64(9), *waves[1].IDUsuario)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "waves"`)).WillReturnError(errors.New("database error"))
	_, err = repo.ListAll(ctx)
	assert.ErrorIs(t, err, domain.ErrStore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWaveByID(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewWaveRepository(gormDB)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT * FROM "waves" WHERE id = $1 ORDER BY "waves"."id" LIMIT $2`)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(2, 1).
			WillReturnRows(sqlmock.NewRows(waveColumns).
				AddRow(2, "bot", "super", "Jinx", "slow_push", 4, "bot", "normal", nil, "freeze", 4, "em_andamento", nil, nil))

		wave, found, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, wave.HasChampionBlue())
		assert.Equal(t, "freeze", wave.EstrategiaVermelho)
	})

	t.Run("Absent", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(404, 1).WillReturnRows(sqlmock.NewRows(waveColumns))

		_, found, err := repo.GetByID(ctx, 404)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Fail - DB Error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(3, 1).WillReturnError(errors.New("database error"))

		_, _, err := repo.GetByID(ctx, 3)
		assert.ErrorIs(t, err, domain.ErrStore)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWave(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewWaveRepository(gormDB)
	ctx := context.Background()
	owner := int64(7)

	// id_usuario is absent from the statement even when the wave carries one.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "waves" SET "campeao_azul"=$1,"campeao_vermelho"=$2,"estado"=$3,"estrategia_azul"=$4,"estrategia_vermelho"=$5,"lane_azul"=$6,"lane_vermelho"=$7,"minions_total_azul"=$8,"minions_total_vermelho"=$9,"tipo_wave_azul"=$10,"tipo_wave_vermelho"=$11,"vencedor"=$12 WHERE id = $13`)).
		WithArgs(nil, "Darius", "finalizada", "", "fast_push", "top", "top", 3, 5, "normal", "canhao", "vermelho", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(ctx, 4, domain.Wave{
		LaneAzul: "top", TipoWaveAzul: "normal", MinionsTotalAzul: 3,
		LaneVermelho: "top", TipoWaveVermelho: "canhao", CampeaoVermelho: strPtr("Darius"), EstrategiaVermelho: "fast_push", MinionsTotalVermelho: 5,
		Estado: domain.StateFinished, Vencedor: strPtr("vermelho"), IDUsuario: &owner,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWave(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewWaveRepository(gormDB)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "waves" WHERE id = $1`)).
		WithArgs(8).
		WillReturnError(errors.New("database error"))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Delete(ctx, 8), domain.ErrStore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetOutcome(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewWaveRepository(gormDB)
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE "waves" SET "estado"=$1,"vencedor"=$2 WHERE id = $3`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs("finalizada", "empatado", 5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.SetOutcome(ctx, 5, domain.WinnerTie))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - DB Error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.SetOutcome(ctx, 5, domain.WinnerBlue), domain.ErrStore)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
