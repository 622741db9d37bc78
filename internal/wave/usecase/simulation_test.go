package usecase

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"lane_wars/domain"
)

func strPtr(v string) *string { return &v }

func side(lado string, tipos ...string) []domain.Minion {
	minions := make([]domain.Minion, 0, len(tipos))
	for _, tipo := range tipos {
		minions = append(minions, domain.Minion{Tipo: tipo, Lado: lado})
	}
	return minions
}

func TestSimulatePush(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	tests := []struct {
		name    string
		wave    domain.Wave
		minions []domain.Minion
		want    domain.SimulationResult
	}{
		{
			name:    "No Minions Is A Tie",
			wave:    domain.Wave{ID: 1},
			minions: nil,
			want:    domain.SimulationResult{WaveID: 1, Vencedor: domain.WinnerTie},
		},
		{
			name:    "Catapult Against Two Mages Ties",
			wave:    domain.Wave{ID: 2},
			minions: append(side("azul", "catapulta"), side("vermelho", "mago", "mago")...),
			want:    domain.SimulationResult{WaveID: 2, PushAzul: 3.0, PushVermelho: 3.0, Vencedor: domain.WinnerTie},
		},
		{
			name:    "Fast Push Breaks The Tie",
			wave:    domain.Wave{ID: 3, EstrategiaVermelho: "fast_push"},
			minions: append(side("azul", "catapulta"), side("vermelho", "mago", "mago")...),
			want:    domain.SimulationResult{WaveID: 3, PushAzul: 3.0, PushVermelho: 4.5, Vencedor: domain.WinnerRed},
		},
		{
			name:    "Champion Adds Ten Percent",
			wave:    domain.Wave{ID: 4, CampeaoAzul: strPtr("Garen")},
			minions: append(side("azul", "catapulta"), side("vermelho", "mago", "mago")...),
			want:    domain.SimulationResult{WaveID: 4, PushAzul: 3.3, PushVermelho: 3.0, Vencedor: domain.WinnerBlue},
		},
		{
			name:    "Empty Champion Name Is Ignored",
			wave:    domain.Wave{ID: 5, CampeaoVermelho: strPtr("")},
			minions: side("vermelho", "guerreiro"),
			want:    domain.SimulationResult{WaveID: 5, PushVermelho: 1.2, Vencedor: domain.WinnerRed},
		},
		{
			name:    "Only Blue Minions",
			wave:    domain.Wave{ID: 6, EstrategiaAzul: "freeze"},
			minions: side("azul", "melee", "guerreiro"),
			want:    domain.SimulationResult{WaveID: 6, PushAzul: 2.2 * 0.8, Vencedor: domain.WinnerBlue},
		},
		{
			name:    "Unknown Side Is Excluded",
			wave:    domain.Wave{ID: 7},
			minions: append(side("neutro", "catapulta", "catapulta"), side("vermelho", "melee")...),
			want:    domain.SimulationResult{WaveID: 7, PushVermelho: 1.0, Vencedor: domain.WinnerRed},
		},
		{
			name: "Strategy And Champion Stack",
			wave: domain.Wave{ID: 8, EstrategiaAzul: "slow_push", CampeaoAzul: strPtr("Ashe"), EstrategiaVermelho: "unknown"},
			minions: append(side("azul", "mago", "mago"),
				side("vermelho", "catapulta", "guerreiro")...),
			want: domain.SimulationResult{WaveID: 8, PushAzul: 3.0 * 1.2 * 1.1, PushVermelho: 4.2, Vencedor: domain.WinnerRed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimulatePush(tt.wave, tt.minions)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("SimulatePush() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSimulatePushChampionExact(t *testing.T) {
	got := SimulatePush(domain.Wave{CampeaoAzul: strPtr("Garen")}, side("azul", "catapulta"))
	assert.InDelta(t, 3.3, got.PushAzul, 1e-9)
	assert.Equal(t, domain.WinnerBlue, got.Vencedor)
}

func TestSimulatePushIsDeterministic(t *testing.T) {
	wave := domain.Wave{ID: 9, EstrategiaAzul: "fast_push", CampeaoVermelho: strPtr("Darius")}
	minions := append(side("azul", "mago", "guerreiro"), side("vermelho", "catapulta")...)

	first := SimulatePush(wave, minions)
	second := SimulatePush(wave, minions)
	assert.Equal(t, first, second)
}
