package usecase

import "lane_wars/domain"

// SimulatePush scores both sides of a wave from its minions and picks the
// winner. Minions whose lado is neither azul nor vermelho are ignored.
func SimulatePush(wave domain.Wave, minions []domain.Minion) domain.SimulationResult {
	var pushBlue, pushRed float64
	for _, m := range minions {
		switch m.Lado {
		case domain.SideBlue:
			pushBlue += domain.UnitWeight(m.Tipo)
		case domain.SideRed:
			pushRed += domain.UnitWeight(m.Tipo)
		}
	}

	pushBlue *= domain.StrategyMultiplier(wave.EstrategiaAzul)
	pushRed *= domain.StrategyMultiplier(wave.EstrategiaVermelho)

	if wave.HasChampionBlue() {
		pushBlue *= domain.ChampionMultiplier
	}
	if wave.HasChampionRed() {
		pushRed *= domain.ChampionMultiplier
	}

	return domain.SimulationResult{
		WaveID:       wave.ID,
		PushAzul:     pushBlue,
		PushVermelho: pushRed,
		Vencedor:     pickWinner(pushBlue, pushRed),
	}
}

func pickWinner(pushBlue, pushRed float64) string {
	switch {
	case pushBlue > pushRed:
		return domain.WinnerBlue
	case pushRed > pushBlue:
		return domain.WinnerRed
	default:
		return domain.WinnerTie
	}
}
