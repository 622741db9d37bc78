package domain

import "context"

const (
	StateInProgress = "em_andamento"
	StateFinished   = "finalizada"

	WinnerBlue = "azul"
	WinnerRed  = "vermelho"
	WinnerTie  = "empatado"
)

const (
	DefaultUnitWeight         = 1.0
	DefaultStrategyMultiplier = 1.0
	ChampionMultiplier        = 1.1
)

// UnitWeights maps a minion type to its push weight. Unknown types weigh DefaultUnitWeight.
var UnitWeights = map[string]float64{
	"guerreiro": 1.2,
	"mago":      1.5,
	"catapulta": 3.0,
}

// StrategyMultipliers maps a side strategy to its push multiplier.
// Unknown or empty strategies use DefaultStrategyMultiplier.
var StrategyMultipliers = map[string]float64{
	"freeze":    0.8,
	"slow_push": 1.2,
	"fast_push": 1.5,
}

func UnitWeight(tipo string) float64 {
	if w, ok := UnitWeights[tipo]; ok {
		return w
	}
	return DefaultUnitWeight
}

func StrategyMultiplier(estrategia string) float64 {
	if m, ok := StrategyMultipliers[estrategia]; ok {
		return m
	}
	return DefaultStrategyMultiplier
}

type Wave struct {
	ID                   int64   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	LaneAzul             string  `gorm:"type:varchar(20);column:lane_azul" json:"lane_azul"`
	TipoWaveAzul         string  `gorm:"type:varchar(50);column:tipo_wave_azul" json:"tipo_wave_azul"`
	CampeaoAzul          *string `gorm:"type:varchar(100);column:campeao_azul" json:"campeao_azul"`
	EstrategiaAzul       string  `gorm:"type:varchar(20);column:estrategia_azul" json:"estrategia_azul"`
	MinionsTotalAzul     int     `gorm:"type:int;column:minions_total_azul" json:"minions_total_azul"`
	LaneVermelho         string  `gorm:"type:varchar(20);column:lane_vermelho" json:"lane_vermelho"`
	TipoWaveVermelho     string  `gorm:"type:varchar(50);column:tipo_wave_vermelho" json:"tipo_wave_vermelho"`
	CampeaoVermelho      *string `gorm:"type:varchar(100);column:campeao_vermelho" json:"campeao_vermelho"`
	EstrategiaVermelho   string  `gorm:"type:varchar(20);column:estrategia_vermelho" json:"estrategia_vermelho"`
	MinionsTotalVermelho int     `gorm:"type:int;column:minions_total_vermelho" json:"minions_total_vermelho"`
	Estado               string  `gorm:"type:varchar(20);not null;column:estado" json:"estado"`
	Vencedor             *string `gorm:"type:varchar(20);column:vencedor" json:"vencedor"`
	IDUsuario            *int64  `gorm:"column:id_usuario" json:"id_usuario"`
}

func (w Wave) HasChampionBlue() bool {
	return w.CampeaoAzul != nil && *w.CampeaoAzul != ""
}

func (w Wave) HasChampionRed() bool {
	return w.CampeaoVermelho != nil && *w.CampeaoVermelho != ""
}

type WaveRequest struct {
	LaneAzul             string  `json:"lane_azul"`
	TipoWaveAzul         string  `json:"tipo_wave_azul"`
	CampeaoAzul          *string `json:"campeao_azul"`
	EstrategiaAzul       string  `json:"estrategia_azul"`
	MinionsTotalAzul     int     `json:"minions_total_azul"`
	LaneVermelho         string  `json:"lane_vermelho"`
	TipoWaveVermelho     string  `json:"tipo_wave_vermelho"`
	CampeaoVermelho      *string `json:"campeao_vermelho"`
	EstrategiaVermelho   string  `json:"estrategia_vermelho"`
	MinionsTotalVermelho int     `json:"minions_total_vermelho"`
	Estado               string  `json:"estado"`
	Vencedor             *string `json:"vencedor"`
	IDUsuario            *int64  `json:"id_usuario"`
}

func (r WaveRequest) ToWave() Wave {
	return Wave{
		LaneAzul:             r.LaneAzul,
		TipoWaveAzul:         r.TipoWaveAzul,
		CampeaoAzul:          r.CampeaoAzul,
		EstrategiaAzul:       r.EstrategiaAzul,
		MinionsTotalAzul:     r.MinionsTotalAzul,
		LaneVermelho:         r.LaneVermelho,
		TipoWaveVermelho:     r.TipoWaveVermelho,
		CampeaoVermelho:      r.CampeaoVermelho,
		EstrategiaVermelho:   r.EstrategiaVermelho,
		MinionsTotalVermelho: r.MinionsTotalVermelho,
		Estado:               r.Estado,
		Vencedor:             r.Vencedor,
		IDUsuario:            r.IDUsuario,
	}
}

type SimulationResult struct {
	WaveID       int64   `json:"id_wave"`
	PushAzul     float64 `json:"push_azul"`
	PushVermelho float64 `json:"push_vermelho"`
	Vencedor     string  `json:"vencedor"`
}

type WaveRepository interface {
	Create(ctx context.Context, wave *Wave) error
	ListAll(ctx context.Context) ([]Wave, error)
	GetByID(ctx context.Context, id int64) (Wave, bool, error)
	Update(ctx context.Context, id int64, wave Wave) error
	Delete(ctx context.Context, id int64) error
	SetOutcome(ctx context.Context, id int64, winner string) error
}

// ResultCache keeps the latest simulation result of each wave.
type ResultCache interface {
	Store(ctx context.Context, result SimulationResult) error
	Load(ctx context.Context, waveID int64) (SimulationResult, bool, error)
	Evict(ctx context.Context, waveID int64) error
}
