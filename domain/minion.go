package domain

import "context"

const (
	SideBlue = "azul"
	SideRed  = "vermelho"
)

type Minion struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Tipo        string `gorm:"type:varchar(50);not null;column:tipo" json:"tipo"`
	Vida        int    `gorm:"type:int;column:vida" json:"vida"`
	Dano        int    `gorm:"type:int;column:dano" json:"dano"`
	Defesa      int    `gorm:"type:int;column:defesa" json:"defesa"`
	Velocidade  int    `gorm:"type:int;column:velocidade" json:"velocidade"`
	RangeMinion *int   `gorm:"type:int;column:range_minion" json:"range_minion"`
	Lado        string `gorm:"type:varchar(20);not null;column:lado" json:"lado"`
	IDWave      *int64 `gorm:"column:id_wave;index" json:"id_wave"`
}

// MinionRequest carries the writable fields of a minion for create and update.
type MinionRequest struct {
	Tipo        string `json:"tipo"`
	Vida        int    `json:"vida"`
	Dano        int    `json:"dano"`
	Defesa      int    `json:"defesa"`
	Velocidade  int    `json:"velocidade"`
	RangeMinion *int   `json:"range_minion"`
	Lado        string `json:"lado"`
	IDWave      *int64 `json:"id_wave"`
}

func (r MinionRequest) ToMinion() Minion {
	return Minion{
		Tipo:        r.Tipo,
		Vida:        r.Vida,
		Dano:        r.Dano,
		Defesa:      r.Defesa,
		Velocidade:  r.Velocidade,
		RangeMinion: NilIfZero(r.RangeMinion),
		Lado:        r.Lado,
		IDWave:      NilIfZero(r.IDWave),
	}
}

type MinionRepository interface {
	Create(ctx context.Context, minion *Minion) error
	ListAll(ctx context.Context) ([]Minion, error)
	GetByID(ctx context.Context, id int64) (Minion, bool, error)
	Update(ctx context.Context, id int64, minion Minion) error
	Delete(ctx context.Context, id int64) error
	ListByWave(ctx context.Context, waveID int64) ([]Minion, error)
}

// NilIfZero treats an explicit zero the same as an absent value, so 0 and ""
// are stored as NULL.
func NilIfZero[T comparable](v *T) *T {
	var zero T
	if v == nil || *v == zero {
		return nil
	}
	return v
}
