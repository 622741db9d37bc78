package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinionRequestToMinion(t *testing.T) {
	zeroRange, zeroWave := 0, int64(0)
	rangeMinion, waveID := 550, int64(3)

	t.Run("Zero Range And Wave Become Null", func(t *testing.T) {
		m := MinionRequest{Tipo: "mago", RangeMinion: &zeroRange, IDWave: &zeroWave}.ToMinion()
		assert.Nil(t, m.RangeMinion)
		assert.Nil(t, m.IDWave)
	})

	t.Run("Set Values Are Kept", func(t *testing.T) {
		m := MinionRequest{Tipo: "mago", RangeMinion: &rangeMinion, IDWave: &waveID}.ToMinion()
		assert.Equal(t, 550, *m.RangeMinion)
		assert.Equal(t, int64(3), *m.IDWave)
	})
}

func TestNilIfZero(t *testing.T) {
	empty, name := "", "azul"

	assert.Nil(t, NilIfZero[string](nil))
	assert.Nil(t, NilIfZero(&empty))
	assert.Equal(t, &name, NilIfZero(&name))
}
