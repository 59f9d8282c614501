package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/stock"
)

func TestUnitEquivalent(t *testing.T) {
	// En cajas: cajas * unidades-por-caja
	assert.Equal(t, int64(30), stock.UnitEquivalent(3, true, 10))
	// En unidades: la cantidad tal cual, la caja no interviene
	assert.Equal(t, int64(35), stock.UnitEquivalent(35, false, 10))
	// Caja de una unidad: equivalencia neutra
	assert.Equal(t, int64(7), stock.UnitEquivalent(7, true, 1))
}

func TestMovementUnits_RespetaBanderaDeCajas(t *testing.T) {
	item := &entity.ItemType{BoxQuantity: 12}

	enCajas := &entity.Movement{Quantity: 2, IsBoxes: true}
	enUnidades := &entity.Movement{Quantity: 2, IsBoxes: false}

	assert.Equal(t, int64(24), stock.MovementUnits(enCajas, item))
	assert.Equal(t, int64(2), stock.MovementUnits(enUnidades, item))
}

func TestMovementValue_UnidadesPorPrecio(t *testing.T) {
	item := &entity.ItemType{
		BoxQuantity: 10,
		UnitPrice:   decimal.RequireFromString("2.50"),
	}
	mov := &entity.Movement{Quantity: 3, IsBoxes: true} // 30 unidades

	valor := stock.MovementValue(mov, item)
	assert.True(t, valor.Equal(decimal.RequireFromString("75.00")),
		"30 unidades a 2.50 deben valer 75.00, no %s", valor)
}

func TestSign(t *testing.T) {
	assert.Equal(t, int64(1), stock.Sign(entity.KindAddition))
	assert.Equal(t, int64(-1), stock.Sign(entity.KindRemoval))
}
