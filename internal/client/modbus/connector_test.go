package modbus

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openheat/heatmon/internal/component"
	"github.com/openheat/heatmon/internal/interface/modbus/mock"
)

func TestReadRegistersAssemblesSlices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPI(ctrl)
	api.EXPECT().ReadInputRegisters(uint16(2300), uint16(2)).Return([]byte{0x00, 0xC8, 0x0F, 0xA0}, nil)
	api.EXPECT().ReadInputRegisters(uint16(2305), uint16(1)).Return([]byte{0x00, 0x07}, nil)

	conn := NewConnector(api, nil)
	slices := []component.RegisterSlice{
		{AbsoluteAddress: 2300, RelativeStart: 0, Count: 2},
		{AbsoluteAddress: 2305, RelativeStart: 5, Count: 1},
	}

	data, err := conn.ReadRegisters(component.KindInput, slices, 6)
	require.NoError(t, err)
	assert.Equal(t, []uint16{200, 4000, 0, 0, 0, 7}, data)
}

func TestReadRegistersSliceFailureFailsBank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPI(ctrl)
	api.EXPECT().ReadHoldingRegisters(uint16(33400), uint16(1)).Return(nil, errors.New("timeout"))

	conn := NewConnector(api, nil)
	slices := []component.RegisterSlice{{AbsoluteAddress: 33400, RelativeStart: 0, Count: 1}}

	_, err := conn.ReadRegisters(component.KindHolding, slices, 1)
	require.Error(t, err)
}

func TestReadRegistersRejectsMalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slices := []component.RegisterSlice{{AbsoluteAddress: 100, RelativeStart: 0, Count: 2}}

	t.Run("odd byte count", func(t *testing.T) {
		api := mock.NewMockAPI(ctrl)
		api.EXPECT().ReadInputRegisters(uint16(100), uint16(2)).Return([]byte{0x01, 0x02, 0x03}, nil)
		_, err := NewConnector(api, nil).ReadRegisters(component.KindInput, slices, 2)
		require.Error(t, err)
	})

	t.Run("short register count", func(t *testing.T) {
		api := mock.NewMockAPI(ctrl)
		api.EXPECT().ReadInputRegisters(uint16(100), uint16(2)).Return([]byte{0x01, 0x02}, nil)
		_, err := NewConnector(api, nil).ReadRegisters(component.KindInput, slices, 2)
		require.Error(t, err)
	})
}

func TestReadRegistersEmptyGeometry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewConnector(mock.NewMockAPI(ctrl), nil)
	_, err := conn.ReadRegisters(component.KindInput, nil, 0)
	require.Error(t, err)
}

func TestWriteRegisters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPI(ctrl)
	api.EXPECT().WriteSingleRegister(uint16(33400), uint16(42)).Return(nil, nil)
	api.EXPECT().WriteMultipleRegisters(uint16(33410), uint16(2), []byte{0x00, 0x01, 0x00, 0x00}).Return(nil, nil)

	conn := NewConnector(api, nil)
	require.NoError(t, conn.WriteRegisters(33400, []uint16{42}))
	require.NoError(t, conn.WriteRegisters(33410, []uint16{0x0001, 0x0000}))
	require.Error(t, conn.WriteRegisters(33420, nil))
}
