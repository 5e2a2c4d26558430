//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
)

func InitMainHandler() (*MainHandler, error) {
	wire.Build(
		NewMainHandler,
		ProvideLogger,
		ProvideConfig,
		ProvideMqttClient,
		ProvideModbusClient,
		ProvideConnector,
		ProvideComponents,
	)
	return nil, nil // wire will generate the result
}
