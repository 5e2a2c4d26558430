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
		ProvideMqttClient,
	)
	return nil, nil // wire will generate the result
}
