package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	modbusClient "github.com/openheat/heatmon/internal/client/modbus"
	mqttClient "github.com/openheat/heatmon/internal/client/mqtt"
	"github.com/openheat/heatmon/internal/component"
	"github.com/openheat/heatmon/internal/config"
	"github.com/openheat/heatmon/internal/ha"
	modbusIface "github.com/openheat/heatmon/internal/interface/modbus"
	mqttIface "github.com/openheat/heatmon/internal/interface/mqtt"
)

type MainHandler struct {
	Log        *zap.Logger
	Cfg        *config.Config
	MQTT       mqttIface.Client
	Modbus     modbusIface.Client
	Connector  component.Connector
	Components []*component.Component
}

func NewMainHandler(
	logger *zap.Logger,
	cfg *config.Config,
	mqtt mqttIface.Client,
	mb modbusIface.Client,
	conn component.Connector,
	components []*component.Component,
) *MainHandler {
	return &MainHandler{
		Log:        logger,
		Cfg:        cfg,
		MQTT:       mqtt,
		Modbus:     mb,
		Connector:  conn,
		Components: components,
	}
}

func (h *MainHandler) Close() {
	if h.MQTT != nil {
		h.MQTT.Close(250)
	}
	if h.Modbus != nil {
		if err := h.Modbus.Close(); err != nil {
			h.Log.Warn("modbus close", zap.Error(err))
		}
	}
}

// Handle initializes the register map, announces the device and then reads
// and publishes on the configured interval until the process dies.
func (h *MainHandler) Handle() error {
	for _, c := range h.Components {
		if err := c.Initialize(h.Connector); err != nil {
			return fmt.Errorf("initialize %s: %w", c.Name(), err)
		}
	}

	if err := h.publishMeta(); err != nil {
		h.Log.Warn("meta publish failed", zap.Error(err))
	}

	interval := time.Duration(h.Cfg.Poll.IntervalSec) * time.Second
	h.Log.Info("adapter up",
		zap.String("device", h.Cfg.Device.ID),
		zap.Int("components", len(h.Components)),
		zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		h.PublishOnce(time.Now().Unix())
	}
	return nil
}

func (h *MainHandler) publishMeta() error {
	meta := ha.Meta{
		DeviceID: h.Cfg.Device.ID,
		Model:    h.Cfg.Device.Model,
		Area:     h.Cfg.Device.Area,
	}
	for i, c := range h.Components {
		units := fieldUnits(h.Cfg.Components[i])
		for _, nv := range allValues(c) {
			meta.Sensors = append(meta.Sensors, ha.SensorMeta{
				Component: c.Name(),
				Field:     nv.Name,
				Unit:      units[nv.Name],
			})
		}
		for _, nc := range c.Calculators() {
			meta.Sensors = append(meta.Sensors, ha.SensorMeta{
				Component: c.Name(),
				Field:     nc.Name,
			})
		}
	}
	return h.publishJSON(ha.TopicMeta(h.Cfg.Device.ID), meta, true)
}

// ---- wire providers ----

func ProvideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func ProvideConfig() (*config.Config, error) {
	path := os.Getenv("HEATMON_CONFIG")
	if path == "" {
		path = "heatmon.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func ProvideMqttClient() (mqttIface.Client, error) {
	return mqttClient.NewClient()
}

func ProvideModbusClient(cfg *config.Config) (modbusIface.Client, error) {
	return modbusClient.NewClient(modbusClient.Config{
		Mode:      cfg.Transport.Mode,
		Port:      cfg.Transport.Port,
		Baud:      cfg.Transport.Baud,
		DataBits:  cfg.Transport.DataBits,
		Parity:    cfg.Transport.Parity,
		StopBits:  cfg.Transport.StopBits,
		TCPAddr:   cfg.Transport.TCPAddr,
		SlaveID:   cfg.Transport.SlaveID,
		TimeoutMs: cfg.Transport.TimeoutMs,
	})
}

func ProvideConnector(mb modbusIface.Client, logger *zap.Logger) component.Connector {
	return modbusClient.NewConnector(mb, logger)
}

func ProvideComponents(cfg *config.Config, logger *zap.Logger) []*component.Component {
	return config.Build(cfg, logger)
}
