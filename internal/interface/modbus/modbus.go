package modbus

// API is the subset of the goburrow client the connector relies on.
// Results are raw big-endian register bytes exactly as the protocol
// delivers them.
type API interface {
	ReadInputRegisters(address, quantity uint16) (results []byte, err error)
	ReadHoldingRegisters(address, quantity uint16) (results []byte, err error)
	WriteSingleRegister(address, value uint16) (results []byte, err error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) (results []byte, err error)
}

type Client interface {
	API
	Close() error
}
