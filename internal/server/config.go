package server

type Config struct {
	Addr     string `envconfig:"CLSDEMO_ADDR" default:":8787"`
	GRPCAddr string `envconfig:"CLSDEMO_GRPC_ADDR" default:":8788"`
	MaxConns int    `envconfig:"CLSDEMO_MAX_CONNS" default:"256"`
}
