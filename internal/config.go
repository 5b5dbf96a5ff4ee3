package internal

import (
	"flag"
	"fmt"
	"os"
)

var c *config

const (
	RunAddress  = "RUN_ADDRESS"
	DatabaseURI = "DATABASE_URI"
	JWTSecret   = "JWT_SECRET"
)

const defaultRunAddress = "localhost:8080"

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type config struct {
	RunAddress  string
	DatabaseURI string
	JWTSecret   string
}

func NewConfig() *config {
	c = new(config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s sslmode=disable",
		host, port, user, password)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.JWTSecret, "s", setEnvOrDefault(JWTSecret, "secret"), "secret for audit-token parsing")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
