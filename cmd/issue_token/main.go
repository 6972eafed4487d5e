// Command issue_token emite un token Bearer para la API de facturas.
//
//	JWT_SECRET=... go run ./cmd/issue_token -client front-desk
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/invoicer/pkg/config"
	"github.com/jhoicas/invoicer/pkg/jwt"
	"github.com/jhoicas/invoicer/pkg/logger"
)

func main() {
	client := flag.String("client", "", "nombre del cliente de la API (obligatorio)")
	minutes := flag.Int("minutes", 0, "vigencia en minutos (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: os.Stderr})

	if *client == "" {
		flag.Usage()
		os.Exit(2)
	}
	exp := cfg.JWT.Expiration
	if *minutes > 0 {
		exp = *minutes
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *client, cfg.JWT.Issuer, exp)
	if err != nil {
		log.Fatal().Err(err).Msg("emitir token")
	}
	log.Info().Str("client", *client).Int("minutes", exp).Msg("token emitido")
	fmt.Println(token)
}
