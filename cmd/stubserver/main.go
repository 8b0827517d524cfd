package main

import (
	"encoding/base64"
	"fmt"

	"github.com/shiftlog/portal-auth/internal/config"
	"github.com/shiftlog/portal-auth/internal/crypto"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/internal/server"
	"github.com/shiftlog/portal-auth/internal/stub"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("portal-stub")
	cfg, err := config.GetStubConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	key, err := resolveKey(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve encryption key")
	}

	handler, err := stub.NewHandler(crypto.NewSecretCipher(), key, stub.DefaultFixtures(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("seed stub directory")
	}

	srv, err := server.NewServer(handler.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	srv.RunServer()
}

func resolveKey(app config.PortalApp) ([]byte, error) {
	if app.EncryptionKey != "" {
		return crypto.KeyFromBase64(app.EncryptionKey)
	}

	salt, err := base64.StdEncoding.DecodeString(app.KeySalt)
	if err != nil {
		return nil, fmt.Errorf("decode key salt: %w", err)
	}

	return crypto.DeriveKey(app.KeyPassphrase, salt), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
