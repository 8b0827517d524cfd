package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"

	"github.com/shiftlog/portal-auth/internal/adapter"
	"github.com/shiftlog/portal-auth/internal/config"
	"github.com/shiftlog/portal-auth/internal/crypto"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/internal/service"
	"github.com/shiftlog/portal-auth/internal/session"
	"github.com/shiftlog/portal-auth/internal/workers"
	"github.com/shiftlog/portal-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewPortalLogger("portal-auth")
	cfg, err := config.GetPortalConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	key, err := resolveKey(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve encryption key")
	}

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	store, err := session.NewSessionStorage(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session storage")
	}

	svc := service.NewAuthService(backend, crypto.NewSecretCipher(), key, store, log)

	ctx := context.Background()

	if cfg.Workers.PruneInterval > 0 {
		janitor := workers.NewSessionJanitor(store, cfg.Workers, log)
		if _, err := janitor.RunOnce(ctx); err != nil {
			log.Err(err).Msg("startup session prune failed")
		}

		jobs := workers.NewWorkers(janitor)
		jobs.Start(ctx)
		defer jobs.Stop()
	}

	if err := runCommand(ctx, svc, store, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func runCommand(ctx context.Context, svc service.AuthService, store session.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: portal [flags] login|federated-login|federated-login-token|whoami|logout")
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: portal login <username> <password>")
		}
		return report(svc.Login(ctx, args[1], args[2]))

	case "federated-login":
		if len(args) != 2 {
			return fmt.Errorf("usage: portal federated-login <email>")
		}
		return report(svc.FederatedLogin(ctx, args[1]))

	case "federated-login-token":
		if len(args) != 2 {
			return fmt.Errorf("usage: portal federated-login-token <id-token>")
		}
		return report(svc.FederatedLoginWithIDToken(ctx, args[1]))

	case "whoami":
		return whoami(ctx, store)

	case "logout":
		if err := svc.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func report(outcome models.Outcome) error {
	switch outcome.Status {
	case models.OutcomeAuthenticated:
		fmt.Printf("authenticated: company=%s role=%s\n", outcome.CompanyID, outcome.Role)
		return nil
	case models.OutcomeRejected:
		fmt.Printf("rejected: %s\n", outcome.Reason)
		os.Exit(1)
		return nil
	default:
		return outcome.Cause
	}
}

func whoami(ctx context.Context, store session.Store) error {
	companyID, found, err := store.Get(ctx, models.SessionCompanyID)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("not logged in")
		return nil
	}

	role, _ := store.GetOr(ctx, models.SessionAdminType, string(models.RoleCustomer))
	userName, _ := store.GetOr(ctx, models.SessionUserName, "")
	timeZone, _ := store.GetOr(ctx, models.SessionTimeZone, models.DefaultTimeZone)

	fmt.Printf("company=%s role=%s user=%s timezone=%s\n", companyID, role, userName, timeZone)
	return nil
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
