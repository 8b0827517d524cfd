package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a stub server address in format [host]:[port]
//	-base-url portal backend base URL
//	-d session database path
//	-encryption-key base64 symmetric key for stored passwords
//	-key-passphrase passphrase a key is derived from
//	-key-salt base64 salt for key derivation
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-prune-interval session janitor interval (e.g., "10m")
//	-session-ttl idle session age before pruning (e.g., "168h")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var baseURL string
	var databaseDSN string
	var encryptionKey string
	var keyPassphrase string
	var keySalt string
	var requestTimeout time.Duration
	var pruneInterval time.Duration
	var sessionTTL time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&baseURL, "base-url", "", "Portal backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Session database path")
	flag.StringVar(&encryptionKey, "encryption-key", "", "Base64 symmetric key")
	flag.StringVar(&keyPassphrase, "key-passphrase", "", "Key derivation passphrase")
	flag.StringVar(&keySalt, "key-salt", "", "Base64 key derivation salt")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&pruneInterval, "prune-interval", 0, "Session janitor interval (e.g., 10m)")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Idle session age before pruning (e.g., 168h)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			EncryptionKey: encryptionKey,
			KeyPassphrase: keyPassphrase,
			KeySalt:       keySalt,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			PruneInterval: pruneInterval,
			SessionTTL:    sessionTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
