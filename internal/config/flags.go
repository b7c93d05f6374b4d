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
//	-a control API address in format [host]:[port]
//	-endpoint calendar delta endpoint URL
//	-bearer-token static bearer credential
//	-state-backend sync state backend ("file" or "sqlite")
//	-state-path sync state file path or SQLite DSN
//	-state-namespace key under which sync state is persisted
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-sync-interval background sync interval (e.g., "5m")
//	-max-pages cap on pages fetched per walk
//	-window-past bootstrap window months into the past
//	-window-future bootstrap window months into the future
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var deltaEndpoint string
	var bearerToken string
	var stateBackend string
	var statePath string
	var stateNamespace string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var maxPages int
	var windowPast int
	var windowFuture int
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Control API net address host:port")
	flag.StringVar(&deltaEndpoint, "endpoint", "", "Calendar delta endpoint URL")
	flag.StringVar(&bearerToken, "bearer-token", "", "Static bearer credential")
	flag.StringVar(&stateBackend, "state-backend", "", "Sync state backend: file or sqlite")
	flag.StringVar(&statePath, "state-path", "", "Sync state file path or SQLite DSN")
	flag.StringVar(&stateNamespace, "state-namespace", "", "Sync state namespace key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.IntVar(&maxPages, "max-pages", 0, "Max pages fetched per walk")
	flag.IntVar(&windowPast, "window-past", 0, "Bootstrap window months into the past")
	flag.IntVar(&windowFuture, "window-future", 0, "Bootstrap window months into the future")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			StateNamespace: stateNamespace,
		},
		Adapter: Adapter{
			DeltaEndpoint:  deltaEndpoint,
			RequestTimeout: requestTimeout,
			BearerToken:    bearerToken,
		},
		Storage: Storage{
			State: State{
				Backend: stateBackend,
				Path:    statePath,
			},
		},
		Sync: Sync{
			WindowPastMonths:   windowPast,
			WindowFutureMonths: windowFuture,
			MaxPages:           maxPages,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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
