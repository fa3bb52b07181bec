package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server base address the client submits to
//	-listen receiver listen address in format [host]:[port]
//	-request-timeout request timeout (e.g., "10s")
//	-assignments-path device assignments endpoint
//	-config-path configuration endpoint
//	-encoding payload encoding: json or form
//	-toast-duration notification lifetime (e.g., "3s")
//	-i/-inventory inventory YAML file
//	-batch submit inventory assignments without the UI
//	-log-file client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var listenAddress NetAddress
	var serverAddress string
	var requestTimeout time.Duration
	var assignmentsPath, configPath string
	var encoding string
	var toastDuration time.Duration
	var inventoryPath string
	var batch bool
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("dingus-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&serverAddress, "a", "", "Server base address")
	fs.Var(&listenAddress, "listen", "Receiver listen address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&assignmentsPath, "assignments-path", "", "Device assignments endpoint")
	fs.StringVar(&configPath, "config-path", "", "Configuration endpoint")
	fs.StringVar(&encoding, "encoding", "", "Payload encoding: json or form")
	fs.DurationVar(&toastDuration, "toast-duration", 0, "Notification lifetime (e.g., 3s)")
	fs.StringVar(&inventoryPath, "i", "", "Inventory YAML file")
	fs.StringVar(&inventoryPath, "inventory", "", "Inventory YAML file (alias)")
	fs.BoolVar(&batch, "batch", false, "Submit inventory assignments and exit")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Encoding:      encoding,
			ToastDuration: toastDuration,
			InventoryPath: inventoryPath,
			Batch:         batch,
		},
		Adapter: Adapter{
			HTTPAddress:     serverAddress,
			RequestTimeout:  requestTimeout,
			AssignmentsPath: assignmentsPath,
			ConfigPath:      configPath,
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log:          Log{FilePath: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (all interfaces).
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
