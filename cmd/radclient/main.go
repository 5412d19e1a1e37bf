package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/coldwrap/radius"
)

// fileConfig holds the subset of client settings radclient will load from a -config YAML
// file before CLI flags are applied on top, matching the precedence the teacher's
// pkg/client.ConfigManager gives a config file relative to programmatic overrides.
type fileConfig struct {
	Server    string `yaml:"server"`
	Action    string `yaml:"action"`
	Secret    string `yaml:"secret"`
	TimeoutMS int    `yaml:"timeout_ms"`
	Retries   int    `yaml:"retries"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

func parseAttributes(scanner *bufio.Scanner) (map[string]interface{}, error) {
	attributes := make(map[string]interface{})

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid attribute format: %q (expected 'Name = value')", line)
		}

		name := strings.TrimSpace(parts[0])
		valueStr := strings.TrimSpace(parts[1])

		var value interface{}
		if num, err := strconv.ParseUint(valueStr, 10, 32); err == nil {
			value = uint32(num)
		} else {
			value = valueStr
		}

		attributes[name] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return attributes, nil
}

func printAttributes(pkt *radius.Packet) {
	for _, a := range pkt.Attributes {
		if a.Def != nil {
			fmt.Printf("\t%s = %s\n", a.Def.Name, a.AsString())
			continue
		}
		fmt.Printf("\t[vendor %d] %d = %s\n", a.VendorID, a.Code, a.AsString())
	}
}

func main() {
	configPath := flag.String("config", "", "YAML config file providing defaults for the flags below")
	server := flag.String("server", "", "RADIUS server address (host:port, default port 3799)")
	action := flag.String("action", "", "Action: coa or disconnect (default coa)")
	secret := flag.String("secret", "", "Shared secret (default testing123)")
	timeoutMS := flag.Int("timeout", 0, "Socket timeout in milliseconds (default 3000)")
	retries := flag.Int("retries", 0, "Number of send attempts (default 1)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -server <host[:port]> [-action <coa|disconnect>] [-secret <secret>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nAttributes are read from stdin, one per line in format:\n")
		fmt.Fprintf(os.Stderr, "  Attribute-Name = value\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  echo 'User-Name = testuser' | %s -server 127.0.0.1\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  echo 'User-Name = testuser' | %s -server 127.0.0.1 -action coa -secret testing123\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat attrs.txt | %s -server 10.0.0.1:3799 -action disconnect -secret secret123\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config radclient.yaml < attrs.txt\n", os.Args[0])
	}

	flag.Parse()

	cfg := fileConfig{Action: "coa", Secret: "testing123", TimeoutMS: 3000, Retries: 1}
	if *configPath != "" {
		fileCfg, err := loadFileConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if fileCfg.Server != "" {
			cfg.Server = fileCfg.Server
		}
		if fileCfg.Action != "" {
			cfg.Action = fileCfg.Action
		}
		if fileCfg.Secret != "" {
			cfg.Secret = fileCfg.Secret
		}
		if fileCfg.TimeoutMS != 0 {
			cfg.TimeoutMS = fileCfg.TimeoutMS
		}
		if fileCfg.Retries != 0 {
			cfg.Retries = fileCfg.Retries
		}
	}

	// Flags explicitly set on the command line take precedence over the config file.
	if *server != "" {
		cfg.Server = *server
	}
	if *action != "" {
		cfg.Action = *action
	}
	if *secret != "" {
		cfg.Secret = *secret
	}
	if *timeoutMS != 0 {
		cfg.TimeoutMS = *timeoutMS
	}
	if *retries != 0 {
		cfg.Retries = *retries
	}

	if cfg.Server == "" {
		fmt.Fprintf(os.Stderr, "Error: -server or config server is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if cfg.Action != "coa" && cfg.Action != "disconnect" {
		fmt.Fprintf(os.Stderr, "Error: Invalid action %q (must be 'coa' or 'disconnect')\n\n", cfg.Action)
		flag.Usage()
		os.Exit(1)
	}

	if !strings.Contains(cfg.Server, ":") {
		cfg.Server += ":3799"
	}

	dict, err := radius.NewDefaultDictionary()
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	attributes, err := parseAttributes(scanner)
	if err != nil {
		log.Fatalf("Failed to parse attributes: %v", err)
	}

	if len(attributes) == 0 {
		log.Fatal("Error: No attributes provided")
	}

	cl, err := radius.NewClient(
		radius.WithAddr(cfg.Server),
		radius.WithSecret([]byte(cfg.Secret)),
		radius.WithDictionary(dict),
		radius.WithTimeout(time.Duration(cfg.TimeoutMS)*time.Millisecond),
		radius.WithRetry(cfg.Retries),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	var resp *radius.Packet

	switch cfg.Action {
	case "coa":
		resp, err = cl.CoA(radius.CoARequestOptions{Attributes: attributes})
	case "disconnect":
		resp, err = cl.Disconnect(radius.DisconnectRequestOptions{Attributes: attributes})
	}

	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}

	fmt.Printf("Received %s\n", resp.Code.String())
	printAttributes(resp)

	if resp.Code == radius.CodeCoAAck || resp.Code == radius.CodeDisconnectACK {
		os.Exit(0)
	}
	os.Exit(1)
}
