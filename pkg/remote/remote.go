// Package remote fetches a device descriptor or netlist file from a remote
// build host over SSH, for projects that keep their project inputs on a
// shared machine rather than the operator's workstation.
package remote

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/gp4par/gp4par/pkg/devicedesc"
	"github.com/gp4par/gp4par/pkg/netlistio"
	"github.com/gp4par/gp4par/pkg/util"
)

// Config describes how to reach a remote host over SSH.
type Config struct {
	Host     string
	Port     int    // defaults to 22
	User     string
	Password string
	Timeout  time.Duration // defaults to 10s
}

func (c Config) addr() string {
	port := c.Port
	if port == 0 {
		port = 22
	}
	return fmt.Sprintf("%s:%d", c.Host, port)
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return 10 * time.Second
}

// Fetcher reads files from a single remote host via SSH, reusing a
// connection across calls.
type Fetcher struct {
	config Config
	client *ssh.Client
}

// NewFetcher dials the remote host described by config.
func NewFetcher(config Config) (*Fetcher, error) {
	clientConfig := &ssh.ClientConfig{
		User:            config.User,
		Auth:            []ssh.AuthMethod{ssh.Password(config.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         config.timeout(),
	}

	client, err := ssh.Dial("tcp", config.addr(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("remote: dial %s: %w", config.addr(), err)
	}

	util.Infof("remote: connected to %s as %s", config.addr(), config.User)
	return &Fetcher{config: config, client: client}, nil
}

// Close closes the underlying SSH connection.
func (f *Fetcher) Close() error {
	return f.client.Close()
}

// Fetch returns the contents of remotePath by running "cat" over SSH.
func (f *Fetcher) Fetch(remotePath string) ([]byte, error) {
	session, err := f.client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("remote: new session: %w", err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	if err := session.Run(fmt.Sprintf("cat %q", remotePath)); err != nil {
		return nil, fmt.Errorf("remote: fetch %s: %w: %s", remotePath, err, stderr.String())
	}

	return stdout.Bytes(), nil
}

// FetchToFile fetches remotePath and writes it to localPath.
func (f *Fetcher) FetchToFile(remotePath, localPath string) error {
	data, err := f.Fetch(remotePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return fmt.Errorf("remote: create local dir for %s: %w", localPath, err)
	}
	if err := os.WriteFile(localPath, data, 0644); err != nil {
		return fmt.Errorf("remote: write %s: %w", localPath, err)
	}
	return nil
}

// FetchDeviceDescriptor fetches a device descriptor JSON file from the
// remote host and loads it via devicedesc.Loader.
func (f *Fetcher) FetchDeviceDescriptor(remotePath string) (*devicedesc.Device, error) {
	local, err := f.stageLocal(remotePath)
	if err != nil {
		return nil, err
	}
	defer os.Remove(local)

	return devicedesc.NewLoader(local).Load()
}

// FetchNetlist fetches a netlist file from the remote host. format selects
// the decoder: "yaml"/"yml" loads YAML, any other non-empty value loads
// JSON, and an empty format is inferred from remotePath's extension.
func (f *Fetcher) FetchNetlist(remotePath, format string) (*netlistio.Module, error) {
	local, err := f.stageLocal(remotePath)
	if err != nil {
		return nil, err
	}
	defer os.Remove(local)

	switch resolveFormat(format, remotePath) {
	case "yaml", "yml":
		return netlistio.LoadYAML(local)
	default:
		return netlistio.LoadJSON(local)
	}
}

// stageLocal fetches remotePath into a local temp file with the same
// extension, so format-sniffing loaders behave as they would locally.
func (f *Fetcher) stageLocal(remotePath string) (string, error) {
	data, err := f.Fetch(remotePath)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "gp4par-remote-*"+filepath.Ext(remotePath))
	if err != nil {
		return "", fmt.Errorf("remote: create temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := tmp.Write(data); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("remote: write temp file: %w", err)
	}

	return tmp.Name(), nil
}

func resolveFormat(format, path string) string {
	if format != "" {
		return format
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
