package email

import (
	"sort"
	"strings"

	dErrors "normalro/pkg/domain-errors"
)

const defaultSubmissionPort = 587

// Providers holds the SMTP presets known to the relay.
type Providers struct {
	byName map[string]Provider
	names  []string
}

// NewProviders indexes presets by lower-cased name. A preset named "custom"
// is ignored because that name selects caller-supplied settings.
func NewProviders(list []Provider) *Providers {
	p := &Providers{byName: make(map[string]Provider, len(list))}
	for _, provider := range list {
		name := strings.ToLower(strings.TrimSpace(provider.Name))
		if name == "" || name == CustomProvider {
			continue
		}
		provider.Name = name
		if _, dup := p.byName[name]; !dup {
			p.names = append(p.names, name)
		}
		p.byName[name] = provider
	}
	sort.Strings(p.names)
	return p
}

// Config lists the presets in name order.
func (p *Providers) Config() RelayConfig {
	cfg := RelayConfig{Providers: make([]ProviderInfo, 0, len(p.names))}
	for _, name := range p.names {
		provider := p.byName[name]
		cfg.Providers = append(cfg.Providers, ProviderInfo{
			Name:       name,
			Host:       provider.Host,
			Port:       provider.Port,
			Configured: provider.Configured(),
		})
		if provider.Configured() {
			cfg.HasAnyProvider = true
		}
	}
	return cfg
}

// Resolve picks the SMTP endpoint and credentials for cmd. Credentials sent
// with the request win over server-side ones.
func (p *Providers) Resolve(cmd SendCommand) (Provider, error) {
	name := strings.ToLower(strings.TrimSpace(cmd.Provider))
	if name == "" {
		return Provider{}, dErrors.New(dErrors.CodeInvalidProvider, "provider is required")
	}

	var server Provider
	if name == CustomProvider {
		host := strings.TrimSpace(cmd.Host)
		if host == "" {
			return Provider{}, dErrors.New(dErrors.CodeInvalidProvider, "custom provider requires a host")
		}
		port := cmd.Port
		if port == 0 {
			port = defaultSubmissionPort
		}
		if port < 1 || port > 65535 {
			return Provider{}, dErrors.New(dErrors.CodeInvalidProvider, "custom provider port is out of range")
		}
		server = Provider{Name: CustomProvider, Host: host, Port: port}
	} else {
		preset, ok := p.byName[name]
		if !ok {
			return Provider{}, dErrors.New(dErrors.CodeInvalidProvider, "unknown provider "+name)
		}
		server = preset
	}

	if cmd.Username != "" && cmd.Password != "" {
		server.Username = cmd.Username
		server.Password = cmd.Password
	}
	if !server.Configured() {
		return Provider{}, dErrors.New(dErrors.CodeSMTPNotConfigured, "no SMTP credentials for provider "+name)
	}
	return server, nil
}
