package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomain confere se o domínio do e-mail responde no DNS.
type EmailDomain struct {
	resolver Resolver
	timeout  time.Duration
}

func NewEmailDomain(resolver Resolver) *EmailDomain {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &EmailDomain{resolver: resolver, timeout: 3 * time.Second}
}

// Valid devolve true sem consultar nada quando o validador é nil.
func (v *EmailDomain) Valid(ctx context.Context, email string) bool {
	if v == nil {
		return true
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	if mx, err := v.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := v.resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}
