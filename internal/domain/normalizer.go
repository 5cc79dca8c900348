package domain

import (
	"fmt"
	"sort"
	"strings"
)

// OthersDomain - корзина для всех доменов вне списка разрешенных.
const OthersDomain = "Others"

// DomainNormalizer приводит сырое значение домена к каноническому имени.
type DomainNormalizer struct {
	canonical map[string]string
	names     []string
}

// NewDomainNormalizer строит нормализатор по списку разрешенных доменов.
func NewDomainNormalizer(allowed []string) *DomainNormalizer {
	n := &DomainNormalizer{canonical: make(map[string]string, len(allowed))}
	for _, d := range allowed {
		if d == "" {
			continue
		}
		key := strings.ToLower(d)
		if _, ok := n.canonical[key]; ok {
			continue
		}
		n.canonical[key] = d
		n.names = append(n.names, d)
	}
	sort.Strings(n.names)
	return n
}

// Normalize: регистронезависимое точное совпадение, иначе Others.
func (n *DomainNormalizer) Normalize(raw string) string {
	if d, ok := n.Canonical(raw); ok {
		return d
	}
	return OthersDomain
}

// Canonical возвращает написание из списка разрешенных.
func (n *DomainNormalizer) Canonical(raw string) (string, bool) {
	d, ok := n.canonical[strings.ToLower(raw)]
	return d, ok
}

// Domains возвращает разрешенные домены в алфавитном порядке.
func (n *DomainNormalizer) Domains() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// ResolveFilter проверяет значение фильтра по домену.
func (n *DomainNormalizer) ResolveFilter(raw string) (string, error) {
	if d, ok := n.Canonical(raw); ok {
		return d, nil
	}
	if strings.EqualFold(raw, OthersDomain) {
		return OthersDomain, nil
	}
	return "", fmt.Errorf("%w: unknown domain %q", ErrInvalidFilter, raw)
}
