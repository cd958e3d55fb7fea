package salon

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify converte um nome de salão em slug URL-safe: minúsculas,
// decomposição NFD com remoção de acentos, apenas [a-z0-9] e espaços,
// espaços colapsados em hífen.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = norm.NFD.String(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.Is(unicode.Mn, r):
			// marca combinante (acento) descartada após o NFD
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}

// UniqueSlug acrescenta o epoch em milissegundos ao slug do nome. O sufixo
// evita colisão entre salões homônimos; a unicidade final é garantida pela
// constraint no banco, com retry de quem insere.
func UniqueSlug(name string, now time.Time) string {
	base := Slugify(name)
	if base == "" {
		base = "salao"
	}
	return fmt.Sprintf("%s-%d", base, now.UnixMilli())
}
