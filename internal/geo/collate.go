package geo

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator de pt-BR para ordenação alfabética de nomes de salão. O collator
// do x/text mantém buffers internos, então o acesso é serializado.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
)

// CompareNames compara dois nomes respeitando acentos e caixa do pt-BR.
func CompareNames(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
