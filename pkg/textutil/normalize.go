// Package textutil normaliza texto para búsquedas: los nombres de producto
// llevan acentos y eñes, pero el operador teclea "azucar" esperando encontrar
// "Azúcar".
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldForSearch devuelve el término en minúsculas y sin acentos, listo para
// comparar contra columnas normalizadas de la misma forma.
func FoldForSearch(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Entrada no normalizable: se busca tal cual
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
