package domain

import "strings"

// NormalizePhone оставляет в номере только цифры
// Пустой результат означает, что телефона нет
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
