package usecase

import (
	"regexp"
	"strings"
)

// A-share codes: 6xxxxx (Shanghai), 0xxxxx / 3xxxxx (Shenzhen), with an
// optional exchange suffix.
var (
	aShareRe       = regexp.MustCompile(`^(6\d{5}|0\d{5}|3\d{5})(\.(SS|SH|SZ|SHH|SHZ))?$`)
	marketSuffixRe = regexp.MustCompile(`\.(SS|SH|SZ|SHH|SHZ)$`)
)

// IsAShare reports whether the symbol names a Chinese A-share stock.
// Symbols are matched case-insensitively after trimming.
func IsAShare(symbol string) bool {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if aShareRe.MatchString(symbol) {
		return true
	}
	return marketSuffixRe.MatchString(symbol)
}

// PureCode strips the exchange suffix and returns the bare 6-digit code.
func PureCode(symbol string) string {
	return marketSuffixRe.ReplaceAllString(strings.ToUpper(strings.TrimSpace(symbol)), "")
}

// FallbackSymbol maps a bare A-share code to the suffixed form the
// generic provider understands: .SS for Shanghai codes, .SZ for Shenzhen.
func FallbackSymbol(code string) string {
	if strings.HasPrefix(code, "6") {
		return code + ".SS"
	}
	return code + ".SZ"
}
