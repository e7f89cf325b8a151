package validators

import (
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// IsPhoneValid acepta números en formato internacional (7 a 15 dígitos,
// prefijo + opcional), ignorando separadores comunes.
func IsPhoneValid(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRe.MatchString(cleaned)
}

// IsDNIValid valida un DNI argentino: 7 u 8 dígitos, con o sin puntos.
func IsDNIValid(dni string) bool {
	cleaned := strings.ReplaceAll(strings.TrimSpace(dni), ".", "")
	if len(cleaned) < 7 || len(cleaned) > 8 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
